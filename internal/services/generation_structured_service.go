package services

import (
	"fmt"
	"strings"

	"github.com/buildingbigthings/PromptProducer/config"
)

// Structured generators carry optional persona, goal, and free-text context
// that get folded into the opening clause of the user prompt.
type promptContext struct {
	Role        string `json:"role"`
	Goal        string `json:"goal"`
	Description string `json:"description"`
}

func (p promptContext) prefix() string {
	var b strings.Builder
	if p.Role != "" {
		fmt.Fprintf(&b, "Acting as %s, ", p.Role)
	}
	if p.Goal != "" {
		fmt.Fprintf(&b, "with the goal to %s, ", strings.ToLower(p.Goal))
	}
	return b.String()
}

func (p promptContext) concept(label string) string {
	if p.Description == "" {
		return ""
	}
	return fmt.Sprintf("Based on this %s: %q. ", label, p.Description)
}

type ImagePromptInput struct {
	Subject     string `json:"subject" binding:"required"`
	Style       string `json:"style" binding:"required"`
	Mood        string `json:"mood" binding:"required"`
	Lighting    string `json:"lighting"`
	Composition string `json:"composition"`
	Colors      string `json:"colors"`
	Details     string `json:"details"`
	promptContext
}

func GenerateImagePrompt(cfg *config.Config, data ImagePromptInput) (*GeneratedPrompt, error) {
	systemPrompt := `You are an expert AI image generation specialist with deep knowledge of DALL-E, Midjourney, Stable Diffusion, and other AI art tools. You understand how to craft detailed, effective prompts that produce stunning visual results.

Your expertise includes:
- Visual composition and artistic techniques
- Lighting and atmosphere creation
- Style specifications and artistic movements
- Technical prompt optimization for AI models
- Color theory and visual harmony`

	userPrompt := fmt.Sprintf(`%screate a detailed AI image generation prompt %s

Image specifications:
- Main Subject: %s
- Art Style: %s
- Mood/Atmosphere: %s
%s
%s
%s
%s

Create a comprehensive prompt that includes:
1. The main subject and scene description
2. Artistic style and visual approach
3. Lighting and atmosphere details
4. Composition and framing guidance
5. Color specifications
6. Technical quality descriptors
7. Any specific details or elements

Also provide a brief explanation of why this prompt structure will be effective for AI image generation.

Return your response as JSON with "prompt" and "explanation" fields.`,
		data.prefix(), data.concept("concept"),
		data.Subject, data.Style, data.Mood,
		optionalLine(data.Lighting, "- Lighting: %s"),
		optionalLine(data.Composition, "- Composition: %s"),
		optionalLine(data.Colors, "- Color Palette: %s"),
		optionalLine(data.Details, "- Additional Details: %s"))

	return chatCompletionJSON(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.4, MaxTokens: 1200})
}

type VideoPromptInput struct {
	Concept  string `json:"concept" binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Movement string `json:"movement" binding:"required"`
	Style    string `json:"style" binding:"required"`
	Mood     string `json:"mood" binding:"required"`
	Lighting string `json:"lighting"`
	Setting  string `json:"setting"`
	Details  string `json:"details"`
	promptContext
}

func GenerateVideoPrompt(cfg *config.Config, data VideoPromptInput) (*GeneratedPrompt, error) {
	systemPrompt := `You are an expert AI video generation specialist with extensive knowledge of Runway, Pika Labs, Stable Video Diffusion, and other AI video tools. You understand how to create effective prompts for cinematic, professional video generation.

Your expertise includes:
- Cinematography and video composition
- Camera movements and techniques
- Visual storytelling and pacing
- Lighting design for video
- Video style and aesthetic direction
- Technical optimization for AI video models`

	userPrompt := fmt.Sprintf(`%screate a detailed AI video generation prompt %s

Video specifications:
- Video Concept: %s
- Duration: %s
- Camera Movement: %s
- Visual Style: %s
- Mood/Tone: %s
%s
%s
%s

Create a comprehensive video prompt that includes:
1. Clear scene description and action
2. Camera movement and cinematography
3. Visual style and aesthetic direction
4. Lighting and atmosphere
5. Duration and pacing guidance
6. Technical quality specifications
7. Any specific elements or effects

Also provide a brief explanation of why this prompt structure will be effective for AI video generation.

Return your response as JSON with "prompt" and "explanation" fields.`,
		data.prefix(), data.concept("concept"),
		data.Concept, data.Duration, data.Movement, data.Style, data.Mood,
		optionalLine(data.Lighting, "- Lighting Setup: %s"),
		optionalLine(data.Setting, "- Setting/Location: %s"),
		optionalLine(data.Details, "- Additional Details: %s"))

	return chatCompletionJSON(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.4, MaxTokens: 1200})
}

type CustomerSupportPromptInput struct {
	Situation    string `json:"situation" binding:"required"`
	ResponseType string `json:"responseType" binding:"required"`
	Tone         string `json:"tone" binding:"required"`
	Outcome      string `json:"outcome"`
	Constraints  string `json:"constraints"`
	promptContext
}

func GenerateCustomerSupportPrompt(cfg *config.Config, data CustomerSupportPromptInput) (*GeneratedPrompt, error) {
	systemPrompt := `You are an expert customer service specialist with extensive experience in customer communication, conflict resolution, and brand management. You understand how to craft responses that maintain customer relationships while addressing concerns professionally.

Your expertise includes:
- De-escalation techniques and empathetic communication
- Policy explanation and solution-oriented responses
- Brand voice consistency and professional tone
- Customer retention strategies and satisfaction recovery`

	userPrompt := fmt.Sprintf(`%screate a customer service prompt %s

Customer situation:
- Situation: %s
- Response Type: %s
- Desired Tone: %s
%s
%s

Create a prompt that will help generate:
1. An empathetic and professional response
2. Clear acknowledgment of the customer's concern
3. Solution-oriented language
4. Appropriate tone matching the situation
5. Brand-protecting communication
6. Next steps or follow-up actions

Also provide a brief explanation of why this approach will be effective for customer service.

Return your response as JSON with "prompt" and "explanation" fields.`,
		data.prefix(), data.concept("scenario"),
		data.Situation, data.ResponseType, data.Tone,
		optionalLine(data.Outcome, "- Desired Outcome: %s"),
		optionalLine(data.Constraints, "- Constraints/Policies: %s"))

	return chatCompletionJSON(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.3, MaxTokens: 1000})
}

type MeetingPromptInput struct {
	TaskType    string `json:"taskType" binding:"required"`
	Content     string `json:"content" binding:"required"`
	MeetingType string `json:"meetingType" binding:"required"`
	Audience    string `json:"audience"`
	Focus       string `json:"focus"`
	promptContext
}

func GenerateMeetingPrompt(cfg *config.Config, data MeetingPromptInput) (*GeneratedPrompt, error) {
	systemPrompt := `You are an expert meeting facilitator and business communication specialist with extensive experience in meeting management, agenda structuring, and executive communication.

Your expertise includes:
- Meeting efficiency and productive agenda design
- Executive summary writing and action item extraction
- Professional communication for various business contexts
- Stakeholder management and clear reporting`

	userPrompt := fmt.Sprintf(`%screate a meeting management prompt %s

Meeting details:
- Task Type: %s
- Meeting Content: %s
- Meeting Type: %s
%s
%s

Create a prompt that will help:
1. Structure information clearly and professionally
2. Extract key insights and action items
3. Maintain appropriate tone for the audience
4. Organize information logically
5. Highlight important decisions and next steps
6. Create actionable outcomes

Also provide a brief explanation of why this approach will be effective for meeting management.

Return your response as JSON with "prompt" and "explanation" fields.`,
		data.prefix(), data.concept("context"),
		data.TaskType, data.Content, data.MeetingType,
		optionalLine(data.Audience, "- Audience: %s"),
		optionalLine(data.Focus, "- Focus Areas: %s"))

	return chatCompletionJSON(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.3, MaxTokens: 1000})
}

type ProductDescriptionPromptInput struct {
	Platform       string `json:"platform" binding:"required"`
	Product        string `json:"product" binding:"required"`
	TargetAudience string `json:"targetAudience" binding:"required"`
	KeyFeatures    string `json:"keyFeatures" binding:"required"`
	Keywords       string `json:"keywords"`
	PriceRange     string `json:"priceRange"`
	promptContext
}

func GenerateProductDescriptionPrompt(cfg *config.Config, data ProductDescriptionPromptInput) (*GeneratedPrompt, error) {
	systemPrompt := `You are an expert e-commerce copywriter and digital marketing specialist with deep knowledge of platform-specific optimization, SEO, and conversion psychology.

Your expertise includes:
- Platform-specific optimization (Shopify, Amazon, Etsy, etc.)
- SEO keyword integration and ranking strategies
- Conversion-focused copywriting and persuasion techniques
- Target audience psychology and buying behavior`

	userPrompt := fmt.Sprintf(`%screate an e-commerce product description prompt %s

Product details:
- Platform: %s
- Product: %s
- Target Audience: %s
- Key Features: %s
%s
%s

Create a prompt that will generate:
1. Platform-optimized product descriptions
2. SEO-friendly keyword integration
3. Conversion-focused copy that drives sales
4. Target audience-specific language
5. Feature highlighting and benefit explanation
6. Compelling calls-to-action

Also provide a brief explanation of why this approach will be effective for e-commerce sales.

Return your response as JSON with "prompt" and "explanation" fields.`,
		data.prefix(), data.concept("concept"),
		data.Platform, data.Product, data.TargetAudience, data.KeyFeatures,
		optionalLine(data.Keywords, "- Keywords: %s"),
		optionalLine(data.PriceRange, "- Price Range: %s"))

	return chatCompletionJSON(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.4, MaxTokens: 1000})
}
