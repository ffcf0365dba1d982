package services

import (
	"fmt"

	"github.com/buildingbigthings/PromptProducer/config"
)

// optionalLine renders a detail line only when the value is present. Absent
// optional fields still leave their blank line in the user prompt, matching
// the wire-visible output the frontend was built against.
func optionalLine(val, format string) string {
	if val == "" {
		return ""
	}
	return fmt.Sprintf(format, val)
}

type CustomPromptInput struct {
	OriginalDescription string `json:"originalDescription"`
	WhatToCreate        string `json:"whatToCreate" binding:"required"`
	TargetAudience      string `json:"targetAudience"`
	ToneStyle           string `json:"toneStyle"`
	Constraints         string `json:"constraints"`
	Goals               string `json:"goals"`
}

// GenerateCustomPrompt builds a free-form prompt from a plain description,
// used when no template category fits.
func GenerateCustomPrompt(cfg *config.Config, data CustomPromptInput) (string, error) {
	systemPrompt := `You are an expert AI prompt engineer. Your job is to create highly effective, detailed prompts that will help users get the best results from AI assistants like ChatGPT, Claude, or other AI tools.

Based on the user's requirements, create a comprehensive, well-structured prompt that:
1. Clearly defines the AI's role and expertise
2. Provides specific context and requirements
3. Includes clear formatting instructions
4. Specifies the desired output format
5. Includes any constraints or guidelines

Make the prompt actionable, specific, and optimized for getting high-quality results.`

	userPrompt := fmt.Sprintf("Create an AI prompt for: %s", data.WhatToCreate)
	if data.OriginalDescription != "" {
		userPrompt += fmt.Sprintf("\n\nOriginal request: %q", data.OriginalDescription)
	}
	if data.TargetAudience != "" {
		userPrompt += fmt.Sprintf("\nTarget audience: %s", data.TargetAudience)
	}
	if data.ToneStyle != "" {
		userPrompt += fmt.Sprintf("\nTone/Style: %s", data.ToneStyle)
	}
	if data.Goals != "" {
		userPrompt += fmt.Sprintf("\nGoals: %s", data.Goals)
	}
	if data.Constraints != "" {
		userPrompt += fmt.Sprintf("\nConstraints: %s", data.Constraints)
	}
	userPrompt += "\n\nPlease create a comprehensive AI prompt that incorporates all these requirements. The prompt should be clear, specific, and designed to get excellent results from an AI assistant."

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 1000})
}

type BlogPromptInput struct {
	Topic    string `json:"topic" binding:"required"`
	Audience string `json:"audience" binding:"required"`
	Tone     string `json:"tone" binding:"required"`
	Keywords string `json:"keywords"`
}

func GenerateBlogPrompt(cfg *config.Config, data BlogPromptInput) (string, error) {
	systemPrompt := `You are an expert content strategist and SEO specialist. Create detailed, actionable prompts for AI assistants to write high-quality blog posts.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for writing a blog post with these specifications:
- Topic: %s
- Target Audience: %s
- Tone: %s
%s

The prompt should instruct the AI to create a comprehensive, engaging blog post that includes:
1. SEO-optimized structure
2. Compelling headlines and subheadings
3. Clear call-to-actions
4. Proper keyword integration
5. Engaging introduction and conclusion

Make the prompt specific and actionable for getting professional blog content.`,
		data.Topic, data.Audience, data.Tone,
		optionalLine(data.Keywords, "- SEO Keywords: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 800})
}

type EmailPromptInput struct {
	Purpose      string `json:"purpose" binding:"required"`
	Recipient    string `json:"recipient" binding:"required"`
	Tone         string `json:"tone" binding:"required"`
	KeyPoints    string `json:"keyPoints"`
	CallToAction string `json:"callToAction"`
}

func GenerateEmailPrompt(cfg *config.Config, data EmailPromptInput) (string, error) {
	systemPrompt := `You are an expert email marketing strategist and copywriter. Create detailed prompts for AI assistants to write effective professional emails.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for writing an email with these specifications:
- Purpose: %s
- Recipient: %s
- Tone: %s
%s
%s

The prompt should instruct the AI to create a professional email that includes:
1. Compelling subject line
2. Personalized greeting
3. Clear message structure
4. Persuasive content
5. Strong call-to-action
6. Professional closing

Make the prompt specific for getting high-conversion email content.`,
		data.Purpose, data.Recipient, data.Tone,
		optionalLine(data.KeyPoints, "- Key Points: %s"),
		optionalLine(data.CallToAction, "- Call to Action: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 800})
}

type SocialPromptInput struct {
	Platform     string `json:"platform" binding:"required"`
	ContentType  string `json:"contentType" binding:"required"`
	Topic        string `json:"topic" binding:"required"`
	Tone         string `json:"tone" binding:"required"`
	Audience     string `json:"audience"`
	Hashtags     string `json:"hashtags"`
	CallToAction string `json:"callToAction"`
}

func GenerateSocialPrompt(cfg *config.Config, data SocialPromptInput) (string, error) {
	systemPrompt := `You are an expert social media strategist and content creator. Create detailed prompts for AI assistants to write engaging social media content.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for social media content with these specifications:
- Platform: %s
- Content Type: %s
- Topic: %s
- Tone: %s
%s
%s
%s

The prompt should instruct the AI to create engaging social media content that includes:
1. Platform-specific formatting
2. Attention-grabbing hooks
3. Engaging content that drives interaction
4. Relevant hashtags for discoverability
5. Clear call-to-action
6. Best practices for %s

Make the prompt specific for getting viral-worthy social media content.`,
		data.Platform, data.ContentType, data.Topic, data.Tone,
		optionalLine(data.Audience, "- Target Audience: %s"),
		optionalLine(data.Hashtags, "- Hashtags/Keywords: %s"),
		optionalLine(data.CallToAction, "- Call to Action: %s"),
		data.Platform)

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 800})
}

type CreativePromptInput struct {
	ProjectType         string `json:"projectType" binding:"required"`
	Genre               string `json:"genre" binding:"required"`
	Setting             string `json:"setting"`
	Characters          string `json:"characters"`
	Tone                string `json:"tone" binding:"required"`
	Themes              string `json:"themes"`
	Length              string `json:"length"`
	SpecialRequirements string `json:"specialRequirements"`
}

func GenerateCreativePrompt(cfg *config.Config, data CreativePromptInput) (string, error) {
	systemPrompt := `You are an expert creative writing instructor and prompt engineer. Create detailed, inspiring prompts for AI assistants to help with creative writing projects.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for a creative writing project with these specifications:
- Project Type: %s
- Genre: %s
- Tone/Mood: %s
%s
%s
%s
%s
%s

The prompt should instruct the AI to help create compelling creative writing that includes:
1. Well-developed characters with clear motivations
2. Engaging plot structure and pacing
3. Rich, immersive setting details
4. Appropriate tone and atmosphere
5. Strong thematic elements
6. Genre-specific conventions and expectations
7. Professional writing techniques and craft elements

Make the prompt specific for generating high-quality creative content that resonates with readers.`,
		data.ProjectType, data.Genre, data.Tone,
		optionalLine(data.Setting, "- Setting: %s"),
		optionalLine(data.Characters, "- Characters: %s"),
		optionalLine(data.Themes, "- Themes: %s"),
		optionalLine(data.Length, "- Length: %s"),
		optionalLine(data.SpecialRequirements, "- Special Requirements: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 1000})
}

type MarketingPromptInput struct {
	CopyType       string `json:"copyType" binding:"required"`
	Product        string `json:"product" binding:"required"`
	TargetAudience string `json:"targetAudience" binding:"required"`
	PainPoints     string `json:"painPoints"`
	Benefits       string `json:"benefits"`
	Tone           string `json:"tone" binding:"required"`
	CallToAction   string `json:"callToAction"`
	Constraints    string `json:"constraints"`
}

func GenerateMarketingPrompt(cfg *config.Config, data MarketingPromptInput) (string, error) {
	systemPrompt := `You are an expert marketing copywriter and conversion specialist. Create detailed prompts for AI assistants to write high-converting marketing copy.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for marketing copy with these specifications:
- Copy Type: %s
- Product/Service: %s
- Target Audience: %s
- Brand Tone: %s
%s
%s
%s
%s

The prompt should instruct the AI to create persuasive marketing copy that includes:
1. Attention-grabbing headlines and hooks
2. Clear value propositions and benefits
3. Emotional triggers and pain point solutions
4. Social proof and credibility elements
5. Strong call-to-action statements
6. Audience-specific language and messaging
7. Conversion-optimized structure and flow

Make the prompt specific for generating high-converting marketing materials that drive results.`,
		data.CopyType, data.Product, data.TargetAudience, data.Tone,
		optionalLine(data.PainPoints, "- Pain Points: %s"),
		optionalLine(data.Benefits, "- Key Benefits: %s"),
		optionalLine(data.CallToAction, "- Desired Action: %s"),
		optionalLine(data.Constraints, "- Constraints: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 1000})
}

type IdeaPromptInput struct {
	Purpose        string `json:"purpose" binding:"required"`
	IdeaType       string `json:"ideaType" binding:"required"`
	Domain         string `json:"domain"`
	Context        string `json:"context"`
	TargetAudience string `json:"targetAudience"`
	Constraints    string `json:"constraints"`
	Quantity       string `json:"quantity"`
	Criteria       string `json:"criteria"`
}

func GenerateIdeaPrompt(cfg *config.Config, data IdeaPromptInput) (string, error) {
	systemPrompt := `You are an expert innovation consultant and creative thinking facilitator. Create detailed prompts for AI assistants to generate creative ideas and brainstorming solutions.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for idea generation with these specifications:
- Purpose: %s
- Type of Ideas: %s
%s
%s
%s
%s
%s
%s

The prompt should instruct the AI to generate innovative ideas that include:
1. Creative and diverse perspectives
2. Practical implementation considerations
3. Clear explanations of each idea
4. Potential benefits and outcomes
5. Risk assessment and feasibility
6. Next steps for development
7. Prioritization and evaluation criteria

Make the prompt specific for generating actionable, innovative solutions.`,
		data.Purpose, data.IdeaType,
		optionalLine(data.Domain, "- Domain/Industry: %s"),
		optionalLine(data.Context, "- Context: %s"),
		optionalLine(data.TargetAudience, "- Target Audience: %s"),
		optionalLine(data.Constraints, "- Constraints: %s"),
		optionalLine(data.Quantity, "- Quantity: %s"),
		optionalLine(data.Criteria, "- Success Criteria: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.8, MaxTokens: 1000})
}

type ScriptPromptInput struct {
	ScriptType   string `json:"scriptType" binding:"required"`
	Topic        string `json:"topic" binding:"required"`
	Duration     string `json:"duration"`
	Audience     string `json:"audience" binding:"required"`
	Tone         string `json:"tone"`
	Objective    string `json:"objective"`
	KeyPoints    string `json:"keyPoints"`
	CallToAction string `json:"callToAction"`
	Format       string `json:"format"`
}

func GenerateScriptPrompt(cfg *config.Config, data ScriptPromptInput) (string, error) {
	systemPrompt := `You are an expert scriptwriter and content creator specializing in video, podcast, and presentation scripts. Create detailed prompts for AI assistants to write engaging scripts.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for script writing with these specifications:
- Script Type: %s
- Topic: %s
- Target Audience: %s
%s
%s
%s
%s
%s
%s

The prompt should instruct the AI to create an engaging script that includes:
1. Compelling opening hook
2. Clear structure and flow
3. Audience-appropriate language
4. Visual and audio cues where relevant
5. Strong storytelling elements
6. Effective pacing and timing
7. Memorable closing and call-to-action

Make the prompt specific for creating professional, engaging content.`,
		data.ScriptType, data.Topic, data.Audience,
		optionalLine(data.Duration, "- Duration: %s"),
		optionalLine(data.Tone, "- Tone: %s"),
		optionalLine(data.Objective, "- Objective: %s"),
		optionalLine(data.KeyPoints, "- Key Points: %s"),
		optionalLine(data.CallToAction, "- Call to Action: %s"),
		optionalLine(data.Format, "- Format Requirements: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.7, MaxTokens: 1000})
}

type CodePromptInput struct {
	TaskType            string `json:"taskType" binding:"required"`
	Description         string `json:"description" binding:"required"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	Framework           string `json:"framework"`
	SkillLevel          string `json:"skillLevel"`
	Context             string `json:"context"`
	Requirements        string `json:"requirements"`
	Constraints         string `json:"constraints"`
}

func GenerateCodePrompt(cfg *config.Config, data CodePromptInput) (string, error) {
	systemPrompt := `You are an expert software engineer and programming mentor. Create detailed prompts for AI assistants to help with coding tasks, debugging, and programming challenges.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for programming assistance with these specifications:
- Task Type: %s
- Description: %s
%s
%s
%s
%s
%s
%s

The prompt should instruct the AI to provide programming help that includes:
1. Clear, well-commented code examples
2. Step-by-step explanations
3. Best practices and conventions
4. Error handling and edge cases
5. Testing considerations
6. Performance optimization tips
7. Alternative approaches when relevant

Make the prompt specific for getting high-quality, production-ready code assistance.`,
		data.TaskType, data.Description,
		optionalLine(data.ProgrammingLanguage, "- Programming Language: %s"),
		optionalLine(data.Framework, "- Framework/Technology: %s"),
		optionalLine(data.SkillLevel, "- User Experience Level: %s"),
		optionalLine(data.Context, "- Project Context: %s"),
		optionalLine(data.Requirements, "- Requirements: %s"),
		optionalLine(data.Constraints, "- Constraints: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.3, MaxTokens: 1000})
}

type ResumePromptInput struct {
	DocumentType    string `json:"documentType" binding:"required"`
	JobTitle        string `json:"jobTitle" binding:"required"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experienceLevel" binding:"required"`
	KeySkills       string `json:"keySkills"`
	Achievements    string `json:"achievements"`
	TargetCompany   string `json:"targetCompany"`
	Requirements    string `json:"requirements"`
}

func GenerateResumePrompt(cfg *config.Config, data ResumePromptInput) (string, error) {
	systemPrompt := `You are an expert career counselor and resume writer with extensive experience in recruitment and HR. Create detailed prompts for AI assistants to write compelling career documents.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for career document creation with these specifications:
- Document Type: %s
- Target Job Title: %s
- Experience Level: %s
%s
%s
%s
%s
%s

The prompt should instruct the AI to create professional career content that includes:
1. ATS-optimized formatting and keywords
2. Quantified achievements and metrics
3. Industry-specific language and terminology
4. Compelling value propositions
5. Action-oriented language
6. Proper structure and organization
7. Tailored content for the target role

Make the prompt specific for creating standout career documents that get results.`,
		data.DocumentType, data.JobTitle, data.ExperienceLevel,
		optionalLine(data.Industry, "- Industry: %s"),
		optionalLine(data.KeySkills, "- Key Skills: %s"),
		optionalLine(data.Achievements, "- Achievements: %s"),
		optionalLine(data.TargetCompany, "- Target Company: %s"),
		optionalLine(data.Requirements, "- Special Requirements: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.4, MaxTokens: 1000})
}

type EducationPromptInput struct {
	ContentType        string `json:"contentType" binding:"required"`
	Subject            string `json:"subject" binding:"required"`
	GradeLevel         string `json:"gradeLevel" binding:"required"`
	Duration           string `json:"duration"`
	LearningObjectives string `json:"learningObjectives"`
	PriorKnowledge     string `json:"priorKnowledge"`
	TeachingStyle      string `json:"teachingStyle"`
	Resources          string `json:"resources"`
	Assessment         string `json:"assessment"`
}

func GenerateEducationPrompt(cfg *config.Config, data EducationPromptInput) (string, error) {
	systemPrompt := `You are an expert educator and instructional designer with extensive experience in curriculum development and pedagogy. Create detailed prompts for AI assistants to develop effective educational content.`

	userPrompt := fmt.Sprintf(`Create an AI prompt for educational content development with these specifications:
- Content Type: %s
- Subject: %s
- Grade/Age Level: %s
%s
%s
%s
%s
%s
%s

The prompt should instruct the AI to create educational content that includes:
1. Clear learning objectives and outcomes
2. Age-appropriate content and language
3. Engaging activities and exercises
4. Differentiated instruction strategies
5. Assessment and evaluation methods
6. Real-world applications and examples
7. Interactive and multimedia elements

Make the prompt specific for creating effective, engaging educational materials that promote learning.`,
		data.ContentType, data.Subject, data.GradeLevel,
		optionalLine(data.Duration, "- Duration: %s"),
		optionalLine(data.LearningObjectives, "- Learning Objectives: %s"),
		optionalLine(data.PriorKnowledge, "- Prior Knowledge: %s"),
		optionalLine(data.TeachingStyle, "- Teaching Style: %s"),
		optionalLine(data.Resources, "- Available Resources: %s"),
		optionalLine(data.Assessment, "- Assessment Methods: %s"))

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.6, MaxTokens: 1000})
}
