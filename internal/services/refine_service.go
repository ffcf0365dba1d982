package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buildingbigthings/PromptProducer/config"
)

// ErrNoFeedback is returned by ImprovePrompt when the request carries neither
// feedback tags nor manual edits, so there is nothing to improve against.
var ErrNoFeedback = errors.New("no feedback or edits provided")

type RefinePromptInput struct {
	OriginalPrompt    string `json:"originalPrompt" binding:"required"`
	RefinementRequest string `json:"refinementRequest" binding:"required"`
	TemplateID        string `json:"templateId"`
}

// RefinePrompt rewrites an existing prompt according to a free-text request
// while keeping its purpose intact.
func RefinePrompt(cfg *config.Config, data RefinePromptInput) (string, error) {
	systemPrompt := `You are an expert prompt engineer who specializes in refining and improving AI prompts. Your job is to take an existing prompt and improve it based on specific refinement requests while maintaining its core purpose and effectiveness.`

	userPrompt := fmt.Sprintf(`Please refine this AI prompt based on the following request:

Original Prompt:
%q

Refinement Request: %s

Please provide the refined prompt that incorporates the requested changes while maintaining clarity, specificity, and effectiveness. Return only the improved prompt without additional commentary.`,
		data.OriginalPrompt, data.RefinementRequest)

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.4, MaxTokens: 1000})
}

type ExplainPromptInput struct {
	Prompt     string `json:"prompt" binding:"required"`
	TemplateID string `json:"templateId"`
}

// ExplainPrompt produces a short plain-language summary of what a prompt
// will ask an AI to do.
func ExplainPrompt(cfg *config.Config, data ExplainPromptInput) (string, error) {
	systemPrompt := `You are an expert AI assistant who explains what prompts do in clear, simple language. Help users understand exactly what their prompt will ask an AI to accomplish.`

	userPrompt := fmt.Sprintf(`Please explain what this AI prompt is asking the AI to do. Be clear and concise, focusing on the key outcomes and deliverables the user can expect:

Prompt:
%q

Provide a brief explanation (2-3 sentences) that helps the user understand what results they can expect when using this prompt with an AI assistant.`,
		data.Prompt)

	return chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.3, MaxTokens: 200})
}

type SuggestRoleInput struct {
	Description  string   `json:"description" binding:"required"`
	TemplateID   string   `json:"templateId" binding:"required"`
	DefaultRoles []string `json:"defaultRoles" binding:"required,min=1"`
}

// SuggestRole asks the model for the single most effective persona for a
// prompt. It never fails: any error falls back to the first default role so
// the caller always has something to show.
func SuggestRole(cfg *config.Config, data SuggestRoleInput) string {
	systemPrompt := `You are an expert at identifying the most effective professional roles for AI prompts. Based on the user's description and context, suggest the single most appropriate "Act as a [role]" that will produce the highest quality AI response.`

	userPrompt := fmt.Sprintf(`Based on this user description and context, suggest the most effective professional role for an AI prompt:

User Description: %q
Template Category: %s
Common roles for this category: %s

Return only the role name (without "Act as a" prefix), focusing on the specific expertise that would best help with this request. Be specific and professional. Examples: "conversion copywriter", "senior software engineer", "brand strategist"`,
		data.Description, data.TemplateID, strings.Join(data.DefaultRoles, ", "))

	content, err := chatCompletion(cfg, systemPrompt, userPrompt, chatOptions{Temperature: 0.3, MaxTokens: 50})
	if err != nil {
		return data.DefaultRoles[0]
	}
	role := strings.TrimSpace(content)
	if role == "" {
		return data.DefaultRoles[0]
	}
	return role
}

type ImprovePromptInput struct {
	OriginalPrompt   string   `json:"originalPrompt" binding:"required"`
	UserFeedback     []string `json:"userFeedback"`
	UserEdits        string   `json:"userEdits"`
	OriginalGoal     string   `json:"originalGoal" binding:"required"`
	TemplateCategory string   `json:"templateCategory" binding:"required"`
}

// ImprovePrompt rewrites a prompt to address user feedback tags and manual
// edits. With no feedback and no edits it returns ErrNoFeedback before any
// network call is made.
func ImprovePrompt(cfg *config.Config, data ImprovePromptInput) (string, error) {
	if len(data.UserFeedback) == 0 && strings.TrimSpace(data.UserEdits) == "" {
		return "", ErrNoFeedback
	}

	systemPrompt := `You are an expert AI prompt engineer. Your job is to improve existing prompts based on user feedback and edits.

Analyze the original prompt, the user's feedback about what didn't work, any manual edits they made, and the original goal. Then create an improved version that addresses all the issues while maintaining the core intent.

Focus on:
1. Addressing specific feedback points (tone, clarity, length, etc.)
2. Incorporating any manual edits the user made
3. Maintaining alignment with the original goal and category
4. Improving overall effectiveness and clarity
5. Ensuring the prompt will get better AI results

Return only the improved prompt, nothing else.`

	var b strings.Builder
	fmt.Fprintf(&b, "Original prompt:\n%q\n\n", data.OriginalPrompt)
	fmt.Fprintf(&b, "Original goal: %s\n", data.OriginalGoal)
	fmt.Fprintf(&b, "Template category: %s\n\n", data.TemplateCategory)
	fmt.Fprintf(&b, "User feedback on what didn't work:\n%s\n\n", strings.Join(data.UserFeedback, ", "))
	if data.UserEdits != "" {
		fmt.Fprintf(&b, "User's manual edits:\n%q\n\n", data.UserEdits)
	}
	b.WriteString("Please create an improved version of this prompt that addresses all the feedback and incorporates the edits while maintaining the original intent and improving overall effectiveness.")

	content, err := chatCompletion(cfg, systemPrompt, b.String(), chatOptions{Temperature: 0.7, MaxTokens: 1000})
	if err != nil {
		return "", err
	}
	improved := strings.TrimSpace(content)
	if improved == "" {
		return data.OriginalPrompt, nil
	}
	return improved, nil
}

// FeedbackTag identifies a recurring way a generated prompt can fall short.
type FeedbackTag struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// FeedbackTags returns the catalog of improvement feedback options.
func FeedbackTags() []FeedbackTag {
	return []FeedbackTag{
		{ID: "tone", Label: "Wrong tone/style", Description: "Too formal, too casual, doesn't match audience"},
		{ID: "clarity", Label: "Not clear enough", Description: "Confusing instructions or unclear expectations"},
		{ID: "vague", Label: "Too vague", Description: "Not specific enough, lacks detail"},
		{ID: "long", Label: "Too long", Description: "Unnecessarily wordy or complex"},
		{ID: "short", Label: "Too short", Description: "Missing important details or context"},
		{ID: "format", Label: "Poor formatting", Description: "Hard to read or follow structure"},
		{ID: "context", Label: "Missing context", Description: "Doesn't provide enough background information"},
		{ID: "examples", Label: "Needs examples", Description: "Would benefit from specific examples"},
		{ID: "goal", Label: "Doesn't match goal", Description: "Doesn't align with what I'm trying to achieve"},
	}
}

// QuickRefinement pairs a button label with the canned refinement request it
// sends to RefinePrompt.
type QuickRefinement struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QuickRefinements returns the one-click refinement presets.
func QuickRefinements() []QuickRefinement {
	return []QuickRefinement{
		{Label: "Make more concise", Value: "make this prompt more concise and direct"},
		{Label: "Add humor", Value: "add appropriate humor and wit to make this prompt more engaging"},
		{Label: "Make more persuasive", Value: "make this prompt more persuasive and compelling"},
		{Label: "Add examples", Value: "include specific examples to make this prompt clearer"},
		{Label: "Make friendlier", Value: "make the tone more friendly and approachable"},
		{Label: "More professional", Value: "make this prompt more professional and formal"},
	}
}
