package generation

// PromptResponse carries a single generated or rewritten prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// ExplainedPromptResponse carries a generated prompt plus the model's
// explanation of its structure.
type ExplainedPromptResponse struct {
	Prompt      string `json:"prompt"`
	Explanation string `json:"explanation"`
}

type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
