package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buildingbigthings/PromptProducer/config"
	"github.com/buildingbigthings/PromptProducer/internal/utils"
)

// OpenAI compatible request structures for internal use
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Stream         bool            `json:"stream"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatOptions tunes a single completion call.
type chatOptions struct {
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

const llmRequestTimeout = 60 * time.Second

// ErrGeneration wraps every remote generation failure so callers can treat
// transport, upstream, and decode errors uniformly.
var ErrGeneration = errors.New("prompt generation failed")

// chatCompletion sends a system/user message pair to the configured
// chat-completions endpoint and returns the first choice's content. All
// failures wrap ErrGeneration.
func chatCompletion(cfg *config.Config, systemPrompt, userPrompt string, opts chatOptions) (string, error) {
	content, err := doChatCompletion(cfg, systemPrompt, userPrompt, opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return content, nil
}

func doChatCompletion(cfg *config.Config, systemPrompt, userPrompt string, opts chatOptions) (string, error) {
	aiReq := ChatCompletionRequest{
		Model: cfg.OpenAIModel,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream:      false,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.JSONMode {
		aiReq.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	reqBody, err := json.Marshal(aiReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	client := utils.NewHTTPClient(llmRequestTimeout)
	apiURL := cfg.OpenAIBaseURL + "/chat/completions"

	httpReq, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenAIAPIKey))

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("external API request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("external API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var aiResp ChatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &aiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return aiResp.Choices[0].Message.Content, nil
}

// chatCompletionJSON runs a JSON-mode completion and decodes the prompt and
// explanation fields out of the model's reply.
func chatCompletionJSON(cfg *config.Config, systemPrompt, userPrompt string, opts chatOptions) (*GeneratedPrompt, error) {
	opts.JSONMode = true
	content, err := chatCompletion(cfg, systemPrompt, userPrompt, opts)
	if err != nil {
		return nil, err
	}

	var result GeneratedPrompt
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: failed to parse model JSON output: %v", ErrGeneration, err)
	}
	return &result, nil
}

// GeneratedPrompt is the result of a JSON-mode generation: the prompt itself
// plus a short explanation of why it is structured that way.
type GeneratedPrompt struct {
	Prompt      string `json:"prompt"`
	Explanation string `json:"explanation"`
}
