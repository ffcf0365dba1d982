package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildingbigthings/PromptProducer/config"

	"github.com/stretchr/testify/assert"
)

// newStubServer starts a chat-completions stub that records the last request
// body and replies with the given content.
func newStubServer(t *testing.T, content string) (*httptest.Server, *ChatCompletionRequest) {
	t.Helper()
	var captured ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		err := json.NewDecoder(r.Body).Decode(&captured)
		assert.NoError(t, err)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv, &captured
}

func stubConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL,
		OpenAIModel:   "gpt-4o",
	}
}

func TestGenerateBlogPrompt(t *testing.T) {
	srv, captured := newStubServer(t, "Act as an expert blogger and write...")

	got, err := GenerateBlogPrompt(stubConfig(srv.URL), BlogPromptInput{
		Topic:    "Remote work routines",
		Audience: "professionals",
		Tone:     "conversational",
		Keywords: "remote work, productivity",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Act as an expert blogger and write...", got)

	assert.Equal(t, "gpt-4o", captured.Model)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 800, captured.MaxTokens)
	assert.Nil(t, captured.ResponseFormat)

	assert.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "content strategist and SEO specialist")
	assert.Contains(t, captured.Messages[1].Content, "- Topic: Remote work routines")
	assert.Contains(t, captured.Messages[1].Content, "- SEO Keywords: remote work, productivity")
}

func TestGenerateBlogPromptOmitsEmptyKeywords(t *testing.T) {
	srv, captured := newStubServer(t, "ok")

	_, err := GenerateBlogPrompt(stubConfig(srv.URL), BlogPromptInput{
		Topic:    "Topic",
		Audience: "students",
		Tone:     "formal",
	})

	assert.NoError(t, err)
	assert.NotContains(t, captured.Messages[1].Content, "SEO Keywords")
}

func TestGenerateIdeaPromptTemperature(t *testing.T) {
	srv, captured := newStubServer(t, "ideas")

	_, err := GenerateIdeaPrompt(stubConfig(srv.URL), IdeaPromptInput{
		Purpose:  "new product lines",
		IdeaType: "business ideas",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.8, captured.Temperature)
}

func TestGenerateCodePromptTemperature(t *testing.T) {
	srv, captured := newStubServer(t, "code")

	_, err := GenerateCodePrompt(stubConfig(srv.URL), CodePromptInput{
		TaskType:    "debugging",
		Description: "nil pointer in handler",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.3, captured.Temperature)
}

func TestGenerateImagePromptJSONMode(t *testing.T) {
	srv, captured := newStubServer(t, `{"prompt":"A misty forest at dawn","explanation":"Layered detail helps diffusion models."}`)

	got, err := GenerateImagePrompt(stubConfig(srv.URL), ImagePromptInput{
		Subject: "A misty forest",
		Style:   "Photorealistic",
		Mood:    "Serene/Peaceful",
		promptContext: promptContext{
			Role: "landscape photographer",
			Goal: "Entertain",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "A misty forest at dawn", got.Prompt)
	assert.Equal(t, "Layered detail helps diffusion models.", got.Explanation)

	assert.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	assert.Equal(t, 0.4, captured.Temperature)
	assert.Contains(t, captured.Messages[1].Content, "Acting as landscape photographer, with the goal to entertain, ")
	assert.Contains(t, captured.Messages[1].Content, "- Main Subject: A misty forest")
}

func TestGenerateImagePromptRejectsBadJSON(t *testing.T) {
	srv, _ := newStubServer(t, "not json at all")

	_, err := GenerateImagePrompt(stubConfig(srv.URL), ImagePromptInput{
		Subject: "subject",
		Style:   "Abstract",
		Mood:    "Bright/Cheerful",
	})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestChatCompletionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := GenerateBlogPrompt(stubConfig(srv.URL), BlogPromptInput{
		Topic:    "t",
		Audience: "a",
		Tone:     "formal",
	})
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "429")
}

func TestChatCompletionNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := RefinePrompt(stubConfig(srv.URL), RefinePromptInput{
		OriginalPrompt:    "p",
		RefinementRequest: "make this prompt more concise and direct",
	})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestSuggestRole(t *testing.T) {
	srv, captured := newStubServer(t, "  conversion copywriter \n")

	role := SuggestRole(stubConfig(srv.URL), SuggestRoleInput{
		Description:  "a landing page for my fitness app",
		TemplateID:   "marketing-copy",
		DefaultRoles: []string{"conversion copywriter", "brand strategist"},
	})

	assert.Equal(t, "conversion copywriter", role)
	assert.Equal(t, 50, captured.MaxTokens)
	assert.Contains(t, captured.Messages[1].Content, "Common roles for this category: conversion copywriter, brand strategist")
}

func TestSuggestRoleFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	role := SuggestRole(stubConfig(srv.URL), SuggestRoleInput{
		Description:  "anything",
		TemplateID:   "travel-planning",
		DefaultRoles: []string{"expert consultant", "specialist"},
	})
	assert.Equal(t, "expert consultant", role)
}

func TestSuggestRoleFallsBackOnEmptyContent(t *testing.T) {
	srv, _ := newStubServer(t, "   ")

	role := SuggestRole(stubConfig(srv.URL), SuggestRoleInput{
		Description:  "anything",
		TemplateID:   "emails",
		DefaultRoles: []string{"email marketing specialist"},
	})
	assert.Equal(t, "email marketing specialist", role)
}

func TestImprovePromptRequiresFeedback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := ImprovePrompt(stubConfig(srv.URL), ImprovePromptInput{
		OriginalPrompt:   "original",
		OriginalGoal:     "inform",
		TemplateCategory: "blog-posts",
		UserEdits:        "   ",
	})
	assert.ErrorIs(t, err, ErrNoFeedback)
	assert.False(t, called, "no request should be sent when there is nothing to improve")
}

func TestImprovePrompt(t *testing.T) {
	srv, captured := newStubServer(t, "An improved prompt.")

	got, err := ImprovePrompt(stubConfig(srv.URL), ImprovePromptInput{
		OriginalPrompt:   "original",
		UserFeedback:     []string{"tone", "vague", "Additional details: sound less stiff"},
		UserEdits:        "original but friendlier",
		OriginalGoal:     "persuade",
		TemplateCategory: "marketing-copy",
	})

	assert.NoError(t, err)
	assert.Equal(t, "An improved prompt.", got)
	assert.Contains(t, captured.Messages[1].Content, "tone, vague, Additional details: sound less stiff")
	assert.Contains(t, captured.Messages[1].Content, "User's manual edits:")
}

func TestExplainPrompt(t *testing.T) {
	srv, captured := newStubServer(t, "This prompt asks the AI to outline a blog post.")

	got, err := ExplainPrompt(stubConfig(srv.URL), ExplainPromptInput{
		Prompt: "Act as an SEO expert...",
	})

	assert.NoError(t, err)
	assert.Equal(t, "This prompt asks the AI to outline a blog post.", got)
	assert.Equal(t, 200, captured.MaxTokens)
	assert.Equal(t, 0.3, captured.Temperature)
}

func TestFeedbackTagCatalog(t *testing.T) {
	tags := FeedbackTags()
	assert.Len(t, tags, 9)
	assert.Equal(t, "tone", tags[0].ID)
	assert.Equal(t, "goal", tags[8].ID)

	refinements := QuickRefinements()
	assert.Len(t, refinements, 6)
	assert.Equal(t, "make this prompt more concise and direct", refinements[0].Value)
}
