package generation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildingbigthings/PromptProducer/config"
	"github.com/buildingbigthings/PromptProducer/internal/api/generation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newStubServer answers every chat completion with the given content.
func newStubServer(t *testing.T, content string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func setupRouter(baseURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL,
		OpenAIModel:   "gpt-4o",
	}
	router := gin.New()
	api := router.Group("/api")
	generation.RegisterRoutes(api, cfg)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateBlogPromptEndpoint(t *testing.T) {
	server := newStubServer(t, "Write a detailed blog post about Go.")
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/generate-blog-prompt", map[string]string{
		"topic":    "Go concurrency",
		"audience": "backend developers",
		"tone":     "professional",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "Write a detailed blog post about Go.", resp["prompt"])
}

func TestGenerateBlogPromptEndpointRejectsMissingFields(t *testing.T) {
	server := newStubServer(t, "unused")
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/generate-blog-prompt", map[string]string{
		"topic": "Go concurrency",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["error"], "Invalid request parameters")
}

func TestGenerateImagePromptEndpoint(t *testing.T) {
	server := newStubServer(t, `{"prompt":"A misty forest at dawn","explanation":"Sets scene and lighting."}`)
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/generate-image-prompt", map[string]string{
		"subject": "a misty forest",
		"style":   "photorealistic",
		"mood":    "serene",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "A misty forest at dawn", resp["prompt"])
	assert.Equal(t, "Sets scene and lighting.", resp["explanation"])
}

func TestGenerateEndpointUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/generate-custom-prompt", map[string]string{
		"whatToCreate": "a meeting summary",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Failed to generate prompt", resp["error"])
}

func TestImprovePromptEndpointRequiresFeedback(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/improve-prompt", map[string]interface{}{
		"originalPrompt":   "Write a blog post.",
		"userFeedback":     []string{},
		"userEdits":        "   ",
		"originalGoal":     "inform",
		"templateCategory": "blog",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called, "no upstream call expected without feedback")

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "No feedback or edits provided", resp["error"])
}

func TestSuggestRoleEndpointFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/suggest-role", map[string]interface{}{
		"description":  "write release notes",
		"templateId":   "blog-posts",
		"defaultRoles": []string{"content strategist", "copywriter"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "content strategist", resp["role"])
}

func TestExplainPromptEndpoint(t *testing.T) {
	server := newStubServer(t, "This prompt asks for a summary.")
	defer server.Close()
	router := setupRouter(server.URL)

	w := postJSON(router, "/api/explain-prompt", map[string]string{
		"prompt": "Summarize the quarterly report.",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "This prompt asks for a summary.", resp["explanation"])
}
