package templates_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apiTemplates "github.com/buildingbigthings/PromptProducer/internal/api/templates"
	"github.com/buildingbigthings/PromptProducer/internal/templates"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	apiTemplates.RegisterRoutes(api)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListTemplates(t *testing.T) {
	router := setupRouter()

	w := get(router, "/api/templates")
	assert.Equal(t, http.StatusOK, w.Code)

	var list []templates.Template
	err := json.Unmarshal(w.Body.Bytes(), &list)
	assert.NoError(t, err)
	assert.Len(t, list, len(templates.List()))
	assert.Equal(t, "blog-posts", list[0].ID)
}

func TestGetTemplate(t *testing.T) {
	router := setupRouter()

	w := get(router, "/api/templates/image-generation")
	assert.Equal(t, http.StatusOK, w.Code)

	var tpl templates.Template
	err := json.Unmarshal(w.Body.Bytes(), &tpl)
	assert.NoError(t, err)
	assert.Equal(t, "image-generation", tpl.ID)
	assert.NotEmpty(t, tpl.Fields)
}

func TestGetTemplateNotFound(t *testing.T) {
	router := setupRouter()

	w := get(router, "/api/templates/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Template not found", resp["error"])
}

func TestGetGoals(t *testing.T) {
	router := setupRouter()

	w := get(router, "/api/goals")
	assert.Equal(t, http.StatusOK, w.Code)

	var goals []templates.Goal
	err := json.Unmarshal(w.Body.Bytes(), &goals)
	assert.NoError(t, err)
	assert.Len(t, goals, 5)
	assert.Equal(t, "inform", goals[0].ID)
}

func TestGetRoles(t *testing.T) {
	router := setupRouter()

	w := get(router, "/api/templates/blog-posts/roles")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Roles []string `json:"roles"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Roles, 5)
}

func TestPreview(t *testing.T) {
	router := setupRouter()

	payload, _ := json.Marshal(map[string]interface{}{
		"formData": map[string]string{
			"subject": "a mountain lake",
			"style":   "Photorealistic",
			"mood":    "Serene/Peaceful",
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/templates/image-generation/preview", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompt string            `json:"prompt"`
		Status templates.Status  `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Prompt)
	assert.Equal(t, templates.StatusPreview, resp.Status)
	assert.Empty(t, resp.Errors)
}

func TestPreviewMissingFields(t *testing.T) {
	router := setupRouter()

	payload, _ := json.Marshal(map[string]interface{}{
		"formData": map[string]string{"subject": "a mountain lake"},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/templates/image-generation/preview", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompt string            `json:"prompt"`
		Status templates.Status  `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Empty(t, resp.Prompt)
	assert.Equal(t, templates.StatusEmpty, resp.Status)
	assert.Equal(t, "Art Style is required", resp.Errors["style"])
	assert.Equal(t, "Mood/Atmosphere is required", resp.Errors["mood"])
}
