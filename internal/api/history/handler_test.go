package history_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildingbigthings/PromptProducer/internal/api/history"
	"github.com/buildingbigthings/PromptProducer/internal/database"
	"github.com/buildingbigthings/PromptProducer/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.PromptHistory{})
	err = db.AutoMigrate(&models.User{}, &models.PromptHistory{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	history.RegisterRoutes(api)
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

func savedPromptBody(prompt string) map[string]interface{} {
	return map[string]interface{}{
		"templateId":      "blog-posts",
		"templateName":    "Blog Posts",
		"formData":        map[string]string{"topic": "Go testing"},
		"generatedPrompt": prompt,
	}
}

func TestSavePrompt(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := postJSON(router, "/api/prompts", savedPromptBody("Write a blog post about Go testing."))
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.PromptHistory
	err := json.Unmarshal(w.Body.Bytes(), &saved)
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "blog-posts", saved.TemplateID)
	assert.Equal(t, "Write a blog post about Go testing.", saved.GeneratedPrompt)
	assert.False(t, saved.IsFavorite)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSavePromptRejectsMissingFields(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := postJSON(router, "/api/prompts", map[string]interface{}{
		"templateId": "blog-posts",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Invalid prompt data", resp["error"])
}

func TestListPromptsNewestFirst(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	first := postJSON(router, "/api/prompts", savedPromptBody("first"))
	assert.Equal(t, http.StatusOK, first.Code)
	var firstSaved models.PromptHistory
	json.Unmarshal(first.Body.Bytes(), &firstSaved)

	// Backdate the first entry so ordering does not depend on clock
	// resolution.
	database.DB.Model(&models.PromptHistory{}).
		Where("id = ?", firstSaved.ID).
		Update("created_at", time.Now().Add(-time.Hour))

	second := postJSON(router, "/api/prompts", savedPromptBody("second"))
	assert.Equal(t, http.StatusOK, second.Code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/prompts", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []models.PromptHistory
	err := json.Unmarshal(w.Body.Bytes(), &entries)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].GeneratedPrompt)
	assert.Equal(t, "first", entries[1].GeneratedPrompt)
}

func TestListPromptsFiltersByUser(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	mine := savedPromptBody("mine")
	mine["userId"] = 7
	postJSON(router, "/api/prompts", mine)
	postJSON(router, "/api/prompts", savedPromptBody("anonymous"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/prompts?userId=7", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []models.PromptHistory
	json.Unmarshal(w.Body.Bytes(), &entries)
	assert.Len(t, entries, 1)
	assert.Equal(t, "mine", entries[0].GeneratedPrompt)
}

func TestListPromptsRejectsBadUserID(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/prompts?userId=abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePrompt(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	created := postJSON(router, "/api/prompts", savedPromptBody("keep me"))
	var saved models.PromptHistory
	json.Unmarshal(created.Body.Bytes(), &saved)

	payload, _ := json.Marshal(map[string]interface{}{
		"isFavorite": true,
		"tags":       []string{"work", "draft"},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/api/prompts/%d", saved.ID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.PromptHistory
	err := json.Unmarshal(w.Body.Bytes(), &updated)
	assert.NoError(t, err)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, models.StringList{"work", "draft"}, updated.Tags)
	assert.Equal(t, "keep me", updated.GeneratedPrompt)
}

func TestUpdatePromptNotFound(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	payload, _ := json.Marshal(map[string]interface{}{"isFavorite": true})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/api/prompts/9999", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Prompt not found", resp["error"])
}
