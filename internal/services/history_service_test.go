package services

import (
	"testing"
	"time"

	"github.com/buildingbigthings/PromptProducer/internal/database"
	"github.com/buildingbigthings/PromptProducer/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.PromptHistory{})

	err = db.AutoMigrate(&models.User{}, &models.PromptHistory{})
	if err != nil {
		panic("failed to migrate database")
	}

	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM prompt_history")

	database.DB = db
}

func newEntry(templateID, prompt string, userID *uint) *models.PromptHistory {
	return &models.PromptHistory{
		UserID:          userID,
		TemplateID:      templateID,
		TemplateName:    "Blog Posts",
		FormData:        datatypes.JSON([]byte(`{"topic":"t","audience":"beginners","tone":"formal"}`)),
		GeneratedPrompt: prompt,
	}
}

func TestSaveHistory(t *testing.T) {
	setupTestDB()

	saved, err := SaveHistory(newEntry("blog-posts", "a generated prompt", nil))
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.IsFavorite)
	assert.WithinDuration(t, time.Now(), saved.CreatedAt, 5*time.Second)
}

func TestListHistoryNewestFirst(t *testing.T) {
	setupTestDB()

	first, err := SaveHistory(newEntry("blog-posts", "first", nil))
	assert.NoError(t, err)
	// Force distinct timestamps so ordering is deterministic.
	database.DB.Model(first).Update("created_at", time.Now().Add(-time.Hour))

	_, err = SaveHistory(newEntry("emails", "second", nil))
	assert.NoError(t, err)

	entries, err := ListHistory(0, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].GeneratedPrompt)
	assert.Equal(t, "first", entries[1].GeneratedPrompt)
}

func TestListHistoryFiltersByUser(t *testing.T) {
	setupTestDB()

	alice := uint(1)
	bob := uint(2)
	_, _ = SaveHistory(newEntry("blog-posts", "alice's", &alice))
	_, _ = SaveHistory(newEntry("blog-posts", "bob's", &bob))
	_, _ = SaveHistory(newEntry("blog-posts", "anonymous", nil))

	entries, err := ListHistory(alice, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "alice's", entries[0].GeneratedPrompt)

	all, err := ListHistory(0, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListHistoryLimit(t *testing.T) {
	setupTestDB()

	for i := 0; i < 5; i++ {
		_, err := SaveHistory(newEntry("blog-posts", "p", nil))
		assert.NoError(t, err)
	}

	entries, err := ListHistory(0, 2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUpdateHistory(t *testing.T) {
	setupTestDB()

	saved, err := SaveHistory(newEntry("blog-posts", "keep me", nil))
	assert.NoError(t, err)

	fav := true
	notes := "good starting point"
	tags := models.StringList{"work", "seo"}

	updated, err := UpdateHistory(saved.ID, HistoryUpdate{
		IsFavorite: &fav,
		Tags:       &tags,
		Notes:      &notes,
	})
	assert.NoError(t, err)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, tags, updated.Tags)
	assert.Equal(t, &notes, updated.Notes)
	// The prompt itself never changes on update.
	assert.Equal(t, "keep me", updated.GeneratedPrompt)
}

func TestUpdateHistoryPartial(t *testing.T) {
	setupTestDB()

	saved, err := SaveHistory(newEntry("blog-posts", "p", nil))
	assert.NoError(t, err)

	fav := true
	_, err = UpdateHistory(saved.ID, HistoryUpdate{IsFavorite: &fav})
	assert.NoError(t, err)

	var stored models.PromptHistory
	assert.NoError(t, database.DB.First(&stored, saved.ID).Error)
	assert.True(t, stored.IsFavorite)
	assert.Nil(t, stored.Notes)
}

func TestUpdateHistoryNotFound(t *testing.T) {
	setupTestDB()

	fav := true
	_, err := UpdateHistory(9999, HistoryUpdate{IsFavorite: &fav})
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}
