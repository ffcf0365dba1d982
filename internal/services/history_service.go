package services

import (
	"errors"

	"github.com/buildingbigthings/PromptProducer/internal/database"
	"github.com/buildingbigthings/PromptProducer/internal/models"

	"gorm.io/gorm"
)

// ErrHistoryNotFound is returned when a history entry does not exist.
var ErrHistoryNotFound = errors.New("prompt history entry not found")

const defaultHistoryLimit = 50

// SaveHistory inserts a new history entry and returns it with its assigned
// ID and timestamp. Entries are insert-only; later changes go through
// UpdateHistory.
func SaveHistory(entry *models.PromptHistory) (*models.PromptHistory, error) {
	if err := database.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListHistory returns saved prompts newest first. A zero userID means all
// users; a non-positive limit falls back to the default of 50.
func ListHistory(userID uint, limit int) ([]models.PromptHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := database.DB.Model(&models.PromptHistory{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var entries []models.PromptHistory
	if err := query.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// HistoryUpdate carries the mutable fields of a history entry. Nil fields
// are left untouched; the prompt itself and its form data never change.
type HistoryUpdate struct {
	IsFavorite *bool              `json:"isFavorite"`
	Tags       *models.StringList `json:"tags"`
	Notes      *string            `json:"notes"`
}

// UpdateHistory applies favorite, tags, and notes changes to an existing
// entry and returns the updated row.
func UpdateHistory(id uint, update HistoryUpdate) (*models.PromptHistory, error) {
	var entry models.PromptHistory
	if err := database.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.IsFavorite != nil {
		updates["is_favorite"] = *update.IsFavorite
	}
	if update.Tags != nil {
		updates["tags"] = *update.Tags
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&entry).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := database.DB.First(&entry, id).Error; err != nil {
			return nil, err
		}
	}
	return &entry, nil
}
