package models

import (
	"time"

	"gorm.io/datatypes"
)

// PromptHistory is a persisted snapshot of one completed prompt generation.
// Everything the generation pipeline wrote is immutable after creation;
// only IsFavorite, Tags and Notes may change via explicit edit actions.
type PromptHistory struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          *uint          `gorm:"index" json:"userId"`
	TemplateID      string         `gorm:"not null" json:"templateId"`
	TemplateName    string         `gorm:"not null" json:"templateName"`
	FormData        datatypes.JSON `gorm:"not null" json:"formData"`
	GeneratedPrompt string         `gorm:"type:text;not null" json:"generatedPrompt"`
	IsFavorite      bool           `gorm:"not null;default:false" json:"isFavorite"`
	Tags            StringList     `gorm:"type:text" json:"tags"`
	Notes           *string        `json:"notes"`
	PromptGoal      *string        `json:"promptGoal"`
	PromptRole      *string        `json:"promptRole"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// TableName overrides the table name
func (PromptHistory) TableName() string {
	return "prompt_history"
}
