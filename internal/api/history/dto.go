package history

import (
	"github.com/buildingbigthings/PromptProducer/internal/models"

	"gorm.io/datatypes"
)

// SaveRequest mirrors the persisted columns the client is allowed to set.
type SaveRequest struct {
	UserID          *uint             `json:"userId"`
	TemplateID      string            `json:"templateId" binding:"required"`
	TemplateName    string            `json:"templateName" binding:"required"`
	FormData        datatypes.JSON    `json:"formData" binding:"required"`
	GeneratedPrompt string            `json:"generatedPrompt" binding:"required"`
	IsFavorite      bool              `json:"isFavorite"`
	Tags            models.StringList `json:"tags"`
	Notes           *string           `json:"notes"`
	PromptGoal      *string           `json:"promptGoal"`
	PromptRole      *string           `json:"promptRole"`
}

func (r SaveRequest) toModel() *models.PromptHistory {
	return &models.PromptHistory{
		UserID:          r.UserID,
		TemplateID:      r.TemplateID,
		TemplateName:    r.TemplateName,
		FormData:        r.FormData,
		GeneratedPrompt: r.GeneratedPrompt,
		IsFavorite:      r.IsFavorite,
		Tags:            r.Tags,
		Notes:           r.Notes,
		PromptGoal:      r.PromptGoal,
		PromptRole:      r.PromptRole,
	}
}
