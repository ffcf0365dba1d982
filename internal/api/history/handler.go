package history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/buildingbigthings/PromptProducer/internal/services"
	"github.com/buildingbigthings/PromptProducer/internal/utils"
	"github.com/buildingbigthings/PromptProducer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Save stores a generated prompt so it can be revisited later.
func Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid prompt data")
		return
	}

	entry, err := services.SaveHistory(req.toModel())
	if err != nil {
		logger.Log.Error("failed to save prompt", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "Failed to save prompt")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// List returns saved prompts, newest first. Supports optional userId and
// limit query parameters.
func List(c *gin.Context) {
	var userID uint
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid userId")
			return
		}
		userID = uint(parsed)
	}

	var limit int
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := services.ListHistory(userID, limit)
	if err != nil {
		logger.Log.Error("failed to list prompts", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch prompts")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Update changes the favorite flag, tags, or notes of a saved prompt.
func Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid prompt ID")
		return
	}

	var update services.HistoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid prompt data")
		return
	}

	entry, err := services.UpdateHistory(uint(id), update)
	if err != nil {
		if errors.Is(err, services.ErrHistoryNotFound) {
			utils.Error(c, http.StatusNotFound, "Prompt not found")
			return
		}
		logger.Log.Error("failed to update prompt", zap.Error(err), zap.Uint64("id", id))
		utils.Error(c, http.StatusInternalServerError, "Failed to update prompt")
		return
	}
	c.JSON(http.StatusOK, entry)
}
