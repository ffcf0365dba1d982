package templates

import (
	"net/http"

	"github.com/buildingbigthings/PromptProducer/internal/utils"

	tpl "github.com/buildingbigthings/PromptProducer/internal/templates"

	"github.com/gin-gonic/gin"
)

// List returns the full template catalog in declaration order.
func List(c *gin.Context) {
	c.JSON(http.StatusOK, tpl.List())
}

// Get returns a single template by id.
func Get(c *gin.Context) {
	t, ok := tpl.Get(c.Param("id"))
	if !ok {
		utils.Error(c, http.StatusNotFound, "Template not found")
		return
	}
	c.JSON(http.StatusOK, t)
}

// Goals returns the supported prompt goals.
func Goals(c *gin.Context) {
	c.JSON(http.StatusOK, tpl.Goals())
}

// Roles returns the curated persona suggestions for a template category.
func Roles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": tpl.DefaultRoles(c.Param("id"))})
}

type PreviewRequest struct {
	FormData map[string]string `json:"formData" binding:"required"`
}

type PreviewResponse struct {
	Prompt string            `json:"prompt"`
	Status tpl.Status        `json:"status"`
	Errors map[string]string `json:"errors"`
}

// Preview runs local validation and assembly for a template without touching
// the LLM, mirroring what the form does while the user types.
func Preview(c *gin.Context) {
	t, ok := tpl.Get(c.Param("id"))
	if !ok {
		utils.Error(c, http.StatusNotFound, "Template not found")
		return
	}

	var req PreviewRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	c.JSON(http.StatusOK, PreviewResponse{
		Prompt: tpl.Assemble(t.ID, req.FormData),
		Status: tpl.StatusOf(t, req.FormData, false),
		Errors: tpl.Validate(t, req.FormData),
	})
}
