package generation

import (
	"errors"
	"net/http"

	"github.com/buildingbigthings/PromptProducer/config"
	"github.com/buildingbigthings/PromptProducer/internal/services"
	"github.com/buildingbigthings/PromptProducer/internal/utils"
	"github.com/buildingbigthings/PromptProducer/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves every remote generation endpoint. All of them share the
// same shape: bind, call the matching service, reply with the bare prompt
// payload the frontend expects.
type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// respondPrompt writes a {prompt} body or the endpoint's canned error.
func respondPrompt(c *gin.Context, prompt string, err error, failMsg string) {
	if err != nil {
		logger.Log.Error(failMsg, zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, failMsg)
		return
	}
	c.JSON(http.StatusOK, PromptResponse{Prompt: prompt})
}

// respondExplained writes a {prompt, explanation} body or the endpoint's
// canned error.
func respondExplained(c *gin.Context, result *services.GeneratedPrompt, err error, failMsg string) {
	if err != nil {
		logger.Log.Error(failMsg, zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, failMsg)
		return
	}
	c.JSON(http.StatusOK, ExplainedPromptResponse{
		Prompt:      result.Prompt,
		Explanation: result.Explanation,
	})
}

func (h *Handler) GenerateCustomPrompt(c *gin.Context) {
	var req services.CustomPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateCustomPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateBlogPrompt(c *gin.Context) {
	var req services.BlogPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateBlogPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateEmailPrompt(c *gin.Context) {
	var req services.EmailPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateEmailPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateSocialPrompt(c *gin.Context) {
	var req services.SocialPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateSocialPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateCreativePrompt(c *gin.Context) {
	var req services.CreativePromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateCreativePrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateMarketingPrompt(c *gin.Context) {
	var req services.MarketingPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateMarketingPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateIdeaPrompt(c *gin.Context) {
	var req services.IdeaPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateIdeaPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateScriptPrompt(c *gin.Context) {
	var req services.ScriptPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateScriptPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateCodePrompt(c *gin.Context) {
	var req services.CodePromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateCodePrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateResumePrompt(c *gin.Context) {
	var req services.ResumePromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateResumePrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateEducationPrompt(c *gin.Context) {
	var req services.EducationPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.GenerateEducationPrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to generate prompt")
}

func (h *Handler) GenerateImagePrompt(c *gin.Context) {
	var req services.ImagePromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	result, err := services.GenerateImagePrompt(h.cfg, req)
	respondExplained(c, result, err, "Failed to generate image prompt")
}

func (h *Handler) GenerateVideoPrompt(c *gin.Context) {
	var req services.VideoPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	result, err := services.GenerateVideoPrompt(h.cfg, req)
	respondExplained(c, result, err, "Failed to generate video prompt")
}

func (h *Handler) GenerateCustomerSupportPrompt(c *gin.Context) {
	var req services.CustomerSupportPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	result, err := services.GenerateCustomerSupportPrompt(h.cfg, req)
	respondExplained(c, result, err, "Failed to generate customer support prompt")
}

func (h *Handler) GenerateMeetingPrompt(c *gin.Context) {
	var req services.MeetingPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	result, err := services.GenerateMeetingPrompt(h.cfg, req)
	respondExplained(c, result, err, "Failed to generate meeting prompt")
}

func (h *Handler) GenerateProductDescriptionPrompt(c *gin.Context) {
	var req services.ProductDescriptionPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	result, err := services.GenerateProductDescriptionPrompt(h.cfg, req)
	respondExplained(c, result, err, "Failed to generate product description prompt")
}

func (h *Handler) RefinePrompt(c *gin.Context) {
	var req services.RefinePromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.RefinePrompt(h.cfg, req)
	respondPrompt(c, prompt, err, "Failed to refine prompt")
}

func (h *Handler) ImprovePrompt(c *gin.Context) {
	var req services.ImprovePromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	prompt, err := services.ImprovePrompt(h.cfg, req)
	if errors.Is(err, services.ErrNoFeedback) {
		utils.Error(c, http.StatusBadRequest, "No feedback or edits provided")
		return
	}
	respondPrompt(c, prompt, err, "Failed to improve prompt")
}

func (h *Handler) ExplainPrompt(c *gin.Context) {
	var req services.ExplainPromptInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	explanation, err := services.ExplainPrompt(h.cfg, req)
	if err != nil {
		logger.Log.Error("Failed to explain prompt", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "Failed to explain prompt")
		return
	}
	c.JSON(http.StatusOK, ExplanationResponse{Explanation: explanation})
}

// SuggestRole always answers 200: the service falls back to the first
// default role when the model is unreachable.
func (h *Handler) SuggestRole(c *gin.Context) {
	var req services.SuggestRoleInput
	if !utils.BindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, RoleResponse{Role: services.SuggestRole(h.cfg, req)})
}
