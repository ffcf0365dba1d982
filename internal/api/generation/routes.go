package generation

import (
	"github.com/buildingbigthings/PromptProducer/config"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	h := NewHandler(cfg)

	router.POST("/generate-custom-prompt", h.GenerateCustomPrompt)
	router.POST("/generate-blog-prompt", h.GenerateBlogPrompt)
	router.POST("/generate-email-prompt", h.GenerateEmailPrompt)
	router.POST("/generate-social-prompt", h.GenerateSocialPrompt)
	router.POST("/generate-creative-prompt", h.GenerateCreativePrompt)
	router.POST("/generate-marketing-prompt", h.GenerateMarketingPrompt)
	router.POST("/generate-idea-prompt", h.GenerateIdeaPrompt)
	router.POST("/generate-script-prompt", h.GenerateScriptPrompt)
	router.POST("/generate-code-prompt", h.GenerateCodePrompt)
	router.POST("/generate-resume-prompt", h.GenerateResumePrompt)
	router.POST("/generate-education-prompt", h.GenerateEducationPrompt)
	router.POST("/generate-image-prompt", h.GenerateImagePrompt)
	router.POST("/generate-video-prompt", h.GenerateVideoPrompt)
	router.POST("/generate-customer-support-prompt", h.GenerateCustomerSupportPrompt)
	router.POST("/generate-meeting-prompt", h.GenerateMeetingPrompt)
	router.POST("/generate-product-description-prompt", h.GenerateProductDescriptionPrompt)
	router.POST("/refine-prompt", h.RefinePrompt)
	router.POST("/improve-prompt", h.ImprovePrompt)
	router.POST("/explain-prompt", h.ExplainPrompt)
	router.POST("/suggest-role", h.SuggestRole)
}
