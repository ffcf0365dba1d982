package history

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the prompt history endpoints.
func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/prompts", Save)
	router.GET("/prompts", List)
	router.PATCH("/prompts/:id", Update)
}
