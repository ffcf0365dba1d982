package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status. Successful responses
// are written directly by the handlers since their shapes vary per endpoint.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}
