package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
// If validation succeeds, it returns true.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		Error(c, http.StatusBadRequest, bindErrorMessage(err))
		return false
	}
	return true
}

// bindErrorMessage flattens binding failures into a single human-readable
// message, since error responses carry one string on the wire.
func bindErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var parts []string
		for _, e := range errs {
			switch e.Tag() {
			case "required":
				parts = append(parts, fmt.Sprintf("field '%s' is required", jsonFieldName(e.Field())))
			case "min":
				parts = append(parts, fmt.Sprintf("field '%s' must have at least %s items", jsonFieldName(e.Field()), e.Param()))
			case "max":
				parts = append(parts, fmt.Sprintf("field '%s' must have at most %s items", jsonFieldName(e.Field()), e.Param()))
			default:
				parts = append(parts, fmt.Sprintf("field '%s' failed '%s' validation", jsonFieldName(e.Field()), e.Tag()))
			}
		}
		return "Invalid request parameters: " + strings.Join(parts, "; ")
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("Invalid request parameters: field '%s' has invalid type", jsonErr.Field)
	}

	return "Malformed JSON or invalid request body"
}

// jsonFieldName lower-cases the leading rune of a struct field name, which
// matches the camelCase JSON tags used across the request DTOs.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
