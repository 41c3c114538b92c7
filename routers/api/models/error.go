package models

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// APIError is the body sent by the JSON endpoints when a request fails
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d: %s", e.Path, e.Status, e.Message)
}

// NewAPIError creates an APIError with given status and message
func NewAPIError(status int, message string) APIError {
	return APIError{
		Status:  status,
		Message: message,
	}
}

// SendAPIError aborts the request with an APIError carrying the given status and message
func SendAPIError(ctx *gin.Context, status int, message string) {
	apiErr := NewAPIError(status, message)
	if ctx.Request != nil {
		apiErr.Path = ctx.Request.URL.Path
	}

	ctx.AbortWithStatusJSON(status, apiErr)
}
