package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondFailure(c, http.StatusBadRequest, "Request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
