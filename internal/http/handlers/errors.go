package handlers

import (
	"net/http"

	"railway/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Business
// errors carry their own message; infrastructure failures get a
// generic one so internals never leak.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case domain.IsInsufficientSeats(err):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case domain.IsAlreadyCancelled(err):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case domain.IsPastJourney(err):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, err.Error())
	default:
		respondFailure(c, http.StatusInternalServerError, "Server error")
	}
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
