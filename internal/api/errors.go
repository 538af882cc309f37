package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/turnbattle/internal/battleserver"
	"github.com/udisondev/turnbattle/internal/game/combat"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapError maps manager errors to HTTP error responses.
func MapError(err error) ErrorResponse {
	switch {
	case errors.Is(err, battleserver.ErrBattleNotFound):
		return ErrorResponse{StatusCode: http.StatusNotFound, Code: "NOT_FOUND", Message: "battle not found"}
	case errors.Is(err, combat.ErrInvalidPlayer),
		errors.Is(err, combat.ErrRosterSize),
		errors.Is(err, combat.ErrDuplicateUnit),
		errors.Is(err, combat.ErrInvalidHP),
		errors.Is(err, combat.ErrInvalidAttr):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Code: "INVALID_REQUEST", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrorResponse{StatusCode: http.StatusServiceUnavailable, Code: "UNAVAILABLE", Message: "server busy"}
	default:
		return ErrorResponse{StatusCode: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "internal server error"}
	}
}

// HandleError sends the response MapError chooses for err.
func HandleError(c *gin.Context, err error) {
	e := MapError(err)
	respondError(c, e.StatusCode, e.Code, e.Message)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
