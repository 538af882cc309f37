package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaginationParams holds pagination parameters
type PaginationParams struct {
	Limit  int
	Offset int
}

// Default pagination values
const (
	DefaultLimit  = 20
	MaxLimit      = 100
	DefaultOffset = 0
)

// ParsePagination extracts pagination parameters with safe defaults.
func ParsePagination(c *gin.Context) PaginationParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(DefaultOffset)))
	if err != nil || offset < 0 {
		offset = DefaultOffset
	}

	return PaginationParams{Limit: limit, Offset: offset}
}

// ExtractUUIDParam extracts and validates a UUID path parameter.
func ExtractUUIDParam(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", param, err)
	}
	return id.String(), nil
}

// parsePlayerID parses a player id; empty input yields 0 when optional.
func parsePlayerID(raw string, optional bool) (int64, error) {
	if raw == "" && optional {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid playerId %q", raw)
	}
	return id, nil
}
