package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/turnbattle/internal/battleserver"
	"github.com/udisondev/turnbattle/internal/model"
)

// maxBatch bounds the number of battles accepted in one batch request.
const maxBatch = 32

// BattleService is the part of battleserver.Manager the handlers use.
type BattleService interface {
	HandleBattleRequest(ctx context.Context, req battleserver.StartBattleRequest) (*battleserver.BattleResponse, error)
	HandleBatch(ctx context.Context, reqs []battleserver.StartBattleRequest) []*battleserver.BattleResponse
	GetBattle(ctx context.Context, battleID string, playerID int64) (*model.Record, error)
	History(ctx context.Context, playerID int64, limit, offset int) ([]model.Summary, int, error)
}

// BattleHandler handles battle-related HTTP requests
type BattleHandler struct {
	battles BattleService
}

// NewBattleHandler creates a new battle handler
func NewBattleHandler(battles BattleService) *BattleHandler {
	return &BattleHandler{battles: battles}
}

// StartBattle handles POST /api/battle/start.
// The body of the reply is the BattleResponse itself.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req battleserver.StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, battleserver.BattleResponse{Message: "malformed request: " + err.Error()})
		return
	}

	resp, err := h.battles.HandleBattleRequest(c.Request.Context(), req)
	if err != nil {
		c.JSON(MapError(err).StatusCode, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BatchResponse is the reply of the batch endpoint.
type BatchResponse struct {
	Results []*battleserver.BattleResponse `json:"results"`
}

// StartBatch handles POST /api/battle/batch.
func (h *BattleHandler) StartBatch(c *gin.Context) {
	var reqs []battleserver.StartBattleRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		HandleInvalidRequest(c, "malformed request: "+err.Error())
		return
	}
	if len(reqs) == 0 || len(reqs) > maxBatch {
		HandleInvalidRequest(c, "batch must hold 1 to 32 battles")
		return
	}

	respondSuccess(c, http.StatusOK, BatchResponse{
		Results: h.battles.HandleBatch(c.Request.Context(), reqs),
	})
}

// GetBattle handles GET /api/battle/:battleId?playerId=
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "battleId")
	if err != nil {
		HandleInvalidRequest(c, "invalid battleId")
		return
	}
	playerID, err := parsePlayerID(c.Query("playerId"), true)
	if err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	rec, err := h.battles.GetBattle(c.Request.Context(), id, playerID)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rec)
}

// HistoryResponse is one page of a player's battles.
type HistoryResponse struct {
	Items  []model.Summary `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// History handles GET /api/battle/history/:playerId?limit&offset
func (h *BattleHandler) History(c *gin.Context) {
	playerID, err := parsePlayerID(c.Param("playerId"), false)
	if err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}
	page := ParsePagination(c)

	items, total, err := h.battles.History(c.Request.Context(), playerID, page.Limit, page.Offset)
	if err != nil {
		HandleError(c, err)
		return
	}
	if items == nil {
		items = []model.Summary{}
	}
	respondSuccess(c, http.StatusOK, HistoryResponse{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

var errNoCatalog = errors.New("catalog not loaded")
