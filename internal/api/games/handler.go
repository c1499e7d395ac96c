package games

import (
	"fmt"
	"net/http"

	"game-catalog/internal/api/respond"
	"game-catalog/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *store.Store
}

func New(st *store.Store) *Handler {
	return &Handler{store: st}
}

// ------------------------------
// GET /api/game
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	rows, err := h.store.ListGames(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}

	out := make([]GameDTO, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGameDTO(g))
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

// ------------------------------
// GET /api/game/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}

	game, err := h.store.GetGame(c.Request.Context(), uri.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": []GameDTO{toGameDTO(game)}})
}

// ------------------------------
// POST /api/game
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var q CreateGameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	game, err := h.store.CreateGame(c.Request.Context(), q.toNewGame())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("game %q created", game.Title), gin.H{"game": toGameDTO(game)})
}

// ------------------------------
// PATCH /api/game/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q UpdateGameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	game, err := h.store.UpdateGame(c.Request.Context(), uri.ID, q.toPatch())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("game %d updated", game.ID), gin.H{"game": toGameDTO(game)})
}

// ------------------------------
// DELETE /api/game/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}

	if err := h.store.DeleteGame(c.Request.Context(), uri.ID); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("game %d deleted", uri.ID), nil)
}

// ------------------------------
// GET /api/game/:id/revenue
// ------------------------------
func (h *Handler) Revenue(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}

	rows, err := h.store.GameRevenue(c.Request.Context(), uri.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	out := make([]RevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRevenueDTO(r))
	}
	c.JSON(http.StatusOK, gin.H{"revenue": out})
}
