package pricing

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

// GET /api/pricing
func (h *Handler) List(c *gin.Context) {
	rows, err := h.store.ListPricing(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}

	out := make([]PricingDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPricingDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"pricings": out})
}

// GET /api/pricing/:game_id?year=
func (h *Handler) Get(c *gin.Context) {
	var uri GameIDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	row, err := h.store.GetPricing(c.Request.Context(), uri.GameID, q.Year)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": []PricingDTO{toPricingDTO(row)}})
}

// POST /api/pricing/:game_id?year=&price=
func (h *Handler) Create(c *gin.Context) {
	var uri GameIDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q CreatePricingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}
	price, err := parsePrice(q.Price)
	if err != nil {
		respond.Error(c, err)
		return
	}

	row, err := h.store.CreatePricing(c.Request.Context(), uri.GameID, q.Year, price)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("pricing for game %d in %d created", row.GameID, row.Year),
		gin.H{"pricing": fromPricing(row)})
}

// PATCH /api/pricing/:game_id?year=&price=[&new_year=]
func (h *Handler) Update(c *gin.Context) {
	var uri GameIDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q UpdatePricingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}
	price, err := parsePrice(q.Price)
	if err != nil {
		respond.Error(c, err)
		return
	}

	row, err := h.store.UpdatePricing(c.Request.Context(), uri.GameID, q.Year, price, q.targetYear())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("pricing for game %d in %d updated", row.GameID, row.Year),
		gin.H{"pricing": fromPricing(row)})
}

// DELETE /api/pricing/:game_id?year=
func (h *Handler) Delete(c *gin.Context) {
	var uri GameIDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	if err := h.store.DeletePricing(c.Request.Context(), uri.GameID, q.Year); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("pricing for game %d in %d deleted", uri.GameID, q.Year), nil)
}
