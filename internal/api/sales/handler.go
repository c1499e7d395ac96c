package sales

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

// GET /api/sales
func (h *Handler) List(c *gin.Context) {
	rows, err := h.store.ListSales(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}

	out := make([]SalesDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSalesDTO(s))
	}
	c.JSON(http.StatusOK, gin.H{"sales": out})
}

// GET /api/sales/:game_id?year=
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

	row, err := h.store.GetSales(c.Request.Context(), uri.GameID, q.Year)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": []SalesDTO{toSalesDTO(row)}})
}

// POST /api/sales/:game_id?year=&digital_sales=&hard_copy_sales=
func (h *Handler) Create(c *gin.Context) {
	var uri GameIDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q CreateSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	row, err := h.store.CreateSales(c.Request.Context(), q.toSales(uri.GameID))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("sales for game %d in %d created", row.GameID, row.Year),
		gin.H{"sales": fromSales(row)})
}

// PATCH /api/sales/:game_id?year=&digital_sales=&hard_copy_sales=[&new_year=]
func (h *Handler) Update(c *gin.Context) {
	var uri GameIDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q UpdateSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	row, err := h.store.UpdateSales(c.Request.Context(), uri.GameID, q.Year, q.toSales(uri.GameID))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("sales for game %d in %d updated", row.GameID, row.Year),
		gin.H{"sales": fromSales(row)})
}

// DELETE /api/sales/:game_id?year=
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

	if err := h.store.DeleteSales(c.Request.Context(), uri.GameID, q.Year); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("sales for game %d in %d deleted", uri.GameID, q.Year), nil)
}
