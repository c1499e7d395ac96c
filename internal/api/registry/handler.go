package registry

import (
	"fmt"
	"net/http"

	"game-catalog/internal/api/respond"
	"game-catalog/internal/domain/catalog"
	"game-catalog/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves one reference table. The same code backs /api/developer,
// /api/genre and /api/platform.
type Handler struct {
	registry *store.Registry
}

func New(st *store.Store, kind catalog.Kind) *Handler {
	return &Handler{registry: st.Registry(kind)}
}

func (h *Handler) entity() string { return string(h.registry.Kind()) }

// GET /api/<kind>
func (h *Handler) List(c *gin.Context) {
	rows, err := h.registry.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.registry.Kind().Table(): rows})
}

// GET /api/<kind>/:id
func (h *Handler) Get(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}

	ref, err := h.registry.Get(c.Request.Context(), uri.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.entity(): []catalog.Reference{ref}})
}

// POST /api/<kind>?name=
func (h *Handler) Create(c *gin.Context) {
	var q NameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	ref, err := h.registry.Create(c.Request.Context(), q.Name)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("%s %q created", h.entity(), ref.Name), gin.H{h.entity(): ref})
}

// PATCH /api/<kind>/:id?name=
func (h *Handler) Update(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}
	var q NameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}

	ref, err := h.registry.Update(c.Request.Context(), uri.ID, q.Name)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("%s %d renamed to %q", h.entity(), ref.ID, ref.Name), gin.H{h.entity(): ref})
}

// DELETE /api/<kind>/:id also removes every game that references the row.
func (h *Handler) Delete(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respond.BadRequest(c, err)
		return
	}

	if err := h.registry.Delete(c.Request.Context(), uri.ID); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Message(c, fmt.Sprintf("%s %d deleted", h.entity(), uri.ID), nil)
}
