package respond

import (
	"errors"
	"net/http"

	"game-catalog/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// Error writes err as {"error": ...} with the status its type maps to.
// Anything outside the catalog taxonomy is a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var (
		notFound *catalog.NotFoundError
		conflict *catalog.ConflictError
		invalid  *catalog.InvalidArgumentError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// BadRequest reports a binding failure.
func BadRequest(c *gin.Context, err error) {
	Error(c, catalog.InvalidArgument("%s", err.Error()))
}

func Message(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
