package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"game-catalog/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", catalog.NotFound("platform", "name=%q", "Dreamcast"), http.StatusNotFound, `platform not found`},
		{"conflict", catalog.Conflict("developer", "name=%q", "Sony"), http.StatusConflict, `developer already exists`},
		{"invalid", catalog.InvalidArgument("bad date"), http.StatusBadRequest, `invalid argument: bad date`},
		{"database", &catalog.DatabaseError{Inner: errors.New("disk on fire")}, http.StatusInternalServerError, `Internal server error`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `Internal server error`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Message(c, "genre created", gin.H{"genre": gin.H{"id": 1}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"genre created","genre":{"id":1}}`, w.Body.String())
}
