package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeQueryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(SanitizeQueryMiddleware())
	handler := func(c *gin.Context) { got = c.Query("name") }
	r.POST("/echo", handler)
	r.GET("/echo", handler)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/echo?name=%3Ci%3ESonic%3C%2Fi%3E", nil))
	assert.Equal(t, "Sonic", got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/echo?name=Tom+%26+Jerry%27s", nil))
	assert.Equal(t, "Tom & Jerry's", got)

	// reads are passed through untouched
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/echo?name=%3Ci%3ESonic%3C%2Fi%3E", nil))
	assert.Equal(t, "<i>Sonic</i>", got)
}

func TestRequestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, level := range map[string]string{
		"/ok":      `"level":"info"`,
		"/missing": `"level":"warn"`,
		"/broken":  `"level":"error"`,
	} {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		assert.Contains(t, buf.String(), level, path)
		assert.Contains(t, buf.String(), `"path":"`+path+`"`)
	}
}
