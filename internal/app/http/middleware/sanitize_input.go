package middleware

import (
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeQueryMiddleware strips markup from every query-string value on
// writes. All catalog inputs arrive in the query string. The policy escapes
// the text it keeps, so entities are decoded again and plain values such as
// "Assassin's Creed" or a URL with "&" are stored as sent.
func SanitizeQueryMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		query := c.Request.URL.Query()
		for key, values := range query {
			for i, v := range values {
				values[i] = html.UnescapeString(policy.Sanitize(v))
			}
			query[key] = values
		}
		c.Request.URL.RawQuery = query.Encode()

		c.Next()
	}
}
