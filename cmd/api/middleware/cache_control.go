package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NoStore is the Cache-Control value error responses overwrite with.
const NoStore = "no-store"

// CacheControl marks GET responses as cacheable for maxAge seconds, so a
// CDN or browser revalidates content at that interval. Headers are set
// before the handler runs; handlers answering an error reset it to NoStore.
// A non-positive maxAge disables caching.
func CacheControl(maxAge int) gin.HandlerFunc {
	value := NoStore
	if maxAge > 0 {
		value = fmt.Sprintf("public, max-age=%d", maxAge)
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", value)
		}
		c.Next()
	}
}
