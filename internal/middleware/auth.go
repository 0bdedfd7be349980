package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// AdminAuth gates the back office behind a bearer token. Token management is
// an external concern; the core only needs a signed-in identity.
func AdminAuth(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin access is not configured"},
			)
			return
		}

		presented := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		c.Next()
	}
}
