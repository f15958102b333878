package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gin is the gin flavour of Monitor. The chain is aborted when the
// interceptor answers the request itself.
func Gin(m Interceptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		forwarded := false
		err := m.Intercept(c.Writer, describe(c.Request, requestScheme(c.Request)), func() error {
			forwarded = true
			c.Next()
			return nil
		})
		if err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		if !forwarded {
			c.Abort()
		}
	}
}
