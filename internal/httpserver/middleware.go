package httpserver

import (
	"net/http"

	"easyshop/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	userCtxKey      = "easyshop.user"
)

// requestID echoes an incoming X-Request-ID or mints a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}

// identityMiddleware resolves the principal named in header to a user. The
// header is populated by the upstream authentication layer.
func identityMiddleware(resolver IdentityResolver, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := resolver.Resolve(c.Request.Context(), c.GetHeader(header))
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}
		c.Set(userCtxKey, u)
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody{Error: "admin role required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
