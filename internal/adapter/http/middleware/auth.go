package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
	"github.com/ardipermana59/hbus/pkg/authtoken"
)

const principalKey = "principal"

// RequireAuth verifies the bearer token and stores the authenticated
// principal on the request context.
func RequireAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apiresponse.Error(apiresponse.MsgUnauthorized, lang),
			)
			return
		}

		claims, err := authtoken.Parse(jwtSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apiresponse.Error(apiresponse.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(principalKey, claims)
		c.Next()
	}
}

// RequireManager rejects any principal whose role is not manager. Every
// user/task/log/dashboard route sits behind this gate; members have no
// exposed operations.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentUser(c)
		if claims == nil || claims.Role != string(domain.RoleManager) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apiresponse.Error(apiresponse.MsgForbidden, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated principal, or nil before RequireAuth.
func CurrentUser(c *gin.Context) *authtoken.Claims {
	if value, exists := c.Get(principalKey); exists {
		if claims, ok := value.(*authtoken.Claims); ok {
			return claims
		}
	}
	return nil
}
