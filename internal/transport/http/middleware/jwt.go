package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalassist/internal/pkg/jwtutil"
	"legalassist/internal/transport/http/response"
)

const contextPrincipalKey = "principal"

// Principal is the signed-in curator behind a request. Only routes that edit
// the knowledge base or read the account need one; chat and documents stay
// anonymous.
type Principal struct {
	UserID   uint
	Username string
}

func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextPrincipalKey, Principal{UserID: claims.UserID, Username: claims.Username})
		c.Next()
	}
}

// CurrentPrincipal returns the principal set by AuthJWT.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(contextPrincipalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// bearerToken accepts "Bearer <token>" with any casing of the scheme.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
