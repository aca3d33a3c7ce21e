package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/services"
)

// ClaimsKey is the gin context key holding *services.TokenClaims for authenticated requests
const ClaimsKey = "claims"

// TokenVerifier validates bearer tokens
type TokenVerifier interface {
	VerifyToken(token string) (*services.TokenClaims, error)
}

// Access declares who may call a route.
// Anonymous routes skip authentication; otherwise a valid token is required and,
// when Roles is non-empty, its role must be listed.
type Access struct {
	Anonymous bool
	Roles     []models.Role
}

// Public allows unauthenticated requests
func Public() Access {
	return Access{Anonymous: true}
}

// Roles requires a valid token whose role is one of roles
func Roles(roles ...models.Role) Access {
	return Access{Roles: roles}
}

// Allows reports whether a token carrying role satisfies the rule
func (a Access) Allows(role models.Role) bool {
	if len(a.Roles) == 0 {
		return true
	}
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RequireAccess enforces access for one route.
// Missing or invalid tokens abort with 401, a role outside access.Roles with 403.
func RequireAccess(verifier TokenVerifier, access Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		if access.Anonymous {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if !access.Allows(claims.Role) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the claims stored by RequireAccess
func GetClaims(c *gin.Context) (*services.TokenClaims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.TokenClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatus(http.StatusUnauthorized)
}
