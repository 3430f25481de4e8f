package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"thermostat_dashboard/internal/models"
	"thermostat_dashboard/internal/service"
)

const (
	ctxClaims = "claims"

	tokenCookie = "apiToken"
	roleCookie  = "userRole"
)

// authMiddleware accepts the local token from the Authorization header or,
// when the header is absent, from the apiToken cookie.
func (h *Handler) authMiddleware(c *gin.Context) {
	token := ""
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}
		token = strings.TrimSpace(parts[1])
	} else if cookie, err := c.Cookie(tokenCookie); err == nil {
		token = cookie
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	claims, err := h.services.Auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxClaims, claims)
	c.Next()
}

// requireRole lets only the listed roles through. It must run after authMiddleware.
func requireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := roleFrom(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "not allowed for role " + string(role),
		})
	}
}

func claimsFrom(c *gin.Context) *service.Claims {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}

func roleFrom(c *gin.Context) models.Role {
	if claims := claimsFrom(c); claims != nil {
		return claims.Role
	}
	return ""
}
