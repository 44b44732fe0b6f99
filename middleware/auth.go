package middleware

import (
	"strings"

	"socialboard/config"
	"socialboard/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const principalKey = "principal"

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Identity resolves a bearer token into a principal on the request context.
// It never aborts: anonymous and bad-token requests pass through without a
// principal, and each handler answers with its own failure envelope when
// identity is required.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(principalKey, &models.Principal{ID: id, Username: claims.Username})
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal, or nil for anonymous
// requests.
func CurrentPrincipal(c *gin.Context) *models.Principal {
	if v, exists := c.Get(principalKey); exists {
		if p, ok := v.(*models.Principal); ok {
			return p
		}
	}
	return nil
}
