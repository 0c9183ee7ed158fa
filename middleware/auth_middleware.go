package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	userIDKey = "user_id"
	emailKey  = "email"
)

// RequireAuth validates the bearer token and stores the verified
// identity in the gin context. Cart and order handlers act on that
// identity only, never on a user id supplied in the request body.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if _, err := uuid.Parse(sub); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, sub)
		if email, ok := claims[emailKey].(string); ok {
			c.Set(emailKey, email)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by RequireAuth.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	idStr, ok := val.(string)
	if !ok {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}
	return id, nil
}
