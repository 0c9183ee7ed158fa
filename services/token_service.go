package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is the fixed validity window of a session token.
const TokenTTL = time.Hour

// TokenService is responsible for creating and validating JWTs. The
// secret is injected at construction, never read from the environment
// inside business logic.
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secretKey: []byte(secret)}
}

// GenerateToken creates a signed session token binding the user id and
// email, valid for one hour.
func (s *TokenService) GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   now.Add(TokenTTL).Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken parses and validates a token string.
func (s *TokenService) ValidateToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
