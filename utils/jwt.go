package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every access token.
type Claims struct {
	EaterID uint   `json:"eaterId"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(eaterID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		EaterID: eaterID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
