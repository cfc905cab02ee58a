package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/consts"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is shared by access and refresh tokens; Type tells them apart.
type TokenClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// fallbackSecret only signs tokens when config was never loaded, as in unit tests.
const fallbackSecret = "photoshare_dev_secret"

func getSecret() []byte {
	if secret := config.Get().JWT.Secret; secret != "" {
		return []byte(secret)
	}
	return []byte(fallbackSecret)
}

func GenerateAccessToken(id uint, username, role string, duration time.Duration) (string, error) {
	return generateToken(id, username, role, TokenTypeAccess, duration)
}

func GenerateRefreshToken(id uint, username, role string, duration time.Duration) (string, error) {
	return generateToken(id, username, role, TokenTypeRefresh, duration)
}

func generateToken(id uint, username, role, typ string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		ID:       id,
		Username: username,
		Role:     role,
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    consts.TokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseAccessToken(tokenString string) (*TokenClaims, error) {
	return parseToken(tokenString, TokenTypeAccess)
}

func ParseRefreshToken(tokenString string) (*TokenClaims, error) {
	return parseToken(tokenString, TokenTypeRefresh)
}

func parseToken(tokenString, wantType string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	}, jwt.WithIssuer(consts.TokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != wantType {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}
