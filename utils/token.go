package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	SessionID string
}

func GenerateSessionToken(sessionID string) (string, error) {
	secret := getEnv("SESSION_SECRET", "secret")
	expiry, err := time.ParseDuration(getEnv("SESSION_EXPIRY", "24h"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(expiry).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	secret := getEnv("SESSION_SECRET", "secret")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return nil, errors.New("token has no session")
	}

	return &SessionClaims{SessionID: sessionID}, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
