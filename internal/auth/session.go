package auth

import (
	"os"
	"strings"
	"time"

	autherrors "go-timeclock/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName carries the admin session token.
	CookieName = "admin_token"

	sessionTTL = 12 * time.Hour
)

// Session issues and verifies the signed token that stands in for an admin
// login. Keeping it behind an interface keeps the handlers and middleware
// out of the signing details.
//
//go:generate mockgen -source=session.go -destination=mock/session_mock.go -package=mock
type Session interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

type jwtSession struct {
	secret func() []byte
}

func NewJWTSession() Session {
	return &jwtSession{
		secret: func() []byte {
			s := os.Getenv("SESSION_SECRET")
			if s == "" {
				// Local dev fallback; set SESSION_SECRET in .env for stability.
				s = "dev-secret-change-me"
			}
			return []byte(s)
		},
	}
}

func (j *jwtSession) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret())
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func (j *jwtSession) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return j.secret(), nil
	})
	if err != nil || !token.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return "", autherrors.ErrTokenExpired
		}
		return "", autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", autherrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", autherrors.ErrInvalidToken
	}

	return userID, nil
}
