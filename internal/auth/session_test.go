package auth

import (
	"testing"
	"time"

	autherrors "go-timeclock/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTSession_RoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	session := NewJWTSession()

	userID := uuid.NewString()
	token, err := session.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := session.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTSession_RejectsTampering(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	session := NewJWTSession()

	token, err := session.Issue(uuid.NewString())
	require.NoError(t, err)

	_, err = session.Verify(token + "x")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)

	_, err = session.Verify("not-even-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestJWTSession_RejectsWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret-one")
	token, err := NewJWTSession().Issue(uuid.NewString())
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "secret-two")
	_, err = NewJWTSession().Verify(token)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestJWTSession_RejectsExpired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTSession().Verify(stale)
	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}

func TestJWTSession_RejectsMissingUserID(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWTSession().Verify(token)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}
