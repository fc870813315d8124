package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test_secret", time.Hour)

	token, err := svc.GenerateToken(7, "john@example.com", "publisher")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "john@example.com", claims["email"])
	assert.Equal(t, "publisher", claims["role"])
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test_secret", -time.Minute)

	token, err := svc.GenerateToken(7, "john@example.com", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret_a", time.Hour).GenerateToken(7, "john@example.com", "user")
	require.NoError(t, err)

	_, err = NewJWTService("secret_b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}
