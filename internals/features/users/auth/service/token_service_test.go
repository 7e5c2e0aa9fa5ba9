package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "someone",
		"exp": exp.Unix(),
	}).SignedString([]byte("whatever"))
	require.NoError(t, err)

	got := TokenExpiry(raw)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiryFallsBackOnGarbage(t *testing.T) {
	before := time.Now()
	got := TokenExpiry("not-a-jwt")
	assert.True(t, got.After(before))
}

func TestTokenExpiryFallsBackWithoutExp(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "someone",
	}).SignedString([]byte("whatever"))
	require.NoError(t, err)

	before := time.Now()
	got := TokenExpiry(raw)
	assert.True(t, got.After(before))
}
