package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBuatDanVerifikasiToken(t *testing.T) {
	secret := "rahasia-test"
	now := time.Now()

	tok, err := BuatToken(secret, time.Hour, now)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifikasiToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
	assert.NotEmpty(t, claims["jti"])
}

func TestVerifikasiTokenDitolak(t *testing.T) {
	secret := "rahasia-test"

	// secret salah
	tok, _ := BuatToken(secret, time.Hour, time.Now())
	_, err := VerifikasiToken("secret-lain", tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// kadaluarsa
	tok, _ = BuatToken(secret, time.Minute, time.Now().Add(-time.Hour))
	_, err = VerifikasiToken(secret, tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// bukan token
	_, err = VerifikasiToken(secret, "bukan.token.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestBuatTokenTanpaSecret(t *testing.T) {
	_, err := BuatToken("", time.Hour, time.Now())
	assert.Error(t, err)
}

func TestCekPassword(t *testing.T) {
	// plaintext warisan spreadsheet lama
	assert.True(t, CekPassword("admin123", "admin123"))
	assert.False(t, CekPassword("admin123", "salah"))
	assert.False(t, CekPassword("", "apapun"))

	// hash bcrypt hasil rotasi
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CekPassword(string(hash), "admin123"))
	assert.False(t, CekPassword(string(hash), "salah"))
}
