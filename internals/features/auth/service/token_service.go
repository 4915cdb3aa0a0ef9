// file: internals/features/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Nama cookie sesi admin (HTTP-only).
const CookieAdmin = "admin_token"

var ErrTokenInvalid = errors.New("token invalid")

// BuatToken mencetak JWT sesi admin HS256 berumur pendek.
func BuatToken(secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret kosong")
	}
	claims := jwt.MapClaims{
		"role": "admin",
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifikasiToken memeriksa tanda tangan + exp dan mengembalikan claims.
// Semua kegagalan dilipat jadi ErrTokenInvalid; detail tidak bocor ke caller.
func VerifikasiToken(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
