// file: internals/middlewares/auth/admin_auth.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/configs"
	authService "generusku_backend/internals/features/auth/service"
)

// AdminAuth menjaga seluruh area admin. Token diambil dari cookie sesi
// (jalur normal UI) atau header Authorization Bearer (untuk tooling).
// Token hilang/kadaluarsa/invalid semuanya dijawab 401 generik.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := strings.TrimSpace(c.Cookies(authService.CookieAdmin))
		if tokenString == "" {
			h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
			if strings.HasPrefix(h, "Bearer ") {
				tokenString = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			}
		}
		if tokenString == "" {
			return helperUnauthorized(c)
		}

		claims, err := authService.VerifikasiToken(configs.JWTSecret, tokenString)
		if err != nil {
			log.Printf("[WARN] token admin ditolak: %s %s", c.Method(), c.OriginalURL())
			return helperUnauthorized(c)
		}

		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		if jti, ok := claims["jti"].(string); ok {
			c.Locals("session_id", jti)
		}
		return c.Next()
	}
}

func helperUnauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success":    false,
		"message":    "Sesi tidak valid, silakan login ulang",
		"error_code": "UNAUTHORIZED",
	})
}
