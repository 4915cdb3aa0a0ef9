package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// FeatureGate menutup route mutasi saat flag env-nya dimatikan (misal
// ENABLE_DELETE=false selama periode pendataan).
func FeatureGate(enabled func() bool, fitur string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success":    false,
				"message":    fmt.Sprintf("Fitur %s sedang dinonaktifkan", fitur),
				"error_code": "FORBIDDEN",
			})
		}
		return c.Next()
	}
}
