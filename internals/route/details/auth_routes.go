package details

import (
	"github.com/gofiber/fiber/v2"

	authController "generusku_backend/internals/features/auth/controller"
	"generusku_backend/internals/middlewares"
	authMiddleware "generusku_backend/internals/middlewares/auth"
	"generusku_backend/internals/sheetdb"
)

func AuthRoutes(app *fiber.App, store sheetdb.Store) {
	ctrl := authController.NewAuthController(store)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/logout", ctrl.Logout)
	grp.Get("/me", authMiddleware.AdminAuth(), ctrl.Me)
}
