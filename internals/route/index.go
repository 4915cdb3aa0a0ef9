// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	authMiddleware "generusku_backend/internals/middlewares/auth"
	routeDetails "generusku_backend/internals/route/details"
	"generusku_backend/internals/sheetdb"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, store sheetdb.Store) {
	startTime = time.Now()

	BaseRoutes(app, store)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, store)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT cookie)...")
	admin := app.Group("/api/a", authMiddleware.AdminAuth())

	log.Println("[INFO] Mounting Generus routes...")
	routeDetails.GenerusAdminRoutes(admin, store)

	log.Println("[INFO] Mounting Sampah routes...")
	routeDetails.SampahAdminRoutes(admin, store)

	log.Println("[INFO] Mounting Analitik routes...")
	routeDetails.AnalitikAdminRoutes(admin, store)

	log.Println("[INFO] Mounting Konfig routes...")
	routeDetails.KonfigAdminRoutes(admin, store)
}
