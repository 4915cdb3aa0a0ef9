package details

import (
	"github.com/gofiber/fiber/v2"

	analitikController "generusku_backend/internals/features/analitik/controller"
	"generusku_backend/internals/sheetdb"
)

func AnalitikAdminRoutes(admin fiber.Router, store sheetdb.Store) {
	ctrl := analitikController.NewAnalitikController(store)

	grp := admin.Group("/analytics")
	grp.Get("/ringkasan", ctrl.Ringkasan)
	grp.Get("/mismatch", ctrl.Mismatch)
	grp.Get("/kategori", ctrl.Kategori)
	grp.Get("/kategori/discover", ctrl.Discover)
}
