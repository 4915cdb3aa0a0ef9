package details

import (
	"github.com/gofiber/fiber/v2"

	konfigController "generusku_backend/internals/features/konfig/controller"
	"generusku_backend/internals/sheetdb"
)

func KonfigAdminRoutes(admin fiber.Router, store sheetdb.Store) {
	ctrl := konfigController.NewKonfigController(store)

	grp := admin.Group("/config")
	grp.Get("/kolom/:view", ctrl.GetKolom)
	grp.Put("/kolom/:view", ctrl.PutKolom)
	grp.Get("/kata-kunci", ctrl.GetKataKunci)
	grp.Put("/kata-kunci", ctrl.PutKataKunci)
	grp.Put("/password", ctrl.PutPassword)
}
