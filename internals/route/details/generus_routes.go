package details

import (
	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/configs"
	generusController "generusku_backend/internals/features/generus/controller"
	"generusku_backend/internals/middlewares"
	"generusku_backend/internals/sheetdb"
)

func GenerusAdminRoutes(admin fiber.Router, store sheetdb.Store) {
	ctrl := generusController.NewGenerusController(store)

	grp := admin.Group("/generus")
	grp.Get("/", ctrl.List)
	grp.Get("/export", ctrl.ExportCSV)
	grp.Post("/backfill-id", ctrl.BackfillID)
	grp.Get("/:id", ctrl.GetByID)

	grp.Post("/",
		middlewares.FeatureGate(func() bool { return configs.EnableAdd }, "tambah generus"),
		ctrl.Create)
	grp.Put("/:id",
		middlewares.FeatureGate(func() bool { return configs.EnableEdit }, "edit generus"),
		ctrl.Update)
	grp.Delete("/:id",
		middlewares.FeatureGate(func() bool { return configs.EnableDelete }, "hapus generus"),
		ctrl.Delete)
}
