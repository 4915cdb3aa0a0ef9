package details

import (
	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/configs"
	sampahController "generusku_backend/internals/features/sampah/controller"
	"generusku_backend/internals/middlewares"
	"generusku_backend/internals/sheetdb"
)

func SampahAdminRoutes(admin fiber.Router, store sheetdb.Store) {
	ctrl := sampahController.NewSampahController(store)

	grp := admin.Group("/sampah")
	grp.Get("/", ctrl.List)
	grp.Post("/:id/restore", ctrl.Restore)
	grp.Delete("/:id",
		middlewares.FeatureGate(func() bool { return configs.EnableDelete }, "hapus permanen"),
		ctrl.Purge)
}
