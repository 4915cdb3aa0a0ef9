package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"generusku_backend/internals/constants"
	"generusku_backend/internals/sheetdb"
)

func BaseRoutes(app *fiber.App, store sheetdb.Store) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Generusku backend & Google Sheets connected 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		storeStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if _, err := store.ReadAll(ctx, constants.SheetConfig); err != nil {
			storeStatus = "Spreadsheet connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"spreadsheet":    storeStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
