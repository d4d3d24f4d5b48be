package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	upload := api.Group("/uploads", middleware.Protected())
	upload.Post("/image", handlers.UploadImage)
	upload.Delete("/image", handlers.DeleteImage)
	upload.Get("/signature", handlers.GenerateUploadSignature)
}
