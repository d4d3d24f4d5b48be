package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func PropertyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// public browsing
	api.Get("/properties/search", handlers.SearchProperties)
	api.Get("/properties/:id", handlers.GetProperty)
	api.Get("/properties/:propertyId/reviews", handlers.GetPropertyReviews)
	api.Get("/properties/:propertyId/rating", handlers.GetPropertyRatingSummary)

	owner := api.Group("/owner/properties", middleware.Protected(), middleware.OwnerRequired())
	owner.Post("", handlers.AddProperty)
	owner.Get("", handlers.GetMyProperties)
	owner.Get("/statistics", handlers.GetPropertyStatistics)
	owner.Put("/:id", handlers.UpdateProperty)
	owner.Delete("/:id", handlers.DeleteProperty)
}
