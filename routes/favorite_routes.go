package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func FavoriteRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	favorites := api.Group("/favorites", middleware.Protected(), middleware.SeekerRequired())
	favorites.Get("", handlers.GetMyFavorites)
	favorites.Post("/:propertyId", handlers.AddFavorite)
	favorites.Delete("/:propertyId", handlers.RemoveFavorite)
	favorites.Post("/:propertyId/toggle", handlers.ToggleFavorite)
	favorites.Get("/:propertyId/check", handlers.CheckFavorite)
	favorites.Put("/:propertyId/note", handlers.UpdateFavoriteNote)
}
