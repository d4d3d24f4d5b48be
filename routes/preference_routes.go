package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func PreferenceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	prefs := api.Group("/preferences", middleware.Protected())
	prefs.Get("", handlers.GetPreferences)
	prefs.Put("", handlers.SavePreferences)
	prefs.Get("/searches", handlers.GetRecentSearches)
	prefs.Delete("/searches", handlers.ClearRecentSearches)
}
