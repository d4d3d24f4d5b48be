package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/owner/dashboard", middleware.Protected(), middleware.OwnerRequired(), handlers.GetOwnerDashboard)
	api.Get("/seeker/dashboard", middleware.Protected(), middleware.SeekerRequired(), handlers.GetSeekerDashboard)
}
