package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func VisitRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	visits := api.Group("/visits", middleware.Protected())
	visits.Get("/me", handlers.GetMyVisits)
	visits.Get("/upcoming", handlers.GetUpcomingVisits)
	visits.Post("/:id/reschedule", handlers.RescheduleVisit)
	visits.Post("/:id/cancel", handlers.CancelVisit)

	seekerVisits := api.Group("/visits", middleware.Protected(), middleware.SeekerRequired())
	seekerVisits.Post("", handlers.ScheduleVisit)

	ownerVisits := api.Group("/owner/visits", middleware.Protected(), middleware.OwnerRequired())
	ownerVisits.Get("/pending", handlers.GetPendingVisits)
	ownerVisits.Post("/:id/confirm", handlers.ConfirmVisit)
	ownerVisits.Post("/:id/complete", handlers.CompleteVisit)
	ownerVisits.Post("/:id/no-show", handlers.MarkVisitNoShow)
}
