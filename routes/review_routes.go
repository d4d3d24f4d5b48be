package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews", middleware.Protected())
	reviews.Get("/me", handlers.GetMyReviews)
	reviews.Post("/:id/helpful", handlers.MarkReviewHelpful)
	reviews.Post("/:id/report", handlers.ReportReview)

	seekerReviews := api.Group("/bookings", middleware.Protected(), middleware.SeekerRequired())
	seekerReviews.Post("/:bookingId/review", handlers.WriteReview)

	ownerReviews := api.Group("/owner/reviews", middleware.Protected(), middleware.OwnerRequired())
	ownerReviews.Post("/:id/respond", handlers.RespondToReview)
}
