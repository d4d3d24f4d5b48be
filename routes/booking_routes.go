package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Get("/:id", handlers.GetBooking)
	booking.Post("/:id/cancel", handlers.CancelBooking)

	seekerBooking := api.Group("/bookings", middleware.Protected(), middleware.SeekerRequired())
	seekerBooking.Post("", handlers.CreateBooking)
	seekerBooking.Get("/me/active", handlers.GetActiveBooking)
	seekerBooking.Post("/:id/documents", handlers.SubmitDocuments)

	ownerBooking := api.Group("/owner/bookings", middleware.Protected(), middleware.OwnerRequired())
	ownerBooking.Get("/statistics", handlers.GetBookingStatistics)
	ownerBooking.Post("/:id/confirm", handlers.ConfirmBooking)
	ownerBooking.Post("/:id/reject", handlers.RejectBooking)
	ownerBooking.Post("/:id/verify-documents", handlers.VerifyDocuments)
	ownerBooking.Post("/:id/request-payment", handlers.RequestPayment)
	ownerBooking.Post("/:id/confirm-advance", handlers.ConfirmAdvancePayment)
	ownerBooking.Post("/:id/complete", handlers.CompleteBooking)
}
