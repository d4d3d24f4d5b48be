package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payment := api.Group("/payments", middleware.Protected())
	payment.Get("/me", handlers.GetMyPayments)
	payment.Get("/:id/late-fee", handlers.GetLateFee)
	payment.Get("/booking/:bookingId", handlers.GetBookingPayments)

	seekerPayment := api.Group("/payments", middleware.Protected(), middleware.SeekerRequired())
	seekerPayment.Get("/pending", handlers.GetPendingPayments)
	seekerPayment.Get("/overdue", handlers.GetOverduePayments)

	ownerPayment := api.Group("/owner/payments", middleware.Protected(), middleware.OwnerRequired())
	ownerPayment.Get("/statistics", handlers.GetPaymentStatistics)
	ownerPayment.Post("/booking/:bookingId", handlers.CreateRentPayment)
	ownerPayment.Post("/:id/record", handlers.RecordPayment)
}
