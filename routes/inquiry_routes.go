package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func InquiryRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	inquiries := api.Group("/inquiries", middleware.Protected())
	inquiries.Get("/me", handlers.GetMyInquiries)
	inquiries.Get("/unread-count", handlers.GetUnreadInquiryCount)
	inquiries.Get("/:id", handlers.GetInquiry)
	inquiries.Post("/:id/reply", handlers.ReplyToInquiry)
	inquiries.Post("/:id/close", handlers.CloseInquiry)
	inquiries.Post("/:id/read", handlers.MarkInquiryRead)

	seekerInquiries := api.Group("/inquiries", middleware.Protected(), middleware.SeekerRequired())
	seekerInquiries.Post("", handlers.SendInquiry)

	ownerInquiries := api.Group("/owner/inquiries", middleware.Protected(), middleware.OwnerRequired())
	ownerInquiries.Get("/pending", handlers.GetPendingInquiries)
}
