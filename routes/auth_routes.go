package routes

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/handlers"
	"pgstay-server/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/verify-otp", handlers.VerifyOtp)
	auth.Post("/resend-otp", handlers.ResendOtp)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/check-email", handlers.CheckEmail)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/reset-password", handlers.ResetPassword)

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
}
