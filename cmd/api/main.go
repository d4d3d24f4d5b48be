package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "pgstay-server/configs"
	"pgstay-server/database"
	"pgstay-server/handlers"
	"pgstay-server/jobs"
	"pgstay-server/notifications"
	"pgstay-server/otp"
	"pgstay-server/routes"
	"pgstay-server/storage"
	"pgstay-server/uploads"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	notifications.InitEmailService()
	uploads.InitCloudinary()

	storage.InitializeRedis()
	if storage.Redis != nil {
		handlers.OtpStore = otp.NewRedisStore(storage.Redis)
		log.Println("✅ OTP store backed by Redis.")
	} else {
		log.Println("⚠️ Redis unavailable, OTP store falling back to memory.")
	}

	c := cron.New()
	c.AddFunc("0 0 1 * *", jobs.GenerateMonthlyRentPayments)
	c.AddFunc("0 0 * * *", jobs.UpdateLateFees)
	go c.Start()
	log.Println("✅ Payment cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "PgStay",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to PgStay API",
		})
	})

	routes.AuthRoutes(app)
	routes.PropertyRoutes(app)
	routes.BookingRoutes(app)
	routes.PaymentRoutes(app)
	routes.FavoriteRoutes(app)
	routes.InquiryRoutes(app)
	routes.VisitRoutes(app)
	routes.ReviewRoutes(app)
	routes.PreferenceRoutes(app)
	routes.DashboardRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
