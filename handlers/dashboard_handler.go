package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/services"
)

func GetOwnerDashboard(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	dashboard, err := services.NewDashboardService(database.DB).GetOwnerDashboard(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}

func GetSeekerDashboard(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	dashboard, err := services.NewDashboardService(database.DB).GetSeekerDashboard(seekerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}
