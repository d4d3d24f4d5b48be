package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/services"
)

func GetPreferences(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	pref, err := services.NewPreferenceService(database.DB).GetPreferences(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pref)
}

func SavePreferences(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req models.UserPreference
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	pref, err := services.NewPreferenceService(database.DB).SavePreferences(userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pref)
}

func GetRecentSearches(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	searches, err := services.NewPreferenceService(database.DB).GetRecentSearches(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(searches)
}

func ClearRecentSearches(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if err := services.NewPreferenceService(database.DB).ClearRecentSearches(userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Search history cleared."})
}
