package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/services"
)

type AddFavoriteRequest struct {
	PersonalNote string `json:"personal_note" validate:"omitempty,max=500"`
}

func AddFavorite(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	var req AddFavoriteRequest
	// body is optional
	_ = c.BodyParser(&req)

	favorite, err := services.NewFavoriteService(database.DB).AddToFavorites(userID, propertyID, req.PersonalNote)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(favorite)
}

func RemoveFavorite(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	if err := services.NewFavoriteService(database.DB).RemoveFromFavorites(userID, propertyID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Removed from favorites."})
}

func ToggleFavorite(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	favorited, err := services.NewFavoriteService(database.DB).ToggleFavorite(userID, propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"favorited": favorited})
}

func GetMyFavorites(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	favorites, err := services.NewFavoriteService(database.DB).GetUserFavorites(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(favorites)
}

func CheckFavorite(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	favorited, err := services.NewFavoriteService(database.DB).IsFavorited(userID, propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"favorited": favorited})
}

type UpdateFavoriteNoteRequest struct {
	PersonalNote string `json:"personal_note" validate:"max=500"`
}

func UpdateFavoriteNote(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateFavoriteNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	favorite, err := services.NewFavoriteService(database.DB).UpdateNote(userID, propertyID, req.PersonalNote)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(favorite)
}
