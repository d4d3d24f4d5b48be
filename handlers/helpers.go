package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pgstay-server/otp"
	"pgstay-server/services"
)

var validate = validator.New()

// OtpStore holds pending email verification codes. Main swaps in the Redis
// store when Redis is configured; the in-memory store is the fallback.
var OtpStore otp.Store = otp.NewMemoryStore()

func userIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	claims := token.Claims.(jwt.MapClaims)
	rawID, _ := claims["user_id"].(string)
	return uuid.Parse(rawID)
}

func roleFromToken(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role
}

// respondError maps domain errors onto HTTP statuses; anything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, services.Validation("Invalid id")
	}
	return id, nil
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, services.Validation("Invalid " + name)
	}
	return id, nil
}
