package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/services"
)

func WriteReview(c *fiber.Ctx) error {
	reviewerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "bookingId")
	if err != nil {
		return respondError(c, err)
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.NewReviewService(database.DB).WriteReview(reviewerID, bookingID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

type RespondToReviewRequest struct {
	Response string `json:"response" validate:"required,min=1,max=1000"`
}

func RespondToReview(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req RespondToReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.NewReviewService(database.DB).RespondToReview(reviewID, ownerID, req.Response)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

func MarkReviewHelpful(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	review, err := services.NewReviewService(database.DB).MarkHelpful(reviewID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

type ReportReviewRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

func ReportReview(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req ReportReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.NewReviewService(database.DB).ReportReview(reviewID, userID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

func GetPropertyReviews(c *fiber.Ctx) error {
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	reviews, err := services.NewReviewService(database.DB).GetPropertyReviews(propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

func GetPropertyRatingSummary(c *fiber.Ctx) error {
	propertyID, err := parseUUIDParam(c, "propertyId")
	if err != nil {
		return respondError(c, err)
	}

	summary, err := services.NewReviewService(database.DB).GetPropertyRatingSummary(propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func GetMyReviews(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	svc := services.NewReviewService(database.DB)
	if roleFromToken(c) == models.RoleOwner {
		reviews, err := svc.GetOwnerReviews(userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(reviews)
	}

	reviews, err := svc.GetReviewerReviews(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}
