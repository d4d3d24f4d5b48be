package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/services"
)

type SendInquiryRequest struct {
	PropertyID  string `json:"property_id" validate:"required,uuid"`
	Subject     string `json:"subject" validate:"required,min=3,max=255"`
	Message     string `json:"message" validate:"required,min=3"`
	InquiryType string `json:"inquiry_type" validate:"omitempty,oneof=general availability pricing amenities visit_request booking_query other"`
}

func SendInquiry(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req SendInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	propertyID, err := parseUUID(req.PropertyID)
	if err != nil {
		return respondError(c, err)
	}

	inquiry, err := services.NewInquiryService(database.DB).SendInquiry(seekerID, propertyID, req.Subject, req.Message, req.InquiryType)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

type ReplyInquiryRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

func ReplyToInquiry(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	inquiryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req ReplyInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inquiry, err := services.NewInquiryService(database.DB).ReplyToInquiry(inquiryID, userID, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiry)
}

func CloseInquiry(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	inquiryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	inquiry, err := services.NewInquiryService(database.DB).CloseInquiry(inquiryID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiry)
}

func MarkInquiryRead(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	inquiryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	inquiry, err := services.NewInquiryService(database.DB).MarkAsRead(inquiryID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiry)
}

func GetInquiry(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	inquiryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	inquiry, err := services.NewInquiryService(database.DB).GetInquiryByID(inquiryID)
	if err != nil {
		return respondError(c, err)
	}
	if inquiry.SeekerID != userID && inquiry.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not part of this inquiry!"})
	}
	return c.JSON(inquiry)
}

func GetMyInquiries(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	svc := services.NewInquiryService(database.DB)

	var inquiries []models.Inquiry
	if roleFromToken(c) == models.RoleOwner {
		inquiries, err = svc.GetOwnerInquiries(userID)
	} else {
		inquiries, err = svc.GetSeekerInquiries(userID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiries)
}

func GetPendingInquiries(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	inquiries, err := services.NewInquiryService(database.DB).GetPendingInquiries(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiries)
}

func GetUnreadInquiryCount(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	count, err := services.NewInquiryService(database.DB).GetUnreadCount(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"unread_count": count})
}
