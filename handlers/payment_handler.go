package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/notifications"
	"pgstay-server/services"
)

// CreateRentPayment lets the owner raise this month's rent record for an
// active booking ahead of the scheduled job.
func CreateRentPayment(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "bookingId")
	if err != nil {
		return respondError(c, err)
	}

	svc := services.NewBookingService(database.DB)
	booking, err := svc.GetBookingByID(bookingID)
	if err != nil {
		return respondError(c, err)
	}
	if booking.OwnerID != ownerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not authorized to perform this action!"})
	}

	payment, err := services.NewPaymentService(database.DB).CreateMonthlyRentPayment(bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

type RecordPaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash upi bank_transfer card"`
	TransactionID string `json:"transaction_id"`
}

func RecordPayment(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	paymentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := services.NewPaymentService(database.DB).RecordPayment(paymentID, ownerID, req.PaymentMethod, req.TransactionID)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.SendPaymentReceiptEmail(payment.SeekerName, payment.SeekerEmail, payment.PropertyName, payment.TotalAmount)

	return c.JSON(payment)
}

// GetLateFee previews the late fee a pending payment would carry if paid
// today.
func GetLateFee(c *fiber.Ctx) error {
	if _, err := userIDFromToken(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	paymentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	fee, err := services.NewPaymentService(database.DB).CalculateCurrentLateFee(paymentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"late_fee": fee})
}

func GetMyPayments(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	svc := services.NewPaymentService(database.DB)

	var payments []models.Payment
	if roleFromToken(c) == models.RoleOwner {
		payments, err = svc.GetOwnerPayments(userID)
	} else {
		payments, err = svc.GetSeekerPayments(userID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

func GetPendingPayments(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	payments, err := services.NewPaymentService(database.DB).GetPendingPayments(seekerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

func GetOverduePayments(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	payments, err := services.NewPaymentService(database.DB).GetOverduePayments(seekerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

func GetBookingPayments(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "bookingId")
	if err != nil {
		return respondError(c, err)
	}

	booking, err := services.NewBookingService(database.DB).GetBookingByID(bookingID)
	if err != nil {
		return respondError(c, err)
	}
	if booking.SeekerID != userID && booking.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this booking!"})
	}

	payments, err := services.NewPaymentService(database.DB).GetBookingPaymentHistory(bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

func GetPaymentStatistics(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	stats, err := services.NewPaymentService(database.DB).GetOwnerPaymentStatistics(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
