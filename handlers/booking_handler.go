package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/notifications"
	"pgstay-server/services"
)

type CreateBookingRequest struct {
	PropertyID     string `json:"property_id" validate:"required,uuid"`
	CheckInDate    string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	NumberOfMonths int    `json:"number_of_months" validate:"required,min=1,max=24"`
}

func CreateBooking(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req CreateBookingRequest
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
	checkIn, _ := time.Parse("2006-01-02", req.CheckInDate)

	booking, err := services.NewBookingService(database.DB).CreateBookingRequest(seekerID, propertyID, checkIn, req.NumberOfMonths)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.SendBookingStatusEmail(booking.OwnerName, booking.OwnerEmail, booking.PropertyName, "awaiting your confirmation")

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func ConfirmBooking(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	booking, err := services.NewBookingService(database.DB).ConfirmBooking(bookingID, ownerID)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.SendBookingStatusEmail(booking.SeekerName, booking.SeekerEmail, booking.PropertyName, "confirmed by the owner")

	return c.JSON(booking)
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

func RejectBooking(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req RejectBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.NewBookingService(database.DB).RejectBooking(bookingID, ownerID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.SendBookingStatusEmail(booking.SeekerName, booking.SeekerEmail, booking.PropertyName, "rejected by the owner")

	return c.JSON(booking)
}

type SubmitDocumentsRequest struct {
	Documents []models.DocumentInfo `json:"documents" validate:"required,min=1,dive"`
}

func SubmitDocuments(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req SubmitDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.NewBookingService(database.DB).SubmitDocuments(bookingID, seekerID, req.Documents)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

type VerifyDocumentsRequest struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note"`
}

func VerifyDocuments(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req VerifyDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	booking, err := services.NewBookingService(database.DB).VerifyDocuments(bookingID, ownerID, req.Approved, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func RequestPayment(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	booking, err := services.NewBookingService(database.DB).RequestPayment(bookingID, ownerID)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.SendBookingStatusEmail(booking.SeekerName, booking.SeekerEmail, booking.PropertyName, "awaiting advance payment")

	return c.JSON(booking)
}

type ConfirmAdvancePaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash upi bank_transfer card"`
}

func ConfirmAdvancePayment(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req ConfirmAdvancePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.NewBookingService(database.DB).ConfirmAdvancePayment(bookingID, ownerID, req.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}

	go notifications.SendBookingStatusEmail(booking.SeekerName, booking.SeekerEmail, booking.PropertyName, "active")

	return c.JSON(booking)
}

type CompleteBookingRequest struct {
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

func CompleteBooking(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req CompleteBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	checkOut, _ := time.Parse("2006-01-02", req.CheckOutDate)

	booking, err := services.NewBookingService(database.DB).CompleteBooking(bookingID, ownerID, checkOut)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

func CancelBooking(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.NewBookingService(database.DB).CancelBooking(bookingID, userID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func GetBooking(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	bookingID, err := parseUUIDParam(c, "id")
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
	return c.JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	svc := services.NewBookingService(database.DB)
	status := c.Query("status")

	var bookings []models.Booking
	if roleFromToken(c) == models.RoleOwner {
		if status != "" {
			bookings, err = svc.GetOwnerBookingsByStatus(userID, status)
		} else {
			bookings, err = svc.GetOwnerBookings(userID)
		}
	} else {
		if status != "" {
			bookings, err = svc.GetSeekerBookingsByStatus(userID, status)
		} else {
			bookings, err = svc.GetSeekerBookings(userID)
		}
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bookings)
}

func GetActiveBooking(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	booking, err := services.NewBookingService(database.DB).GetActiveSeekerBooking(seekerID)
	if err != nil {
		return respondError(c, err)
	}
	if booking == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active booking found."})
	}
	return c.JSON(booking)
}

func GetBookingStatistics(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	stats, err := services.NewBookingService(database.DB).GetOwnerBookingStatistics(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
