package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/services"
)

type ScheduleVisitRequest struct {
	PropertyID   string `json:"property_id" validate:"required,uuid"`
	VisitDate    string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	VisitTime    string `json:"visit_time" validate:"required,datetime=15:04"`
	VisitPurpose string `json:"visit_purpose" validate:"omitempty,max=100"`
	SeekerNote   string `json:"seeker_note" validate:"omitempty,max=500"`
}

func ScheduleVisit(c *fiber.Ctx) error {
	seekerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req ScheduleVisitRequest
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
	visitDate, _ := time.Parse("2006-01-02", req.VisitDate)

	visit, err := services.NewVisitScheduleService(database.DB).ScheduleVisit(seekerID, propertyID, visitDate, req.VisitTime, req.VisitPurpose, req.SeekerNote)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(visit)
}

type ConfirmVisitRequest struct {
	OwnerNote string `json:"owner_note" validate:"omitempty,max=500"`
}

func ConfirmVisit(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	visitID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req ConfirmVisitRequest
	_ = c.BodyParser(&req)

	visit, err := services.NewVisitScheduleService(database.DB).ConfirmVisit(visitID, ownerID, req.OwnerNote)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visit)
}

type RescheduleVisitRequest struct {
	VisitDate string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	VisitTime string `json:"visit_time" validate:"required,datetime=15:04"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

func RescheduleVisit(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	visitID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req RescheduleVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	newDate, _ := time.Parse("2006-01-02", req.VisitDate)

	visit, err := services.NewVisitScheduleService(database.DB).RescheduleVisit(visitID, userID, newDate, req.VisitTime, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visit)
}

type CancelVisitRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func CancelVisit(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	visitID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req CancelVisitRequest
	_ = c.BodyParser(&req)

	visit, err := services.NewVisitScheduleService(database.DB).CancelVisit(visitID, userID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visit)
}

type CompleteVisitRequest struct {
	Feedback string `json:"feedback" validate:"omitempty,max=1000"`
}

func CompleteVisit(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	visitID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req CompleteVisitRequest
	_ = c.BodyParser(&req)

	visit, err := services.NewVisitScheduleService(database.DB).CompleteVisit(visitID, ownerID, req.Feedback)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visit)
}

func MarkVisitNoShow(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	visitID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	visit, err := services.NewVisitScheduleService(database.DB).MarkNoShow(visitID, ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visit)
}

func GetMyVisits(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	svc := services.NewVisitScheduleService(database.DB)

	var visits []models.VisitSchedule
	if roleFromToken(c) == models.RoleOwner {
		visits, err = svc.GetOwnerVisits(userID)
	} else {
		visits, err = svc.GetSeekerVisits(userID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visits)
}

func GetUpcomingVisits(c *fiber.Ctx) error {
	userID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	svc := services.NewVisitScheduleService(database.DB)

	var visits []models.VisitSchedule
	if roleFromToken(c) == models.RoleOwner {
		visits, err = svc.GetUpcomingOwnerVisits(userID)
	} else {
		visits, err = svc.GetUpcomingSeekerVisits(userID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visits)
}

func GetPendingVisits(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	visits, err := services.NewVisitScheduleService(database.DB).GetPendingVisitRequests(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(visits)
}
