package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pgstay-server/database"
	"pgstay-server/models"
	"pgstay-server/services"
)

type PropertyRequest struct {
	Name             string   `json:"name" validate:"required,min=3,max=255"`
	Description      string   `json:"description"`
	PropertyType     string   `json:"property_type" validate:"required,oneof=pg hostel shared_apartment independent_room"`
	Address          string   `json:"address" validate:"required"`
	City             string   `json:"city" validate:"required"`
	State            string   `json:"state" validate:"required"`
	PinCode          string   `json:"pin_code" validate:"required,len=6"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	TotalRooms       int      `json:"total_rooms" validate:"required,min=1"`
	AvailableRooms   int      `json:"available_rooms" validate:"min=0"`
	MonthlyRent      float64  `json:"monthly_rent" validate:"required,gt=0"`
	SecurityDeposit  float64  `json:"security_deposit" validate:"min=0"`
	RoomType         string   `json:"room_type" validate:"required,oneof=single double triple dormitory"`
	GenderPreference string   `json:"gender_preference" validate:"required,oneof=male female any"`

	Wifi         bool `json:"wifi"`
	Parking      bool `json:"parking"`
	Meals        bool `json:"meals"`
	Laundry      bool `json:"laundry"`
	Ac           bool `json:"ac"`
	Tv           bool `json:"tv"`
	Gym          bool `json:"gym"`
	Security     bool `json:"security"`
	PowerBackup  bool `json:"power_backup"`
	Housekeeping bool `json:"housekeeping"`

	NearbyLandmarks     string   `json:"nearby_landmarks"`
	RulesAndRegulations string   `json:"rules_and_regulations"`
	DistanceFromCollege *float64 `json:"distance_from_college"`
	CollegeNearby       string   `json:"college_nearby"`
	ImageURLs           []string `json:"image_urls"`
}

func (r PropertyRequest) toInput() services.PropertyInput {
	return services.PropertyInput{
		Name:             r.Name,
		Description:      r.Description,
		PropertyType:     r.PropertyType,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		PinCode:          r.PinCode,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		TotalRooms:       r.TotalRooms,
		AvailableRooms:   r.AvailableRooms,
		MonthlyRent:      r.MonthlyRent,
		SecurityDeposit:  r.SecurityDeposit,
		RoomType:         r.RoomType,
		GenderPreference: r.GenderPreference,

		Wifi:         r.Wifi,
		Parking:      r.Parking,
		Meals:        r.Meals,
		Laundry:      r.Laundry,
		Ac:           r.Ac,
		Tv:           r.Tv,
		Gym:          r.Gym,
		Security:     r.Security,
		PowerBackup:  r.PowerBackup,
		Housekeeping: r.Housekeeping,

		NearbyLandmarks:     r.NearbyLandmarks,
		RulesAndRegulations: r.RulesAndRegulations,
		DistanceFromCollege: r.DistanceFromCollege,
		CollegeNearby:       r.CollegeNearby,
		ImageURLs:           r.ImageURLs,
	}
}

func AddProperty(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	property, err := services.NewPropertyService(database.DB).AddProperty(ownerID, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func UpdateProperty(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	property, err := services.NewPropertyService(database.DB).UpdateProperty(propertyID, ownerID, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

func DeleteProperty(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	propertyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := services.NewPropertyService(database.DB).DeleteProperty(propertyID, ownerID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Property deleted successfully."})
}

func GetProperty(c *fiber.Ctx) error {
	propertyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	property, err := services.NewPropertyService(database.DB).GetPropertyByID(propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(property)
}

func GetMyProperties(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	properties, err := services.NewPropertyService(database.DB).GetPropertiesByOwner(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(properties)
}

// SearchProperties lists active properties matching the query filters and
// records the search in the caller's history when authenticated.
func SearchProperties(c *fiber.Ctx) error {
	filters := services.SearchFilters{
		City:             c.Query("city"),
		State:            c.Query("state"),
		PropertyType:     c.Query("property_type"),
		RoomType:         c.Query("room_type"),
		GenderPreference: c.Query("gender_preference"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &v
		}
	}

	properties, err := services.NewPropertyService(database.DB).SearchProperties(filters)
	if err != nil {
		return respondError(c, err)
	}

	// search history is best effort and only for authenticated callers
	if userID, err := userIDFromToken(c); err == nil {
		search := models.SearchHistory{
			SearchQuery: c.Query("q"),
			City:        filters.City,
			MinPrice:    filters.MinPrice,
			MaxPrice:    filters.MaxPrice,
		}
		_ = services.NewPreferenceService(database.DB).RecordSearch(userID, search)
	}

	return c.JSON(properties)
}

func GetPropertyStatistics(c *fiber.Ctx) error {
	ownerID, err := userIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	stats, err := services.NewPropertyService(database.DB).GetOwnerPropertyStatistics(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
