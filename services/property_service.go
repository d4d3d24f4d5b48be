package services

import (
	"strings"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

// PropertyInput carries the owner-editable fields for create and update.
type PropertyInput struct {
	Name             string
	Description      string
	PropertyType     string
	Address          string
	City             string
	State            string
	PinCode          string
	Latitude         *float64
	Longitude        *float64
	TotalRooms       int
	AvailableRooms   int
	MonthlyRent      float64
	SecurityDeposit  float64
	RoomType         string
	GenderPreference string

	Wifi         bool
	Parking      bool
	Meals        bool
	Laundry      bool
	Ac           bool
	Tv           bool
	Gym          bool
	Security     bool
	PowerBackup  bool
	Housekeeping bool

	NearbyLandmarks     string
	RulesAndRegulations string
	DistanceFromCollege *float64
	CollegeNearby       string
	ImageURLs           []string
}

func (s *PropertyService) AddProperty(ownerID uuid.UUID, in PropertyInput) (*models.Property, error) {
	var owner models.User
	if err := s.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		return nil, NotFound("Owner not found!")
	}
	if owner.Role != models.RoleOwner {
		return nil, Forbidden("Only PG owners can add properties!")
	}
	if in.AvailableRooms > in.TotalRooms {
		return nil, Validation("Available rooms cannot exceed total rooms!")
	}

	property := models.Property{
		OwnerID:    owner.ID,
		OwnerName:  owner.FullName,
		OwnerPhone: owner.PhoneNumber,
		OwnerEmail: owner.Email,
		Status:     models.PropertyStatusActive,
	}
	applyPropertyInput(&property, in)

	if err := s.DB.Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) UpdateProperty(propertyID, ownerID uuid.UUID, in PropertyInput) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, NotFound("Property not found!")
	}
	if property.OwnerID != ownerID {
		return nil, Forbidden("You are not authorized to update this property!")
	}
	if in.AvailableRooms > in.TotalRooms {
		return nil, Validation("Available rooms cannot exceed total rooms!")
	}

	applyPropertyInput(&property, in)

	if err := s.DB.Save(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) DeleteProperty(propertyID, ownerID uuid.UUID) error {
	var property models.Property
	if err := s.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return NotFound("Property not found!")
	}
	if property.OwnerID != ownerID {
		return Forbidden("You are not authorized to delete this property!")
	}
	return s.DB.Delete(&property).Error
}

func (s *PropertyService) GetPropertyByID(propertyID uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, NotFound("Property not found!")
	}
	return &property, nil
}

func (s *PropertyService) GetPropertiesByOwner(ownerID uuid.UUID) ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&properties).Error
	return properties, err
}

func (s *PropertyService) GetActivePropertiesByOwner(ownerID uuid.UUID) ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.Where("owner_id = ? AND status = ?", ownerID, models.PropertyStatusActive).Find(&properties).Error
	return properties, err
}

// SearchFilters are all optional; nil/empty means "don't filter on this".
type SearchFilters struct {
	City             string
	State            string
	PropertyType     string
	RoomType         string
	GenderPreference string
	MinPrice         *float64
	MaxPrice         *float64
}

// SearchProperties scans active listings through a linear predicate filter.
func (s *PropertyService) SearchProperties(f SearchFilters) ([]models.Property, error) {
	var active []models.Property
	if err := s.DB.Where("status = ?", models.PropertyStatusActive).Find(&active).Error; err != nil {
		return nil, err
	}

	matched := make([]models.Property, 0, len(active))
	for _, p := range active {
		if f.City != "" && !strings.EqualFold(p.City, f.City) {
			continue
		}
		if f.State != "" && !strings.EqualFold(p.State, f.State) {
			continue
		}
		if f.PropertyType != "" && p.PropertyType != f.PropertyType {
			continue
		}
		if f.RoomType != "" && p.RoomType != f.RoomType {
			continue
		}
		if f.GenderPreference != "" && p.GenderPreference != f.GenderPreference {
			continue
		}
		if f.MinPrice != nil && p.MonthlyRent < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.MonthlyRent > *f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

type PropertyStatistics struct {
	TotalProperties  int64 `json:"total_properties"`
	ActiveProperties int64 `json:"active_properties"`
	TotalRooms       int   `json:"total_rooms"`
	AvailableRooms   int   `json:"available_rooms"`
}

func (s *PropertyService) GetOwnerPropertyStatistics(ownerID uuid.UUID) (*PropertyStatistics, error) {
	stats := &PropertyStatistics{}
	if err := s.DB.Model(&models.Property{}).Where("owner_id = ?", ownerID).Count(&stats.TotalProperties).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Property{}).Where("owner_id = ? AND status = ?", ownerID, models.PropertyStatusActive).Count(&stats.ActiveProperties).Error; err != nil {
		return nil, err
	}

	var properties []models.Property
	if err := s.DB.Where("owner_id = ?", ownerID).Find(&properties).Error; err != nil {
		return nil, err
	}
	for _, p := range properties {
		stats.TotalRooms += p.TotalRooms
		stats.AvailableRooms += p.AvailableRooms
	}
	return stats, nil
}

func applyPropertyInput(p *models.Property, in PropertyInput) {
	p.Name = in.Name
	p.Description = in.Description
	p.PropertyType = in.PropertyType
	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.PinCode = in.PinCode
	p.Latitude = in.Latitude
	p.Longitude = in.Longitude
	p.TotalRooms = in.TotalRooms
	p.AvailableRooms = in.AvailableRooms
	p.MonthlyRent = in.MonthlyRent
	p.SecurityDeposit = in.SecurityDeposit
	p.RoomType = in.RoomType
	p.GenderPreference = in.GenderPreference

	p.Wifi = in.Wifi
	p.Parking = in.Parking
	p.Meals = in.Meals
	p.Laundry = in.Laundry
	p.Ac = in.Ac
	p.Tv = in.Tv
	p.Gym = in.Gym
	p.Security = in.Security
	p.PowerBackup = in.PowerBackup
	p.Housekeeping = in.Housekeeping

	p.NearbyLandmarks = in.NearbyLandmarks
	p.RulesAndRegulations = in.RulesAndRegulations
	p.DistanceFromCollege = in.DistanceFromCollege
	p.CollegeNearby = in.CollegeNearby
	p.ImageURLs = in.ImageURLs

	p.UpdatedAt = time.Now()
}
