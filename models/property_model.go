package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PropertyStatusActive          = "active"
	PropertyStatusInactive        = "inactive"
	PropertyStatusPendingApproval = "pending_approval"
	PropertyStatusBlocked         = "blocked"
)

type Property struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	PropertyType string    `gorm:"size:30;not null" json:"property_type"` // pg, hostel, shared_apartment, independent_room
	Address      string    `gorm:"size:255;not null" json:"address"`
	City         string    `gorm:"size:100;not null" json:"city"`
	State        string    `gorm:"size:100;not null" json:"state"`
	PinCode      string    `gorm:"size:10;not null" json:"pin_code"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`

	// Owner snapshot, copied at creation time
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName  string    `gorm:"size:255" json:"owner_name"`
	OwnerPhone string    `gorm:"size:20" json:"owner_phone"`
	OwnerEmail string    `gorm:"size:255" json:"owner_email"`

	TotalRooms      int     `gorm:"not null" json:"total_rooms"`
	AvailableRooms  int     `gorm:"not null" json:"available_rooms"`
	MonthlyRent     float64 `gorm:"type:numeric(10,2);not null" json:"monthly_rent"`
	SecurityDeposit float64 `gorm:"type:numeric(10,2)" json:"security_deposit"`

	RoomType         string `gorm:"size:20;not null" json:"room_type"` // single, double, triple, dormitory
	GenderPreference string `gorm:"size:20;not null" json:"gender_preference"`

	Wifi         bool `gorm:"default:false" json:"wifi"`
	Parking      bool `gorm:"default:false" json:"parking"`
	Meals        bool `gorm:"default:false" json:"meals"`
	Laundry      bool `gorm:"default:false" json:"laundry"`
	Ac           bool `gorm:"default:false" json:"ac"`
	Tv           bool `gorm:"default:false" json:"tv"`
	Gym          bool `gorm:"default:false" json:"gym"`
	Security     bool `gorm:"default:false" json:"security"`
	PowerBackup  bool `gorm:"default:false" json:"power_backup"`
	Housekeeping bool `gorm:"default:false" json:"housekeeping"`

	NearbyLandmarks     string   `gorm:"type:text" json:"nearby_landmarks"`
	RulesAndRegulations string   `gorm:"type:text" json:"rules_and_regulations"`
	DistanceFromCollege *float64 `json:"distance_from_college"`
	CollegeNearby       string   `gorm:"size:255" json:"college_nearby"`

	ImageURLs []string `gorm:"serializer:json" json:"image_urls"`

	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
