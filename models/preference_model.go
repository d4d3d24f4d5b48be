package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SearchHistory struct {
	SearchQuery string    `json:"search_query"`
	City        string    `json:"city"`
	MinPrice    *float64  `json:"min_price"`
	MaxPrice    *float64  `json:"max_price"`
	SearchedAt  time.Time `json:"searched_at"`
}

type UserPreference struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	UserID    uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	UserEmail string    `gorm:"size:255" json:"user_email"`

	PreferredCities        []string `gorm:"serializer:json" json:"preferred_cities"`
	PreferredAreas         []string `gorm:"serializer:json" json:"preferred_areas"`
	PreferredState         string   `gorm:"size:100" json:"preferred_state"`
	MaxDistanceFromCollege *float64 `json:"max_distance_from_college"`
	CollegeOrWorkplace     string   `gorm:"size:255" json:"college_or_workplace"`
	CollegeOrWorkplaceAddr string   `gorm:"size:255" json:"college_or_workplace_address"`

	MinBudget              *float64 `json:"min_budget"`
	MaxBudget              *float64 `json:"max_budget"`
	IncludeSecurityDeposit bool     `gorm:"default:true" json:"include_security_deposit"`

	PreferredPropertyType string `gorm:"size:30" json:"preferred_property_type"`
	PreferredRoomType     string `gorm:"size:20" json:"preferred_room_type"`
	GenderPreference      string `gorm:"size:20" json:"gender_preference"`

	NeedWifi         bool `gorm:"default:false" json:"need_wifi"`
	NeedParking      bool `gorm:"default:false" json:"need_parking"`
	NeedMeals        bool `gorm:"default:false" json:"need_meals"`
	NeedLaundry      bool `gorm:"default:false" json:"need_laundry"`
	NeedAc           bool `gorm:"default:false" json:"need_ac"`
	NeedTv           bool `gorm:"default:false" json:"need_tv"`
	NeedGym          bool `gorm:"default:false" json:"need_gym"`
	NeedSecurity     bool `gorm:"default:false" json:"need_security"`
	NeedPowerBackup  bool `gorm:"default:false" json:"need_power_backup"`
	NeedHousekeeping bool `gorm:"default:false" json:"need_housekeeping"`

	ExpectedMoveInDate string `gorm:"size:20" json:"expected_move_in_date"` // immediate, within_week, within_month, flexible
	ExpectedStayMonths int    `json:"expected_stay_months"`

	VegetarianOnly   bool   `gorm:"default:false" json:"vegetarian_only"`
	NonSmoker        bool   `gorm:"default:false" json:"non_smoker"`
	NoPets           bool   `gorm:"default:false" json:"no_pets"`
	QuietEnvironment bool   `gorm:"default:false" json:"quiet_environment"`
	WorkSchedule     string `gorm:"size:20" json:"work_schedule"`

	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	SmsNotifications   bool `gorm:"default:false" json:"sms_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`
	NotifyNewListings  bool `gorm:"default:true" json:"notify_new_listings"`
	NotifyPriceDrops   bool `gorm:"default:true" json:"notify_price_drops"`

	RecentSearches []SearchHistory `gorm:"serializer:json" json:"recent_searches"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *UserPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
