package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
	ReviewStatusHidden   = "hidden"
)

type Review struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	PropertyName string    `gorm:"size:255" json:"property_name"`

	ReviewerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewer_id"`
	ReviewerName string    `gorm:"size:255" json:"reviewer_name"`

	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName string    `gorm:"size:255" json:"owner_name"`

	// One review per booking; the reviewer must have stayed
	BookingID uuid.UUID `gorm:"type:uuid;not null;unique" json:"booking_id"`

	OverallRating       int `gorm:"not null" json:"overall_rating"`
	CleanlinessRating   int `json:"cleanliness_rating"`
	LocationRating      int `json:"location_rating"`
	AmenitiesRating     int `json:"amenities_rating"`
	ValueForMoneyRating int `json:"value_for_money_rating"`
	OwnerBehaviorRating int `json:"owner_behavior_rating"`

	Title      string   `gorm:"size:255" json:"title"`
	ReviewText string   `gorm:"type:text" json:"review_text"`
	Pros       []string `gorm:"serializer:json" json:"pros"`
	Cons       []string `gorm:"serializer:json" json:"cons"`
	Images     []string `gorm:"serializer:json" json:"images"`

	StayDurationMonths int    `json:"stay_duration_months"`
	StayPeriod         string `gorm:"size:100" json:"stay_period"`

	WouldRecommend bool `gorm:"default:true" json:"would_recommend"`

	Status string `gorm:"size:20;not null;default:'approved'" json:"status"`

	OwnerResponse    string     `gorm:"type:text" json:"owner_response"`
	OwnerRespondedAt *time.Time `json:"owner_responded_at"`

	HelpfulCount    int      `gorm:"default:0" json:"helpful_count"`
	HelpfulVoterIDs []string `gorm:"serializer:json" json:"-"`

	Reported     bool   `gorm:"default:false" json:"reported"`
	ReportReason string `gorm:"type:text" json:"report_reason"`
	ReportedBy   string `gorm:"size:36" json:"reported_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
