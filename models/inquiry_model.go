package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryStatusPending   = "pending"
	InquiryStatusResponded = "responded"
	InquiryStatusClosed    = "closed"
	InquiryStatusSpam      = "spam"
)

const (
	InquiryTypeGeneral      = "general"
	InquiryTypeAvailability = "availability"
	InquiryTypePricing      = "pricing"
	InquiryTypeAmenities    = "amenities"
	InquiryTypeVisitRequest = "visit_request"
	InquiryTypeBookingQuery = "booking_query"
	InquiryTypeOther        = "other"
)

type InquiryMessage struct {
	SenderID   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"` // seeker, owner
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sent_at"`
	Read       bool      `json:"read"`
}

type Inquiry struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	PropertyName string    `gorm:"size:255" json:"property_name"`

	SeekerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"seeker_id"`
	SeekerName  string    `gorm:"size:255" json:"seeker_name"`
	SeekerEmail string    `gorm:"size:255" json:"seeker_email"`
	SeekerPhone string    `gorm:"size:20" json:"seeker_phone"`

	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName  string    `gorm:"size:255" json:"owner_name"`
	OwnerEmail string    `gorm:"size:255" json:"owner_email"`

	Subject     string `gorm:"size:255" json:"subject"`
	Message     string `gorm:"type:text" json:"message"`
	InquiryType string `gorm:"size:30;default:'general'" json:"inquiry_type"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Messages []InquiryMessage `gorm:"serializer:json" json:"messages"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
