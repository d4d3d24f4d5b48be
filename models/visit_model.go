package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VisitStatusPending     = "pending"
	VisitStatusConfirmed   = "confirmed"
	VisitStatusRescheduled = "rescheduled"
	VisitStatusCompleted   = "completed"
	VisitStatusCancelled   = "cancelled"
	VisitStatusNoShow      = "no_show"
)

type VisitSchedule struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	PropertyID      uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	PropertyName    string    `gorm:"size:255" json:"property_name"`
	PropertyAddress string    `gorm:"size:255" json:"property_address"`
	PropertyCity    string    `gorm:"size:100" json:"property_city"`

	SeekerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"seeker_id"`
	SeekerName  string    `gorm:"size:255" json:"seeker_name"`
	SeekerEmail string    `gorm:"size:255" json:"seeker_email"`
	SeekerPhone string    `gorm:"size:20" json:"seeker_phone"`

	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName  string    `gorm:"size:255" json:"owner_name"`
	OwnerEmail string    `gorm:"size:255" json:"owner_email"`
	OwnerPhone string    `gorm:"size:20" json:"owner_phone"`

	VisitDate       time.Time `gorm:"not null" json:"visit_date"`
	VisitTime       string    `gorm:"size:5" json:"visit_time"` // HH:MM
	DurationMinutes int       `gorm:"default:30" json:"duration_minutes"`
	VisitPurpose    string    `gorm:"size:100" json:"visit_purpose"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	SeekerNote    string `gorm:"type:text" json:"seeker_note"`
	OwnerNote     string `gorm:"type:text" json:"owner_note"`
	VisitFeedback string `gorm:"type:text" json:"visit_feedback"`

	RescheduleReason string     `gorm:"type:text" json:"reschedule_reason"`
	OriginalDate     *time.Time `json:"original_date"`
	OriginalTime     string     `gorm:"size:5" json:"original_time"`

	CancellationReason string `gorm:"type:text" json:"cancellation_reason"`
	CancelledBy        string `gorm:"size:10" json:"cancelled_by"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}

func (v *VisitSchedule) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
