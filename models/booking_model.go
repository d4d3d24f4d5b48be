package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending        = "pending"
	BookingStatusOwnerConfirmed = "owner_confirmed"
	BookingStatusOwnerRejected  = "owner_rejected"
	BookingStatusDocsSubmitted  = "docs_submitted"
	BookingStatusDocsVerified   = "docs_verified"
	BookingStatusDocsRejected   = "docs_rejected"
	BookingStatusPaymentPending = "payment_pending"
	BookingStatusActive         = "active"
	BookingStatusCompleted      = "completed"
	BookingStatusCancelled      = "cancelled"
)

// OpenBookingStatuses are the states in which a booking still claims a room
// on the property. A seeker may hold at most one booking in any of these
// states per property.
var OpenBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusOwnerConfirmed,
	BookingStatusDocsSubmitted,
	BookingStatusDocsVerified,
	BookingStatusPaymentPending,
	BookingStatusActive,
}

type DocumentInfo struct {
	DocumentID     string    `json:"document_id"`
	DocumentType   string    `json:"document_type"` // aadhar, pan, passport, driving_license, voter_id
	DocumentURL    string    `json:"document_url"`
	DocumentNumber string    `json:"document_number"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	// Property snapshot
	PropertyID      uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	PropertyName    string    `gorm:"size:255" json:"property_name"`
	PropertyAddress string    `gorm:"size:255" json:"property_address"`
	RoomType        string    `gorm:"size:20" json:"room_type"`

	// Seeker snapshot
	SeekerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"seeker_id"`
	SeekerName  string    `gorm:"size:255" json:"seeker_name"`
	SeekerEmail string    `gorm:"size:255" json:"seeker_email"`
	SeekerPhone string    `gorm:"size:20" json:"seeker_phone"`

	// Owner snapshot
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName  string    `gorm:"size:255" json:"owner_name"`
	OwnerEmail string    `gorm:"size:255" json:"owner_email"`
	OwnerPhone string    `gorm:"size:20" json:"owner_phone"`

	CheckInDate    time.Time  `gorm:"not null" json:"check_in_date"`
	CheckOutDate   *time.Time `json:"check_out_date"`
	NumberOfMonths int        `gorm:"not null" json:"number_of_months"`

	// Pricing snapshot, copied from the property at creation time
	MonthlyRent     float64 `gorm:"type:numeric(10,2);not null" json:"monthly_rent"`
	SecurityDeposit float64 `gorm:"type:numeric(10,2)" json:"security_deposit"`
	AdvancePayment  float64 `gorm:"type:numeric(10,2)" json:"advance_payment"`

	Status string `gorm:"size:30;not null;default:'pending'" json:"status"`

	SubmittedDocuments       []DocumentInfo `gorm:"serializer:json" json:"submitted_documents"`
	DocumentsVerified        bool           `gorm:"default:false" json:"documents_verified"`
	DocumentVerificationNote string         `gorm:"type:text" json:"document_verification_note"`
	DocumentsVerifiedAt      *time.Time     `json:"documents_verified_at"`

	OwnerRejectionReason string     `gorm:"type:text" json:"owner_rejection_reason"`
	OwnerConfirmedAt     *time.Time `json:"owner_confirmed_at"`

	AdvancePaymentReceived   bool       `gorm:"default:false" json:"advance_payment_received"`
	AdvancePaymentReceivedAt *time.Time `json:"advance_payment_received_at"`
	PaymentMethod            string     `gorm:"size:30" json:"payment_method"`

	CancellationReason string     `gorm:"type:text" json:"cancellation_reason"`
	CancelledBy        string     `gorm:"size:10" json:"cancelled_by"` // seeker, owner
	CancelledAt        *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
