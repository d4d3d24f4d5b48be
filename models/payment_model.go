package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentTypeSecurityDeposit = "security_deposit"
	PaymentTypeAdvancePayment  = "advance_payment"
	PaymentTypeMonthlyRent     = "monthly_rent"
	PaymentTypeLateFee         = "late_fee"
	PaymentTypeMaintenance     = "maintenance"
	PaymentTypeOther           = "other"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusCancelled  = "cancelled"
)

// LateFeePerDay is the flat penalty accrued per day a rent payment stays
// unpaid past its due date.
const LateFeePerDay = 10.0

// RentDueDay is the day of the month monthly rent falls due.
const RentDueDay = 10

type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	BookingID    uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	PropertyName string    `gorm:"size:255" json:"property_name"`

	// Payer snapshot (seeker)
	SeekerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"seeker_id"`
	SeekerName  string    `gorm:"size:255" json:"seeker_name"`
	SeekerEmail string    `gorm:"size:255" json:"seeker_email"`

	// Payee snapshot (owner)
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	OwnerName string    `gorm:"size:255" json:"owner_name"`

	PaymentType string  `gorm:"size:30;not null" json:"payment_type"`
	Amount      float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	LateCharges float64 `gorm:"type:numeric(10,2);default:0" json:"late_charges"`
	TotalAmount float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Currency    string  `gorm:"size:3;default:'INR'" json:"currency"`

	// Monthly rent fields; zero month/year for non-rent payments
	PaymentMonth int        `gorm:"default:0" json:"payment_month"`
	PaymentYear  int        `gorm:"default:0" json:"payment_year"`
	DueDate      *time.Time `json:"due_date"`
	PaidDate     *time.Time `json:"paid_date"`
	DaysLate     int        `gorm:"default:0" json:"days_late"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	PaymentMethod string `gorm:"size:30" json:"payment_method"` // upi, bank_transfer, cash, ...
	TransactionID string `gorm:"size:255" json:"transaction_id"`

	Remarks       string `gorm:"type:text" json:"remarks"`
	FailureReason string `gorm:"type:text" json:"failure_reason"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaidAt    *time.Time `json:"paid_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// CalculateLateCharges recomputes the late fee from the due/paid date pair.
// It is idempotent for a given (DueDate, PaidDate) and keeps
// TotalAmount == Amount + LateCharges.
func (p *Payment) CalculateLateCharges() {
	if p.PaidDate != nil && p.DueDate != nil && p.PaidDate.After(*p.DueDate) {
		days := int(p.PaidDate.Sub(*p.DueDate).Hours() / 24)
		p.DaysLate = days
		p.LateCharges = float64(days) * LateFeePerDay
	} else {
		p.DaysLate = 0
		p.LateCharges = 0
	}
	p.TotalAmount = p.Amount + p.LateCharges
}
