package services

import (
	"log"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService owns the rent/advance ledger and the late-fee arithmetic.
type PaymentService struct {
	DB *gorm.DB

	// Now is swappable for tests.
	Now func() time.Time
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db, Now: time.Now}
}

// CreateMonthlyRentPayment opens the current month's rent obligation for an
// active booking. At most one rent payment exists per (booking, month, year).
func (s *PaymentService) CreateMonthlyRentPayment(bookingID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return NotFound("Booking not found!")
		}
		if booking.Status != models.BookingStatusActive {
			return InvalidState("Booking is not active!")
		}

		now := s.Now()
		month := int(now.Month())
		year := now.Year()

		var existing int64
		err := tx.Model(&models.Payment{}).
			Where("booking_id = ? AND payment_month = ? AND payment_year = ?", bookingID, month, year).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return Conflict("Payment for this month already exists!")
		}

		dueDate := time.Date(year, now.Month(), models.RentDueDay, 0, 0, 0, 0, time.UTC)
		payment = models.Payment{
			BookingID:    booking.ID,
			PropertyID:   booking.PropertyID,
			PropertyName: booking.PropertyName,
			SeekerID:     booking.SeekerID,
			SeekerName:   booking.SeekerName,
			SeekerEmail:  booking.SeekerEmail,
			OwnerID:      booking.OwnerID,
			OwnerName:    booking.OwnerName,
			PaymentType:  models.PaymentTypeMonthlyRent,
			Amount:       booking.MonthlyRent,
			TotalAmount:  booking.MonthlyRent,
			PaymentMonth: month,
			PaymentYear:  year,
			DueDate:      &dueDate,
			Status:       models.PaymentStatusPending,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// RecordPayment marks a payment received: sets the paid date, freezes the late
// charge computed from it, and completes the record.
func (s *PaymentService) RecordPayment(paymentID, ownerID uuid.UUID, paymentMethod, transactionID string) (*models.Payment, error) {
	var payment models.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&payment, "id = ?", paymentID).Error; err != nil {
			return NotFound("Payment not found!")
		}
		if payment.OwnerID != ownerID {
			return Forbidden("You are not authorized to record this payment!")
		}
		if payment.Status == models.PaymentStatusCompleted {
			return InvalidState("Payment already completed!")
		}

		now := s.Now()
		paidDate := dateOnly(now)
		payment.PaidDate = &paidDate
		payment.CalculateLateCharges()
		payment.PaymentMethod = paymentMethod
		payment.TransactionID = transactionID
		payment.Status = models.PaymentStatusCompleted
		payment.PaidAt = &now

		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CalculateCurrentLateFee projects the fee a pending payment would carry if it
// were settled today. Read-only; returns 0 for non-pending payments.
func (s *PaymentService) CalculateCurrentLateFee(paymentID uuid.UUID) (float64, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return 0, NotFound("Payment not found!")
	}

	if payment.Status != models.PaymentStatusPending || payment.DueDate == nil {
		return 0, nil
	}

	today := dateOnly(s.Now())
	if !today.After(*payment.DueDate) {
		return 0, nil
	}
	daysLate := int(today.Sub(*payment.DueDate).Hours() / 24)
	return float64(daysLate) * models.LateFeePerDay, nil
}

func (s *PaymentService) GetOverduePayments(seekerID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("seeker_id = ? AND status = ? AND due_date < ?", seekerID, models.PaymentStatusPending, dateOnly(s.Now())).
		Find(&payments).Error
	return payments, err
}

func (s *PaymentService) GetPendingPayments(seekerID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("seeker_id = ? AND status = ?", seekerID, models.PaymentStatusPending).Find(&payments).Error
	return payments, err
}

func (s *PaymentService) GetBookingPaymentHistory(bookingID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("booking_id = ?", bookingID).Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) GetSeekerPayments(seekerID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("seeker_id = ?", seekerID).Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) GetOwnerPayments(ownerID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&payments).Error
	return payments, err
}

type PaymentStatistics struct {
	TotalReceived     float64 `json:"total_received"`
	TotalPending      float64 `json:"total_pending"`
	PendingPayments   int64   `json:"pending_payments"`
	CompletedPayments int64   `json:"completed_payments"`
}

func (s *PaymentService) GetOwnerPaymentStatistics(ownerID uuid.UUID) (*PaymentStatistics, error) {
	stats := &PaymentStatistics{}

	row := s.DB.Model(&models.Payment{}).
		Where("owner_id = ? AND status = ?", ownerID, models.PaymentStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0), COUNT(*)").Row()
	if err := row.Scan(&stats.TotalReceived, &stats.CompletedPayments); err != nil {
		return nil, err
	}

	row = s.DB.Model(&models.Payment{}).
		Where("owner_id = ? AND status = ?", ownerID, models.PaymentStatusPending).
		Select("COALESCE(SUM(total_amount), 0), COUNT(*)").Row()
	if err := row.Scan(&stats.TotalPending, &stats.PendingPayments); err != nil {
		return nil, err
	}

	return stats, nil
}

// GenerateMonthlyRentPayments creates this month's rent record for every
// active booking. One bad booking never aborts the batch; failures are logged
// and the rest proceed.
func (s *PaymentService) GenerateMonthlyRentPayments() (created, failed int) {
	var activeBookings []models.Booking
	if err := s.DB.Where("status = ?", models.BookingStatusActive).Find(&activeBookings).Error; err != nil {
		log.Printf("🔥 Failed to list active bookings for rent generation: %v", err)
		return 0, 0
	}

	for _, booking := range activeBookings {
		if _, err := s.CreateMonthlyRentPayment(booking.ID); err != nil {
			failed++
			log.Printf("Failed to create payment for booking %s: %v", booking.ID, err)
			continue
		}
		created++
	}
	return created, failed
}

// UpdateLateFeesDaily recomputes the accrued late charge on every overdue
// pending payment without marking it paid. A paid date is borrowed for the
// computation only and cleared before persisting. Per-item failures are
// skipped and logged so the batch keeps moving.
func (s *PaymentService) UpdateLateFeesDaily() (updated, failed int) {
	today := dateOnly(s.Now())

	var overdue []models.Payment
	err := s.DB.Where("status = ? AND due_date < ?", models.PaymentStatusPending, today).Find(&overdue).Error
	if err != nil {
		log.Printf("🔥 Failed to list overdue payments for late-fee refresh: %v", err)
		return 0, 0
	}

	for i := range overdue {
		payment := &overdue[i]
		payment.PaidDate = &today
		payment.CalculateLateCharges()
		payment.PaidDate = nil

		if err := s.DB.Save(payment).Error; err != nil {
			failed++
			log.Printf("Failed to refresh late fee for payment %s: %v", payment.ID, err)
			continue
		}
		updated++
	}
	return updated, failed
}
