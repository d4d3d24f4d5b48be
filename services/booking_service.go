package services

import (
	"errors"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService drives the booking lifecycle. Every state change runs in one
// transaction with the booking row locked, and the status is re-checked after
// the lock, so concurrent transitions fail cleanly instead of being applied
// twice.
type BookingService struct {
	DB *gorm.DB

	// Now is swappable for tests.
	Now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Now: time.Now}
}

// CreateBookingRequest opens a new booking in the pending state, snapshotting
// the property pricing and both parties' contact details.
func (s *BookingService) CreateBookingRequest(seekerID, propertyID uuid.UUID, checkInDate time.Time, numberOfMonths int) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var seeker models.User
		if err := tx.First(&seeker, "id = ?", seekerID).Error; err != nil {
			return NotFound("Seeker not found!")
		}
		if seeker.Role != models.RoleSeeker {
			return Forbidden("Only seekers can book properties!")
		}

		var property models.Property
		if err := lockForUpdate(tx).First(&property, "id = ?", propertyID).Error; err != nil {
			return NotFound("Property not found!")
		}
		if property.Status != models.PropertyStatusActive {
			return InvalidState("This property is not available for booking!")
		}
		if property.AvailableRooms <= 0 {
			return InvalidState("No rooms available in this property!")
		}

		var open int64
		if err := tx.Model(&models.Booking{}).
			Where("seeker_id = ? AND property_id = ? AND status IN ?", seekerID, propertyID, models.OpenBookingStatuses).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return Conflict("You already have an active booking for this property!")
		}

		var owner models.User
		if err := tx.First(&owner, "id = ?", property.OwnerID).Error; err != nil {
			return NotFound("Property owner not found!")
		}

		booking = models.Booking{
			PropertyID:      property.ID,
			PropertyName:    property.Name,
			PropertyAddress: property.Address + ", " + property.City,
			RoomType:        property.RoomType,

			SeekerID:    seeker.ID,
			SeekerName:  seeker.FullName,
			SeekerEmail: seeker.Email,
			SeekerPhone: seeker.PhoneNumber,

			OwnerID:    owner.ID,
			OwnerName:  owner.FullName,
			OwnerEmail: owner.Email,
			OwnerPhone: owner.PhoneNumber,

			CheckInDate:    checkInDate,
			NumberOfMonths: numberOfMonths,

			MonthlyRent:     property.MonthlyRent,
			SecurityDeposit: property.SecurityDeposit,
			AdvancePayment:  property.MonthlyRent, // first month collected as advance

			Status: models.BookingStatusPending,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ConfirmBooking moves a pending booking to owner_confirmed.
func (s *BookingService) ConfirmBooking(bookingID, ownerID uuid.UUID) (*models.Booking, error) {
	return s.transition(bookingID, ActionOwnerConfirm, "Booking is not in pending state!", ownerOnly(ownerID), func(b *models.Booking) {
		now := s.Now()
		b.OwnerConfirmedAt = &now
	})
}

// RejectBooking moves a pending booking to owner_rejected.
func (s *BookingService) RejectBooking(bookingID, ownerID uuid.UUID, reason string) (*models.Booking, error) {
	return s.transition(bookingID, ActionOwnerReject, "Booking is not in pending state!", ownerOnly(ownerID), func(b *models.Booking) {
		b.OwnerRejectionReason = reason
	})
}

// SubmitDocuments attaches the seeker's identity documents to a confirmed
// booking and moves it to docs_submitted.
func (s *BookingService) SubmitDocuments(bookingID, seekerID uuid.UUID, documents []models.DocumentInfo) (*models.Booking, error) {
	if len(documents) == 0 {
		return nil, Validation("Please submit at least one document!")
	}
	uploadedAt := s.Now()
	for i := range documents {
		documents[i].UploadedAt = uploadedAt
	}
	return s.transition(bookingID, ActionSubmitDocuments, "Booking must be confirmed by owner before submitting documents!", seekerOnly(seekerID), func(b *models.Booking) {
		b.SubmittedDocuments = documents
	})
}

// VerifyDocuments records the owner's verdict on the submitted documents.
func (s *BookingService) VerifyDocuments(bookingID, ownerID uuid.UUID, approved bool, note string) (*models.Booking, error) {
	action := ActionApproveDocuments
	if !approved {
		action = ActionRejectDocuments
	}
	return s.transition(bookingID, action, "Documents not submitted yet!", ownerOnly(ownerID), func(b *models.Booking) {
		b.DocumentsVerified = approved
		b.DocumentVerificationNote = note
		now := s.Now()
		b.DocumentsVerifiedAt = &now
	})
}

// RequestPayment moves a docs_verified booking to payment_pending and opens
// the advance payment ledger entry in the same transaction.
func (s *BookingService) RequestPayment(bookingID, ownerID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		b, err := s.lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if b.OwnerID != ownerID {
			return Forbidden("You are not authorized to perform this action!")
		}
		next, ok := NextBookingStatus(ActionRequestPayment, b.Status)
		if !ok {
			return InvalidState("Documents must be verified before requesting payment!")
		}
		b.Status = next

		advance := models.Payment{
			BookingID:    b.ID,
			PropertyID:   b.PropertyID,
			PropertyName: b.PropertyName,
			SeekerID:     b.SeekerID,
			SeekerName:   b.SeekerName,
			SeekerEmail:  b.SeekerEmail,
			OwnerID:      b.OwnerID,
			OwnerName:    b.OwnerName,
			PaymentType:  models.PaymentTypeAdvancePayment,
			Amount:       b.AdvancePayment,
			TotalAmount:  b.AdvancePayment,
			Status:       models.PaymentStatusPending,
		}
		if err := tx.Create(&advance).Error; err != nil {
			return err
		}

		booking = *b
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ConfirmAdvancePayment activates the booking: marks the advance received,
// completes its payment record and takes one room off the property, all in a
// single transaction.
func (s *BookingService) ConfirmAdvancePayment(bookingID, ownerID uuid.UUID, paymentMethod string) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		b, err := s.lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if b.OwnerID != ownerID {
			return Forbidden("You are not authorized to perform this action!")
		}
		next, ok := NextBookingStatus(ActionConfirmAdvancePayment, b.Status)
		if !ok {
			return InvalidState("Booking is not in payment pending state!")
		}

		now := s.Now()
		b.Status = next
		b.AdvancePaymentReceived = true
		b.AdvancePaymentReceivedAt = &now
		b.PaymentMethod = paymentMethod

		var advance models.Payment
		err = tx.Where("booking_id = ? AND payment_type = ?", b.ID, models.PaymentTypeAdvancePayment).
			Order("created_at asc").First(&advance).Error
		if err == nil {
			paidDate := dateOnly(now)
			advance.Status = models.PaymentStatusCompleted
			advance.PaidDate = &paidDate
			advance.PaidAt = &now
			advance.PaymentMethod = paymentMethod
			if err := tx.Save(&advance).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		res := tx.Model(&models.Property{}).
			Where("id = ? AND available_rooms > 0", b.PropertyID).
			UpdateColumn("available_rooms", gorm.Expr("available_rooms - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return Conflict("No rooms available in this property!")
		}

		booking = *b
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CompleteBooking closes an active tenancy and releases the room.
func (s *BookingService) CompleteBooking(bookingID, ownerID uuid.UUID, checkOutDate time.Time) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		b, err := s.lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if b.OwnerID != ownerID {
			return Forbidden("You are not authorized to perform this action!")
		}
		next, ok := NextBookingStatus(ActionComplete, b.Status)
		if !ok {
			return InvalidState("Booking is not active!")
		}
		b.Status = next
		b.CheckOutDate = &checkOutDate

		if err := s.releaseRoom(tx, b.PropertyID); err != nil {
			return err
		}

		booking = *b
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels from any non-completed state; either party may cancel.
// The room is released only when the booking had reached active.
func (s *BookingService) CancelBooking(bookingID, userID uuid.UUID, reason string) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		b, err := s.lockBooking(tx, bookingID)
		if err != nil {
			return err
		}

		var cancelledBy string
		switch userID {
		case b.SeekerID:
			cancelledBy = "seeker"
		case b.OwnerID:
			cancelledBy = "owner"
		default:
			return Forbidden("You are not authorized to cancel this booking!")
		}

		next, ok := NextBookingStatus(ActionCancel, b.Status)
		if !ok {
			return InvalidState("Cannot cancel a completed booking!")
		}
		wasActive := b.Status == models.BookingStatusActive

		now := s.Now()
		b.Status = next
		b.CancellationReason = reason
		b.CancelledBy = cancelledBy
		b.CancelledAt = &now

		if wasActive {
			if err := s.releaseRoom(tx, b.PropertyID); err != nil {
				return err
			}
		}

		booking = *b
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) GetBookingByID(bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, NotFound("Booking not found!")
	}
	return &booking, nil
}

func (s *BookingService) GetSeekerBookings(seekerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("seeker_id = ?", seekerID).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetOwnerBookings(ownerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetOwnerBookingsByStatus(ownerID uuid.UUID, status string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("owner_id = ? AND status = ?", ownerID, status).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetSeekerBookingsByStatus(seekerID uuid.UUID, status string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("seeker_id = ? AND status = ?", seekerID, status).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

// GetActiveSeekerBooking returns the seeker's current tenancy, if any.
func (s *BookingService) GetActiveSeekerBooking(seekerID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Where("seeker_id = ? AND status = ?", seekerID, models.BookingStatusActive).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

type BookingStatistics struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ActiveBookings    int64 `json:"active_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
}

func (s *BookingService) GetOwnerBookingStatistics(ownerID uuid.UUID) (*BookingStatistics, error) {
	stats := &BookingStatistics{}
	counts := []struct {
		dst    *int64
		status string
	}{
		{&stats.PendingBookings, models.BookingStatusPending},
		{&stats.ActiveBookings, models.BookingStatusActive},
		{&stats.CompletedBookings, models.BookingStatusCompleted},
	}
	if err := s.DB.Model(&models.Booking{}).Where("owner_id = ?", ownerID).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		if err := s.DB.Model(&models.Booking{}).Where("owner_id = ? AND status = ?", ownerID, c.status).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// --- internals ---

type callerCheck func(b *models.Booking) error

func ownerOnly(ownerID uuid.UUID) callerCheck {
	return func(b *models.Booking) error {
		if b.OwnerID != ownerID {
			return Forbidden("You are not authorized to perform this action!")
		}
		return nil
	}
}

func seekerOnly(seekerID uuid.UUID) callerCheck {
	return func(b *models.Booking) error {
		if b.SeekerID != seekerID {
			return Forbidden("You are not authorized to perform this action!")
		}
		return nil
	}
}

// transition applies one table-driven state change with no extra side effects
// beyond the field mutation.
func (s *BookingService) transition(bookingID uuid.UUID, action, stateMsg string, check callerCheck, mutate func(b *models.Booking)) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		b, err := s.lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if err := check(b); err != nil {
			return err
		}
		next, ok := NextBookingStatus(action, b.Status)
		if !ok {
			return InvalidState(stateMsg)
		}
		b.Status = next
		mutate(b)

		booking = *b
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) lockBooking(tx *gorm.DB, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := lockForUpdate(tx).First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Booking not found!")
		}
		return nil, err
	}
	return &booking, nil
}

// releaseRoom gives one room back, capped at total_rooms. A full property at
// release time means the counter drifted; it is logged upstream by callers
// that care, never fatal here.
func (s *BookingService) releaseRoom(tx *gorm.DB, propertyID uuid.UUID) error {
	return tx.Model(&models.Property{}).
		Where("id = ? AND available_rooms < total_rooms", propertyID).
		UpdateColumn("available_rooms", gorm.Expr("available_rooms + 1")).Error
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
