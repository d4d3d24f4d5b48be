package services

import (
	"testing"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocuments() []models.DocumentInfo {
	return []models.DocumentInfo{
		{DocumentID: "doc-1", DocumentType: "aadhar", DocumentURL: "https://cdn.example.com/doc1.jpg", DocumentNumber: "1234-5678-9012"},
	}
}

func TestBookingLifecycle_HappyPath(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 3)

	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 6)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, property.MonthlyRent, booking.MonthlyRent)
	assert.Equal(t, property.MonthlyRent, booking.AdvancePayment)
	assert.Equal(t, seeker.FullName, booking.SeekerName)
	assert.Equal(t, owner.FullName, booking.OwnerName)

	booking, err = svc.ConfirmBooking(booking.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusOwnerConfirmed, booking.Status)
	assert.NotNil(t, booking.OwnerConfirmedAt)

	booking, err = svc.SubmitDocuments(booking.ID, seeker.ID, testDocuments())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDocsSubmitted, booking.Status)
	assert.Len(t, booking.SubmittedDocuments, 1)

	booking, err = svc.VerifyDocuments(booking.ID, owner.ID, true, "all good")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDocsVerified, booking.Status)
	assert.True(t, booking.DocumentsVerified)

	booking, err = svc.RequestPayment(booking.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaymentPending, booking.Status)

	// the advance payment ledger entry opened alongside
	var advance models.Payment
	require.NoError(t, db.Where("booking_id = ? AND payment_type = ?", booking.ID, models.PaymentTypeAdvancePayment).First(&advance).Error)
	assert.Equal(t, models.PaymentStatusPending, advance.Status)
	assert.Equal(t, booking.AdvancePayment, advance.Amount)

	booking, err = svc.ConfirmAdvancePayment(booking.ID, owner.ID, "upi")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusActive, booking.Status)
	assert.True(t, booking.AdvancePaymentReceived)

	// room taken and advance completed
	var refreshed models.Property
	require.NoError(t, db.First(&refreshed, "id = ?", property.ID).Error)
	assert.Equal(t, 2, refreshed.AvailableRooms)

	require.NoError(t, db.First(&advance, "id = ?", advance.ID).Error)
	assert.Equal(t, models.PaymentStatusCompleted, advance.Status)
	assert.NotNil(t, advance.PaidDate)

	checkOut := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	booking, err = svc.CompleteBooking(booking.ID, owner.ID, checkOut)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, booking.Status)

	// room released on completion
	require.NoError(t, db.First(&refreshed, "id = ?", property.ID).Error)
	assert.Equal(t, 3, refreshed.AvailableRooms)
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 1)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("owner cannot book", func(t *testing.T) {
		_, err := svc.CreateBookingRequest(owner.ID, property.ID, checkIn, 3)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindForbidden))
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := svc.CreateBookingRequest(seeker.ID, uuid.New(), checkIn, 3)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotFound))
	})

	t.Run("inactive property", func(t *testing.T) {
		inactive := createProperty(t, db, owner, 1)
		require.NoError(t, db.Model(inactive).Update("status", models.PropertyStatusInactive).Error)
		_, err := svc.CreateBookingRequest(seeker.ID, inactive.ID, checkIn, 3)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidState))
	})

	t.Run("no rooms left", func(t *testing.T) {
		full := createProperty(t, db, owner, 1)
		require.NoError(t, db.Model(full).Update("available_rooms", 0).Error)
		_, err := svc.CreateBookingRequest(seeker.ID, full.ID, checkIn, 3)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidState))
	})

	t.Run("duplicate open booking", func(t *testing.T) {
		_, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
		require.NoError(t, err)
		_, err = svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindConflict))
		assert.EqualError(t, err, "You already have an active booking for this property!")
	})
}

func TestConfirmBooking_WrongStateAndCaller(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
	require.NoError(t, err)

	// only the owner may confirm
	_, err = svc.ConfirmBooking(booking.ID, seeker.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	booking, err = svc.ConfirmBooking(booking.ID, owner.ID)
	require.NoError(t, err)

	// confirming twice is an invalid transition
	_, err = svc.ConfirmBooking(booking.ID, owner.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidState))
	assert.EqualError(t, err, "Booking is not in pending state!")
}

func TestSubmitDocuments_RequiresConfirmedBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
	require.NoError(t, err)

	_, err = svc.SubmitDocuments(booking.ID, seeker.ID, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))

	_, err = svc.SubmitDocuments(booking.ID, seeker.ID, testDocuments())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidState))
}

func TestVerifyDocuments_Rejection(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
	require.NoError(t, err)
	_, err = svc.ConfirmBooking(booking.ID, owner.ID)
	require.NoError(t, err)
	_, err = svc.SubmitDocuments(booking.ID, seeker.ID, testDocuments())
	require.NoError(t, err)

	booking, err = svc.VerifyDocuments(booking.ID, owner.ID, false, "aadhar number unreadable")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDocsRejected, booking.Status)
	assert.False(t, booking.DocumentsVerified)
	assert.Equal(t, "aadhar number unreadable", booking.DocumentVerificationNote)
}

func TestConfirmAdvancePayment_NoRoomsLeft(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 1)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
	require.NoError(t, err)
	_, err = svc.ConfirmBooking(booking.ID, owner.ID)
	require.NoError(t, err)
	_, err = svc.SubmitDocuments(booking.ID, seeker.ID, testDocuments())
	require.NoError(t, err)
	_, err = svc.VerifyDocuments(booking.ID, owner.ID, true, "")
	require.NoError(t, err)
	_, err = svc.RequestPayment(booking.ID, owner.ID)
	require.NoError(t, err)

	// the last room disappears before the advance lands
	require.NoError(t, db.Model(property).Update("available_rooms", 0).Error)

	_, err = svc.ConfirmAdvancePayment(booking.ID, owner.ID, "cash")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindConflict))

	// transaction rolled back, booking still awaiting payment
	refreshed, err := svc.GetBookingByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaymentPending, refreshed.Status)
}

func TestCancelBooking_RoomAccounting(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	property := createProperty(t, db, owner, 2)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	activate := func(t *testing.T, seeker *models.User) *models.Booking {
		t.Helper()
		booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
		require.NoError(t, err)
		_, err = svc.ConfirmBooking(booking.ID, owner.ID)
		require.NoError(t, err)
		_, err = svc.SubmitDocuments(booking.ID, seeker.ID, testDocuments())
		require.NoError(t, err)
		_, err = svc.VerifyDocuments(booking.ID, owner.ID, true, "")
		require.NoError(t, err)
		_, err = svc.RequestPayment(booking.ID, owner.ID)
		require.NoError(t, err)
		booking, err = svc.ConfirmAdvancePayment(booking.ID, owner.ID, "upi")
		require.NoError(t, err)
		return booking
	}

	t.Run("cancelling an active booking releases the room", func(t *testing.T) {
		seeker := createSeeker(t, db)
		booking := activate(t, seeker)

		var p models.Property
		require.NoError(t, db.First(&p, "id = ?", property.ID).Error)
		roomsBefore := p.AvailableRooms

		booking, err := svc.CancelBooking(booking.ID, seeker.ID, "moving to another city")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, booking.Status)
		assert.Equal(t, "seeker", booking.CancelledBy)

		require.NoError(t, db.First(&p, "id = ?", property.ID).Error)
		assert.Equal(t, roomsBefore+1, p.AvailableRooms)
	})

	t.Run("cancelling a pending booking leaves rooms untouched", func(t *testing.T) {
		seeker := createSeeker(t, db)
		booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
		require.NoError(t, err)

		var p models.Property
		require.NoError(t, db.First(&p, "id = ?", property.ID).Error)
		roomsBefore := p.AvailableRooms

		booking, err = svc.CancelBooking(booking.ID, owner.ID, "room under maintenance")
		require.NoError(t, err)
		assert.Equal(t, "owner", booking.CancelledBy)

		require.NoError(t, db.First(&p, "id = ?", property.ID).Error)
		assert.Equal(t, roomsBefore, p.AvailableRooms)
	})

	t.Run("a stranger cannot cancel", func(t *testing.T) {
		seeker := createSeeker(t, db)
		booking, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
		require.NoError(t, err)

		_, err = svc.CancelBooking(booking.ID, uuid.New(), "nope")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindForbidden))
	})

	t.Run("completed bookings cannot be cancelled", func(t *testing.T) {
		seeker := createSeeker(t, db)
		booking := activate(t, seeker)
		_, err := svc.CompleteBooking(booking.ID, owner.ID, checkIn.AddDate(0, 3, 0))
		require.NoError(t, err)

		_, err = svc.CancelBooking(booking.ID, seeker.ID, "too late")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidState))
	})
}

func TestGetActiveSeekerBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	seeker := createSeeker(t, db)

	booking, err := svc.GetActiveSeekerBooking(seeker.ID)
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestGetOwnerBookingStatistics(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	owner := createOwner(t, db)
	property := createProperty(t, db, owner, 5)
	checkIn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		seeker := createSeeker(t, db)
		_, err := svc.CreateBookingRequest(seeker.ID, property.ID, checkIn, 3)
		require.NoError(t, err)
	}

	stats, err := svc.GetOwnerBookingStatistics(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.PendingBookings)
	assert.Equal(t, int64(0), stats.ActiveBookings)
}
