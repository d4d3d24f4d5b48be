package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnerDashboard(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 3)
	booking := activeBooking(t, db, owner, seeker, property)

	inquiries := NewInquiryService(db)
	_, err := inquiries.SendInquiry(createSeeker(t, db).ID, property.ID, "Availability", "Any rooms free?", "")
	require.NoError(t, err)

	visits := NewVisitScheduleService(db)
	visits.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	_, err = visits.ScheduleVisit(createSeeker(t, db).ID, property.ID, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), "11:00", "", "")
	require.NoError(t, err)

	svc := NewDashboardService(db)
	dash, err := svc.GetOwnerDashboard(owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), dash.Properties.TotalProperties)
	assert.Equal(t, int64(1), dash.Bookings.ActiveBookings)
	assert.Equal(t, int64(1), dash.Payments.CompletedPayments) // the advance
	assert.Equal(t, int64(1), dash.PendingInquiries)
	assert.Equal(t, int64(1), dash.PendingVisits)
	require.NotEmpty(t, dash.RecentBookings)
	assert.Equal(t, booking.ID, dash.RecentBookings[0].ID)

	reviews := NewReviewService(db)
	_, err = reviews.WriteReview(seeker.ID, booking.ID, ReviewInput{OverallRating: 4})
	require.NoError(t, err)

	dash, err = svc.GetOwnerDashboard(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, dash.AverageRating)
	assert.Equal(t, int64(1), dash.TotalReviews)
	require.Len(t, dash.RecentReviews, 1)

	// seekers are turned away
	_, err = svc.GetOwnerDashboard(seeker.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))
}

func TestGetSeekerDashboard(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 3)
	booking := activeBooking(t, db, owner, seeker, property)

	favorites := NewFavoriteService(db)
	_, err := favorites.AddToFavorites(seeker.ID, property.ID, "")
	require.NoError(t, err)

	payments := NewPaymentService(db)
	payments.Now = fixedClock(time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC))
	_, err = payments.CreateMonthlyRentPayment(booking.ID)
	require.NoError(t, err)

	svc := NewDashboardService(db)
	dash, err := svc.GetSeekerDashboard(seeker.ID)
	require.NoError(t, err)

	require.NotNil(t, dash.ActiveBooking)
	assert.Equal(t, booking.ID, dash.ActiveBooking.ID)
	assert.Equal(t, int64(1), dash.FavoriteCount)
	require.Len(t, dash.PendingPayments, 1)
	require.NotEmpty(t, dash.RecentBookings)

	_, err = svc.GetSeekerDashboard(owner.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))
}
