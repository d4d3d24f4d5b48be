package services

import (
	"testing"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReview(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)
	booking := activeBooking(t, db, owner, seeker, property)

	svc := NewReviewService(db)
	svc.Now = fixedClock(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	review, err := svc.WriteReview(seeker.ID, booking.ID, ReviewInput{
		OverallRating:     4,
		CleanlinessRating: 5,
		Title:             "Clean and quiet",
		ReviewText:        "Good food, responsive owner.",
		Pros:              []string{"food", "wifi"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusApproved, review.Status)
	assert.Equal(t, seeker.FullName, review.ReviewerName)
	assert.Equal(t, property.ID, review.PropertyID)
	assert.True(t, review.WouldRecommend)
	assert.Equal(t, 6, review.StayDurationMonths)

	// the property row picks up the denormalized rating
	var refreshed models.Property
	require.NoError(t, db.First(&refreshed, "id = ?", property.ID).Error)
	assert.Equal(t, 4.0, refreshed.AverageRating)
	assert.Equal(t, 1, refreshed.TotalReviews)

	// one review per booking
	_, err = svc.WriteReview(seeker.ID, booking.ID, ReviewInput{OverallRating: 5})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindConflict))
	assert.EqualError(t, err, "You have already reviewed this booking!")
}

func TestWriteReview_Guards(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewReviewService(db)

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.WriteReview(seeker.ID, uuid.New(), ReviewInput{OverallRating: 4})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotFound))
	})

	t.Run("only the booking's seeker may review", func(t *testing.T) {
		booking := activeBooking(t, db, owner, seeker, property)
		stranger := createSeeker(t, db)
		_, err := svc.WriteReview(stranger.ID, booking.ID, ReviewInput{OverallRating: 4})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindForbidden))
	})

	t.Run("pending bookings cannot be reviewed", func(t *testing.T) {
		other := createSeeker(t, db)
		bookings := NewBookingService(db)
		pending, err := bookings.CreateBookingRequest(other.ID, property.ID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 3)
		require.NoError(t, err)
		_, err = svc.WriteReview(other.ID, pending.ID, ReviewInput{OverallRating: 4})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidState))
	})
}

func TestPropertyRatingAveragesAcrossReviews(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	property := createProperty(t, db, owner, 3)
	svc := NewReviewService(db)

	notRecommended := false
	ratings := []ReviewInput{
		{OverallRating: 5, CleanlinessRating: 5},
		{OverallRating: 4},
		{OverallRating: 2, CleanlinessRating: 3, WouldRecommend: &notRecommended},
	}
	for _, input := range ratings {
		seeker := createSeeker(t, db)
		booking := activeBooking(t, db, owner, seeker, property)
		_, err := svc.WriteReview(seeker.ID, booking.ID, input)
		require.NoError(t, err)
	}

	var refreshed models.Property
	require.NoError(t, db.First(&refreshed, "id = ?", property.ID).Error)
	assert.Equal(t, 3.7, refreshed.AverageRating) // (5+4+2)/3 rounded to one decimal
	assert.Equal(t, 3, refreshed.TotalReviews)

	summary, err := svc.GetPropertyRatingSummary(property.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalReviews)
	assert.Equal(t, 3.7, summary.AverageRating)
	assert.Equal(t, 4.0, summary.AverageCleanliness) // only rated reviews count
	assert.Equal(t, int64(2), summary.RecommendedCount)
	assert.Equal(t, [5]int64{0, 1, 0, 1, 1}, summary.RatingDistribution)
}

func TestRespondToReview(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)
	booking := activeBooking(t, db, owner, seeker, property)

	svc := NewReviewService(db)
	review, err := svc.WriteReview(seeker.ID, booking.ID, ReviewInput{OverallRating: 4})
	require.NoError(t, err)

	_, err = svc.RespondToReview(review.ID, seeker.ID, "thanks")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	review, err = svc.RespondToReview(review.ID, owner.ID, "Thank you for staying with us!")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for staying with us!", review.OwnerResponse)
	assert.NotNil(t, review.OwnerRespondedAt)
}

func TestMarkHelpful_Toggles(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)
	booking := activeBooking(t, db, owner, seeker, property)

	svc := NewReviewService(db)
	review, err := svc.WriteReview(seeker.ID, booking.ID, ReviewInput{OverallRating: 4})
	require.NoError(t, err)

	voter := uuid.New()
	review, err = svc.MarkHelpful(review.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, review.HelpfulCount)

	review, err = svc.MarkHelpful(review.ID, voter)
	require.NoError(t, err)
	assert.Equal(t, 0, review.HelpfulCount)
	assert.Empty(t, review.HelpfulVoterIDs)
}

func TestGetBookingReview_NilWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	review, err := svc.GetBookingReview(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, review)
}
