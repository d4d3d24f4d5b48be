package services

import (
	"errors"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db, Now: time.Now}
}

type ReviewInput struct {
	OverallRating       int      `json:"overall_rating" validate:"required,min=1,max=5"`
	CleanlinessRating   int      `json:"cleanliness_rating" validate:"omitempty,min=1,max=5"`
	LocationRating      int      `json:"location_rating" validate:"omitempty,min=1,max=5"`
	AmenitiesRating     int      `json:"amenities_rating" validate:"omitempty,min=1,max=5"`
	ValueForMoneyRating int      `json:"value_for_money_rating" validate:"omitempty,min=1,max=5"`
	OwnerBehaviorRating int      `json:"owner_behavior_rating" validate:"omitempty,min=1,max=5"`
	Title               string   `json:"title" validate:"omitempty,max=255"`
	ReviewText          string   `json:"review_text"`
	Pros                []string `json:"pros"`
	Cons                []string `json:"cons"`
	Images              []string `json:"images"`
	WouldRecommend      *bool    `json:"would_recommend"`
}

// WriteReview creates a review against a booking the caller actually held.
// The booking must be active or completed, and each booking yields at most
// one review.
func (s *ReviewService) WriteReview(reviewerID, bookingID uuid.UUID, input ReviewInput) (*models.Review, error) {
	var review *models.Review

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return NotFound("Booking not found!")
		}
		if booking.SeekerID != reviewerID {
			return Forbidden("You can only review your own bookings!")
		}
		if booking.Status != models.BookingStatusActive && booking.Status != models.BookingStatusCompleted {
			return InvalidState("You can only review after staying at the property!")
		}

		var count int64
		if err := tx.Model(&models.Review{}).Where("booking_id = ?", bookingID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return Conflict("You have already reviewed this booking!")
		}

		wouldRecommend := true
		if input.WouldRecommend != nil {
			wouldRecommend = *input.WouldRecommend
		}

		review = &models.Review{
			PropertyID:   booking.PropertyID,
			PropertyName: booking.PropertyName,
			ReviewerID:   booking.SeekerID,
			ReviewerName: booking.SeekerName,
			OwnerID:      booking.OwnerID,
			OwnerName:    booking.OwnerName,
			BookingID:    booking.ID,

			OverallRating:       input.OverallRating,
			CleanlinessRating:   input.CleanlinessRating,
			LocationRating:      input.LocationRating,
			AmenitiesRating:     input.AmenitiesRating,
			ValueForMoneyRating: input.ValueForMoneyRating,
			OwnerBehaviorRating: input.OwnerBehaviorRating,

			Title:      input.Title,
			ReviewText: input.ReviewText,
			Pros:       input.Pros,
			Cons:       input.Cons,
			Images:     input.Images,

			StayDurationMonths: stayDurationMonths(booking.CheckInDate, s.Now()),
			StayPeriod:         stayPeriod(booking.CheckInDate, s.Now()),
			WouldRecommend:     wouldRecommend,
			Status:             models.ReviewStatusApproved,
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return s.refreshPropertyRating(tx, booking.PropertyID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) RespondToReview(reviewID, ownerID uuid.UUID, response string) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, NotFound("Review not found!")
	}
	if review.OwnerID != ownerID {
		return nil, Forbidden("You can only respond to reviews of your own properties!")
	}

	now := s.Now()
	review.OwnerResponse = response
	review.OwnerRespondedAt = &now

	if err := s.DB.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// MarkHelpful records a helpful vote. Voting twice withdraws the vote.
func (s *ReviewService) MarkHelpful(reviewID, userID uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, NotFound("Review not found!")
	}

	voter := userID.String()
	voted := false
	for i, id := range review.HelpfulVoterIDs {
		if id == voter {
			review.HelpfulVoterIDs = append(review.HelpfulVoterIDs[:i], review.HelpfulVoterIDs[i+1:]...)
			voted = true
			break
		}
	}
	if voted {
		review.HelpfulCount--
	} else {
		review.HelpfulVoterIDs = append(review.HelpfulVoterIDs, voter)
		review.HelpfulCount++
	}

	if err := s.DB.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ReportReview(reviewID, reporterID uuid.UUID, reason string) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, NotFound("Review not found!")
	}

	review.Reported = true
	review.ReportReason = reason
	review.ReportedBy = reporterID.String()

	if err := s.DB.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) GetReviewByID(reviewID uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, NotFound("Review not found!")
	}
	return &review, nil
}

func (s *ReviewService) GetPropertyReviews(propertyID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("property_id = ? AND status = ?", propertyID, models.ReviewStatusApproved).
		Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) GetReviewerReviews(reviewerID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("reviewer_id = ?", reviewerID).Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) GetOwnerReviews(ownerID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) GetBookingReview(bookingID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.DB.Where("booking_id = ?", bookingID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

type PropertyRatingSummary struct {
	PropertyID         uuid.UUID `json:"property_id"`
	TotalReviews       int64     `json:"total_reviews"`
	AverageRating      float64   `json:"average_rating"`
	AverageCleanliness float64   `json:"average_cleanliness"`
	AverageLocation    float64   `json:"average_location"`
	AverageAmenities   float64   `json:"average_amenities"`
	AverageValue       float64   `json:"average_value"`
	AverageOwner       float64   `json:"average_owner"`
	RecommendedCount   int64     `json:"recommended_count"`
	RatingDistribution [5]int64  `json:"rating_distribution"`
}

func (s *ReviewService) GetPropertyRatingSummary(propertyID uuid.UUID) (*PropertyRatingSummary, error) {
	var reviews []models.Review
	if err := s.DB.Where("property_id = ? AND status = ?", propertyID, models.ReviewStatusApproved).Find(&reviews).Error; err != nil {
		return nil, err
	}

	summary := PropertyRatingSummary{PropertyID: propertyID, TotalReviews: int64(len(reviews))}
	if len(reviews) == 0 {
		return &summary, nil
	}

	var overall, clean, location, amenities, value, owner float64
	var cleanN, locationN, amenitiesN, valueN, ownerN int64
	for _, r := range reviews {
		overall += float64(r.OverallRating)
		if r.OverallRating >= 1 && r.OverallRating <= 5 {
			summary.RatingDistribution[r.OverallRating-1]++
		}
		if r.WouldRecommend {
			summary.RecommendedCount++
		}
		if r.CleanlinessRating > 0 {
			clean += float64(r.CleanlinessRating)
			cleanN++
		}
		if r.LocationRating > 0 {
			location += float64(r.LocationRating)
			locationN++
		}
		if r.AmenitiesRating > 0 {
			amenities += float64(r.AmenitiesRating)
			amenitiesN++
		}
		if r.ValueForMoneyRating > 0 {
			value += float64(r.ValueForMoneyRating)
			valueN++
		}
		if r.OwnerBehaviorRating > 0 {
			owner += float64(r.OwnerBehaviorRating)
			ownerN++
		}
	}

	summary.AverageRating = roundRating(overall / float64(len(reviews)))
	if cleanN > 0 {
		summary.AverageCleanliness = roundRating(clean / float64(cleanN))
	}
	if locationN > 0 {
		summary.AverageLocation = roundRating(location / float64(locationN))
	}
	if amenitiesN > 0 {
		summary.AverageAmenities = roundRating(amenities / float64(amenitiesN))
	}
	if valueN > 0 {
		summary.AverageValue = roundRating(value / float64(valueN))
	}
	if ownerN > 0 {
		summary.AverageOwner = roundRating(owner / float64(ownerN))
	}
	return &summary, nil
}

// refreshPropertyRating recomputes the denormalized rating fields on the
// property row from its approved reviews.
func (s *ReviewService) refreshPropertyRating(tx *gorm.DB, propertyID uuid.UUID) error {
	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(overall_rating), 0) as avg, COUNT(*) as count").
		Where("property_id = ? AND status = ?", propertyID, models.ReviewStatusApproved).
		Scan(&a).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Property{}).Where("id = ?", propertyID).
		Updates(map[string]interface{}{
			"average_rating": roundRating(a.Avg),
			"total_reviews":  a.Count,
		}).Error
}

func roundRating(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func stayDurationMonths(checkIn, now time.Time) int {
	if now.Before(checkIn) {
		return 0
	}
	months := int(now.Sub(checkIn).Hours() / 24 / 30)
	if months < 1 {
		months = 1
	}
	return months
}

func stayPeriod(checkIn, now time.Time) string {
	return checkIn.Format("Jan 2006") + " - " + now.Format("Jan 2006")
}
