package services

import (
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardService composes the per-domain services into the summary
// payloads the owner and seeker home screens render.
type DashboardService struct {
	DB *gorm.DB

	Properties *PropertyService
	Bookings   *BookingService
	Payments   *PaymentService
	Favorites  *FavoriteService
	Inquiries  *InquiryService
	Visits     *VisitScheduleService
	Reviews    *ReviewService

	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		DB:         db,
		Properties: NewPropertyService(db),
		Bookings:   NewBookingService(db),
		Payments:   NewPaymentService(db),
		Favorites:  NewFavoriteService(db),
		Inquiries:  NewInquiryService(db),
		Visits:     NewVisitScheduleService(db),
		Reviews:    NewReviewService(db),
		Now:        time.Now,
	}
}

type OwnerDashboard struct {
	Properties *PropertyStatistics `json:"properties"`
	Bookings   *BookingStatistics  `json:"bookings"`
	Payments   *PaymentStatistics  `json:"payments"`

	PendingInquiries int64 `json:"pending_inquiries"`
	PendingVisits    int64 `json:"pending_visits"`
	TodayVisits      int64 `json:"today_visits"`

	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`

	RecentBookings []models.Booking `json:"recent_bookings"`
	RecentPayments []models.Payment `json:"recent_payments"`
	RecentReviews  []models.Review  `json:"recent_reviews"`
}

func (s *DashboardService) GetOwnerDashboard(ownerID uuid.UUID) (*OwnerDashboard, error) {
	var owner models.User
	if err := s.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	if owner.Role != models.RoleOwner {
		return nil, Forbidden("Only PG owners can view the owner dashboard!")
	}

	dash := &OwnerDashboard{}
	var err error

	if dash.Properties, err = s.Properties.GetOwnerPropertyStatistics(ownerID); err != nil {
		return nil, err
	}
	if dash.Bookings, err = s.Bookings.GetOwnerBookingStatistics(ownerID); err != nil {
		return nil, err
	}
	if dash.Payments, err = s.Payments.GetOwnerPaymentStatistics(ownerID); err != nil {
		return nil, err
	}

	if err = s.DB.Model(&models.Inquiry{}).
		Where("owner_id = ? AND status = ?", ownerID, models.InquiryStatusPending).
		Count(&dash.PendingInquiries).Error; err != nil {
		return nil, err
	}
	if err = s.DB.Model(&models.VisitSchedule{}).
		Where("owner_id = ? AND status = ?", ownerID, models.VisitStatusPending).
		Count(&dash.PendingVisits).Error; err != nil {
		return nil, err
	}
	if err = s.DB.Model(&models.VisitSchedule{}).
		Where("owner_id = ? AND visit_date = ? AND status = ?", ownerID, dateOnly(s.Now()), models.VisitStatusConfirmed).
		Count(&dash.TodayVisits).Error; err != nil {
		return nil, err
	}

	if err = s.DB.Where("owner_id = ?", ownerID).
		Order("created_at desc").Limit(5).Find(&dash.RecentBookings).Error; err != nil {
		return nil, err
	}
	if err = s.DB.Where("owner_id = ?", ownerID).
		Order("created_at desc").Limit(5).Find(&dash.RecentPayments).Error; err != nil {
		return nil, err
	}
	if err = s.DB.Where("owner_id = ? AND status = ?", ownerID, models.ReviewStatusApproved).
		Order("created_at desc").Limit(5).Find(&dash.RecentReviews).Error; err != nil {
		return nil, err
	}

	// rating across all the owner's listings, weighted by review count
	row := s.DB.Model(&models.Review{}).
		Where("owner_id = ? AND status = ?", ownerID, models.ReviewStatusApproved).
		Select("COALESCE(AVG(overall_rating), 0), COUNT(*)").Row()
	if err = row.Scan(&dash.AverageRating, &dash.TotalReviews); err != nil {
		return nil, err
	}
	dash.AverageRating = roundRating(dash.AverageRating)

	return dash, nil
}

type SeekerDashboard struct {
	ActiveBooking *models.Booking `json:"active_booking"`

	FavoriteCount  int64 `json:"favorite_count"`
	UnreadMessages int64 `json:"unread_messages"`

	PendingPayments []models.Payment       `json:"pending_payments"`
	UpcomingVisits  []models.VisitSchedule `json:"upcoming_visits"`
	RecentBookings  []models.Booking       `json:"recent_bookings"`
}

func (s *DashboardService) GetSeekerDashboard(seekerID uuid.UUID) (*SeekerDashboard, error) {
	var seeker models.User
	if err := s.DB.First(&seeker, "id = ?", seekerID).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	if seeker.Role != models.RoleSeeker {
		return nil, Forbidden("Only seekers can view the seeker dashboard!")
	}

	dash := &SeekerDashboard{}
	var err error

	if dash.ActiveBooking, err = s.Bookings.GetActiveSeekerBooking(seekerID); err != nil {
		return nil, err
	}
	if dash.FavoriteCount, err = s.Favorites.GetUserFavoriteCount(seekerID); err != nil {
		return nil, err
	}
	if dash.UnreadMessages, err = s.Inquiries.GetUnreadCount(seekerID); err != nil {
		return nil, err
	}

	if err = s.DB.Where("seeker_id = ? AND status = ?", seekerID, models.PaymentStatusPending).
		Order("due_date asc").Find(&dash.PendingPayments).Error; err != nil {
		return nil, err
	}
	if dash.UpcomingVisits, err = s.Visits.GetUpcomingSeekerVisits(seekerID); err != nil {
		return nil, err
	}
	if err = s.DB.Where("seeker_id = ?", seekerID).
		Order("created_at desc").Limit(5).Find(&dash.RecentBookings).Error; err != nil {
		return nil, err
	}

	return dash, nil
}
