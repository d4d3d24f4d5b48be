package services

import (
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitScheduleService struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewVisitScheduleService(db *gorm.DB) *VisitScheduleService {
	return &VisitScheduleService{DB: db, Now: time.Now}
}

func (s *VisitScheduleService) ScheduleVisit(seekerID, propertyID uuid.UUID, visitDate time.Time, visitTime, visitPurpose, seekerNote string) (*models.VisitSchedule, error) {
	var seeker models.User
	if err := s.DB.First(&seeker, "id = ?", seekerID).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	if seeker.Role != models.RoleSeeker {
		return nil, Forbidden("Only seekers can schedule visits!")
	}

	var property models.Property
	if err := s.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, NotFound("Property not found!")
	}
	var owner models.User
	if err := s.DB.First(&owner, "id = ?", property.OwnerID).Error; err != nil {
		return nil, NotFound("Property owner not found!")
	}

	if dateOnly(visitDate).Before(dateOnly(s.Now())) {
		return nil, Validation("Cannot schedule visit for a past date!")
	}

	if visitPurpose == "" {
		visitPurpose = "First visit"
	}

	visit := models.VisitSchedule{
		PropertyID:      property.ID,
		PropertyName:    property.Name,
		PropertyAddress: property.Address,
		PropertyCity:    property.City,

		SeekerID:    seeker.ID,
		SeekerName:  seeker.FullName,
		SeekerEmail: seeker.Email,
		SeekerPhone: seeker.PhoneNumber,

		OwnerID:    owner.ID,
		OwnerName:  owner.FullName,
		OwnerEmail: owner.Email,
		OwnerPhone: owner.PhoneNumber,

		VisitDate:       dateOnly(visitDate),
		VisitTime:       visitTime,
		DurationMinutes: 30,
		VisitPurpose:    visitPurpose,
		SeekerNote:      seekerNote,

		Status: models.VisitStatusPending,
	}

	if err := s.DB.Create(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func (s *VisitScheduleService) ConfirmVisit(visitID, ownerID uuid.UUID, ownerNote string) (*models.VisitSchedule, error) {
	visit, err := s.getVisitAndVerifyOwner(visitID, ownerID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitStatusPending && visit.Status != models.VisitStatusRescheduled {
		return nil, InvalidState("Visit cannot be confirmed in current state!")
	}

	now := s.Now()
	visit.Status = models.VisitStatusConfirmed
	visit.OwnerNote = ownerNote
	visit.ConfirmedAt = &now

	if err := s.DB.Save(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *VisitScheduleService) RescheduleVisit(visitID, userID uuid.UUID, newDate time.Time, newTime, reason string) (*models.VisitSchedule, error) {
	var visit models.VisitSchedule
	if err := s.DB.First(&visit, "id = ?", visitID).Error; err != nil {
		return nil, NotFound("Visit not found!")
	}
	if userID != visit.SeekerID && userID != visit.OwnerID {
		return nil, Forbidden("You are not authorized to reschedule this visit!")
	}
	if visit.Status == models.VisitStatusCompleted || visit.Status == models.VisitStatusCancelled {
		return nil, InvalidState("Cannot reschedule completed or cancelled visit!")
	}
	if dateOnly(newDate).Before(dateOnly(s.Now())) {
		return nil, Validation("Cannot reschedule to a past date!")
	}

	originalDate := visit.VisitDate
	visit.OriginalDate = &originalDate
	visit.OriginalTime = visit.VisitTime

	visit.VisitDate = dateOnly(newDate)
	visit.VisitTime = newTime
	visit.RescheduleReason = reason
	visit.Status = models.VisitStatusRescheduled

	if err := s.DB.Save(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func (s *VisitScheduleService) CancelVisit(visitID, userID uuid.UUID, reason string) (*models.VisitSchedule, error) {
	var visit models.VisitSchedule
	if err := s.DB.First(&visit, "id = ?", visitID).Error; err != nil {
		return nil, NotFound("Visit not found!")
	}

	var cancelledBy string
	switch userID {
	case visit.SeekerID:
		cancelledBy = models.RoleSeeker
	case visit.OwnerID:
		cancelledBy = models.RoleOwner
	default:
		return nil, Forbidden("You are not authorized to cancel this visit!")
	}

	if visit.Status == models.VisitStatusCompleted {
		return nil, InvalidState("Cannot cancel a completed visit!")
	}

	now := s.Now()
	visit.Status = models.VisitStatusCancelled
	visit.CancellationReason = reason
	visit.CancelledBy = cancelledBy
	visit.CancelledAt = &now

	if err := s.DB.Save(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func (s *VisitScheduleService) CompleteVisit(visitID, ownerID uuid.UUID, feedback string) (*models.VisitSchedule, error) {
	visit, err := s.getVisitAndVerifyOwner(visitID, ownerID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitStatusConfirmed {
		return nil, InvalidState("Only confirmed visits can be marked as completed!")
	}

	now := s.Now()
	visit.Status = models.VisitStatusCompleted
	visit.VisitFeedback = feedback
	visit.CompletedAt = &now

	if err := s.DB.Save(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *VisitScheduleService) MarkNoShow(visitID, ownerID uuid.UUID) (*models.VisitSchedule, error) {
	visit, err := s.getVisitAndVerifyOwner(visitID, ownerID)
	if err != nil {
		return nil, err
	}
	if visit.Status != models.VisitStatusConfirmed {
		return nil, InvalidState("Only confirmed visits can be marked as no-show!")
	}

	visit.Status = models.VisitStatusNoShow
	if err := s.DB.Save(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *VisitScheduleService) GetVisitByID(visitID uuid.UUID) (*models.VisitSchedule, error) {
	var visit models.VisitSchedule
	if err := s.DB.First(&visit, "id = ?", visitID).Error; err != nil {
		return nil, NotFound("Visit not found!")
	}
	return &visit, nil
}

func (s *VisitScheduleService) GetSeekerVisits(seekerID uuid.UUID) ([]models.VisitSchedule, error) {
	var visits []models.VisitSchedule
	err := s.DB.Where("seeker_id = ?", seekerID).Order("visit_date desc").Find(&visits).Error
	return visits, err
}

func (s *VisitScheduleService) GetOwnerVisits(ownerID uuid.UUID) ([]models.VisitSchedule, error) {
	var visits []models.VisitSchedule
	err := s.DB.Where("owner_id = ?", ownerID).Order("visit_date desc").Find(&visits).Error
	return visits, err
}

func (s *VisitScheduleService) GetUpcomingOwnerVisits(ownerID uuid.UUID) ([]models.VisitSchedule, error) {
	var visits []models.VisitSchedule
	err := s.DB.Where("owner_id = ? AND status = ? AND visit_date >= ?", ownerID, models.VisitStatusConfirmed, dateOnly(s.Now())).
		Order("visit_date asc").Find(&visits).Error
	return visits, err
}

func (s *VisitScheduleService) GetUpcomingSeekerVisits(seekerID uuid.UUID) ([]models.VisitSchedule, error) {
	var visits []models.VisitSchedule
	err := s.DB.Where("seeker_id = ? AND status = ? AND visit_date >= ?", seekerID, models.VisitStatusConfirmed, dateOnly(s.Now())).
		Order("visit_date asc").Find(&visits).Error
	return visits, err
}

func (s *VisitScheduleService) GetPendingVisitRequests(ownerID uuid.UUID) ([]models.VisitSchedule, error) {
	var visits []models.VisitSchedule
	err := s.DB.Where("owner_id = ? AND status = ?", ownerID, models.VisitStatusPending).Find(&visits).Error
	return visits, err
}

func (s *VisitScheduleService) GetOwnerVisitsByDate(ownerID uuid.UUID, date time.Time) ([]models.VisitSchedule, error) {
	var visits []models.VisitSchedule
	err := s.DB.Where("owner_id = ? AND visit_date = ?", ownerID, dateOnly(date)).Find(&visits).Error
	return visits, err
}

func (s *VisitScheduleService) getVisitAndVerifyOwner(visitID, ownerID uuid.UUID) (*models.VisitSchedule, error) {
	var visit models.VisitSchedule
	if err := s.DB.First(&visit, "id = ?", visitID).Error; err != nil {
		return nil, NotFound("Visit not found!")
	}
	if visit.OwnerID != ownerID {
		return nil, Forbidden("You are not authorized to perform this action!")
	}
	return &visit, nil
}
