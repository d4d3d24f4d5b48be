package services

import (
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryService struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{DB: db, Now: time.Now}
}

func (s *InquiryService) SendInquiry(seekerID, propertyID uuid.UUID, subject, message, inquiryType string) (*models.Inquiry, error) {
	var seeker models.User
	if err := s.DB.First(&seeker, "id = ?", seekerID).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	var property models.Property
	if err := s.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, NotFound("Property not found!")
	}
	var owner models.User
	if err := s.DB.First(&owner, "id = ?", property.OwnerID).Error; err != nil {
		return nil, NotFound("Property owner not found!")
	}

	if inquiryType == "" {
		inquiryType = models.InquiryTypeGeneral
	}

	inquiry := models.Inquiry{
		PropertyID:   property.ID,
		PropertyName: property.Name,

		SeekerID:    seeker.ID,
		SeekerName:  seeker.FullName,
		SeekerEmail: seeker.Email,
		SeekerPhone: seeker.PhoneNumber,

		OwnerID:    owner.ID,
		OwnerName:  owner.FullName,
		OwnerEmail: owner.Email,

		Subject:     subject,
		Message:     message,
		InquiryType: inquiryType,
		Status:      models.InquiryStatusPending,

		Messages: []models.InquiryMessage{{
			SenderID:   seeker.ID,
			SenderName: seeker.FullName,
			SenderRole: models.RoleSeeker,
			Message:    message,
			SentAt:     s.Now(),
		}},
	}

	if err := s.DB.Create(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// ReplyToInquiry appends to the thread. The first owner reply flips the
// inquiry from pending to responded.
func (s *InquiryService) ReplyToInquiry(inquiryID, userID uuid.UUID, message string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.DB.First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		return nil, NotFound("Inquiry not found!")
	}
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, NotFound("User not found!")
	}

	var senderRole string
	switch userID {
	case inquiry.SeekerID:
		senderRole = models.RoleSeeker
	case inquiry.OwnerID:
		senderRole = models.RoleOwner
		if inquiry.Status == models.InquiryStatusPending {
			now := s.Now()
			inquiry.Status = models.InquiryStatusResponded
			inquiry.RespondedAt = &now
		}
	default:
		return nil, Forbidden("You are not part of this inquiry!")
	}

	inquiry.Messages = append(inquiry.Messages, models.InquiryMessage{
		SenderID:   user.ID,
		SenderName: user.FullName,
		SenderRole: senderRole,
		Message:    message,
		SentAt:     s.Now(),
	})

	if err := s.DB.Save(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *InquiryService) CloseInquiry(inquiryID, userID uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.DB.First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		return nil, NotFound("Inquiry not found!")
	}
	if userID != inquiry.SeekerID && userID != inquiry.OwnerID {
		return nil, Forbidden("You are not authorized to close this inquiry!")
	}

	inquiry.Status = models.InquiryStatusClosed
	if err := s.DB.Save(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// MarkAsRead marks every message from the other party as read.
func (s *InquiryService) MarkAsRead(inquiryID, userID uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.DB.First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		return nil, NotFound("Inquiry not found!")
	}

	for i := range inquiry.Messages {
		if inquiry.Messages[i].SenderID != userID {
			inquiry.Messages[i].Read = true
		}
	}

	if err := s.DB.Save(&inquiry).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *InquiryService) GetInquiryByID(inquiryID uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.DB.First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		return nil, NotFound("Inquiry not found!")
	}
	return &inquiry, nil
}

func (s *InquiryService) GetSeekerInquiries(seekerID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.DB.Where("seeker_id = ?", seekerID).Order("created_at desc").Find(&inquiries).Error
	return inquiries, err
}

func (s *InquiryService) GetOwnerInquiries(ownerID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.DB.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&inquiries).Error
	return inquiries, err
}

func (s *InquiryService) GetPendingInquiries(ownerID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.DB.Where("owner_id = ? AND status = ?", ownerID, models.InquiryStatusPending).Find(&inquiries).Error
	return inquiries, err
}

func (s *InquiryService) GetPropertyInquiries(propertyID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.DB.Where("property_id = ?", propertyID).Order("created_at desc").Find(&inquiries).Error
	return inquiries, err
}

// GetUnreadCount counts messages addressed to the user that are still unread.
func (s *InquiryService) GetUnreadCount(userID uuid.UUID) (int64, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, nil
	}

	var inquiries []models.Inquiry
	var err error
	if user.Role == models.RoleOwner {
		err = s.DB.Where("owner_id = ?", userID).Find(&inquiries).Error
	} else {
		err = s.DB.Where("seeker_id = ?", userID).Find(&inquiries).Error
	}
	if err != nil {
		return 0, err
	}

	var unread int64
	for _, inquiry := range inquiries {
		for _, msg := range inquiry.Messages {
			if msg.SenderID != userID && !msg.Read {
				unread++
			}
		}
	}
	return unread, nil
}
