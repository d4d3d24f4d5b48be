package services

import (
	"errors"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxRecentSearches = 10

type PreferenceService struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{DB: db, Now: time.Now}
}

// GetPreferences returns the user's preference row, creating an empty one
// on first access.
func (s *PreferenceService) GetPreferences(userID uuid.UUID) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := s.DB.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var user models.User
		if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
			return nil, NotFound("User not found!")
		}
		pref = models.UserPreference{UserID: user.ID, UserEmail: user.Email}
		if err := s.DB.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// SavePreferences upserts the caller's preferences. Identity and search
// history fields on the stored row are preserved.
func (s *PreferenceService) SavePreferences(userID uuid.UUID, input models.UserPreference) (*models.UserPreference, error) {
	pref, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	input.ID = pref.ID
	input.UserID = pref.UserID
	input.UserEmail = pref.UserEmail
	input.RecentSearches = pref.RecentSearches
	input.CreatedAt = pref.CreatedAt

	if err := s.DB.Save(&input).Error; err != nil {
		return nil, err
	}
	return &input, nil
}

// RecordSearch prepends a search to the user's history, keeping the ten
// most recent entries.
func (s *PreferenceService) RecordSearch(userID uuid.UUID, search models.SearchHistory) error {
	pref, err := s.GetPreferences(userID)
	if err != nil {
		return err
	}

	search.SearchedAt = s.Now()
	searches := append([]models.SearchHistory{search}, pref.RecentSearches...)
	if len(searches) > maxRecentSearches {
		searches = searches[:maxRecentSearches]
	}
	pref.RecentSearches = searches

	return s.DB.Save(pref).Error
}

func (s *PreferenceService) GetRecentSearches(userID uuid.UUID) ([]models.SearchHistory, error) {
	pref, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}
	return pref.RecentSearches, nil
}

func (s *PreferenceService) ClearRecentSearches(userID uuid.UUID) error {
	pref, err := s.GetPreferences(userID)
	if err != nil {
		return err
	}
	pref.RecentSearches = []models.SearchHistory{}
	return s.DB.Save(pref).Error
}
