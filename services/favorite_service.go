package services

import (
	"errors"

	"pgstay-server/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

func (s *FavoriteService) AddToFavorites(userID, propertyID uuid.UUID, personalNote string) (*models.Favorite, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	var property models.Property
	if err := s.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, NotFound("Property not found!")
	}

	var existing int64
	if err := s.DB.Model(&models.Favorite{}).Where("user_id = ? AND property_id = ?", userID, propertyID).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, Conflict("Property already in favorites!")
	}

	favorite := models.Favorite{
		UserID:          user.ID,
		UserName:        user.FullName,
		PropertyID:      property.ID,
		PropertyName:    property.Name,
		PropertyAddress: property.Address + ", " + property.City,
		PropertyCity:    property.City,
		MonthlyRent:     property.MonthlyRent,
		OwnerID:         property.OwnerID,
		OwnerName:       property.OwnerName,
		PersonalNote:    personalNote,
	}
	if len(property.ImageURLs) > 0 {
		favorite.PropertyImageURL = property.ImageURLs[0]
	}

	if err := s.DB.Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (s *FavoriteService) RemoveFromFavorites(userID, propertyID uuid.UUID) error {
	var favorite models.Favorite
	err := s.DB.Where("user_id = ? AND property_id = ?", userID, propertyID).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Property not in favorites!")
	}
	if err != nil {
		return err
	}
	return s.DB.Delete(&favorite).Error
}

func (s *FavoriteService) GetUserFavorites(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.DB.Where("user_id = ?", userID).Order("saved_at desc").Find(&favorites).Error
	return favorites, err
}

func (s *FavoriteService) IsFavorited(userID, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Favorite{}).Where("user_id = ? AND property_id = ?", userID, propertyID).Count(&count).Error
	return count > 0, err
}

func (s *FavoriteService) UpdateNote(userID, propertyID uuid.UUID, note string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.DB.Where("user_id = ? AND property_id = ?", userID, propertyID).First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Property not in favorites!")
	}
	if err != nil {
		return nil, err
	}

	favorite.PersonalNote = note
	if err := s.DB.Save(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// ToggleFavorite flips the saved state and reports whether the property is now
// favorited.
func (s *FavoriteService) ToggleFavorite(userID, propertyID uuid.UUID) (bool, error) {
	favorited, err := s.IsFavorited(userID, propertyID)
	if err != nil {
		return false, err
	}
	if favorited {
		return false, s.RemoveFromFavorites(userID, propertyID)
	}
	_, err = s.AddToFavorites(userID, propertyID, "")
	return true, err
}

func (s *FavoriteService) GetPropertyFavoriteCount(propertyID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Favorite{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

func (s *FavoriteService) GetUserFavoriteCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
