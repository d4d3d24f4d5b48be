package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Favorite struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_favorites_user_property,unique" json:"user_id"`
	UserName string    `gorm:"size:255" json:"user_name"`

	PropertyID       uuid.UUID `gorm:"type:uuid;not null;index:idx_favorites_user_property,unique" json:"property_id"`
	PropertyName     string    `gorm:"size:255" json:"property_name"`
	PropertyAddress  string    `gorm:"size:255" json:"property_address"`
	PropertyCity     string    `gorm:"size:100" json:"property_city"`
	MonthlyRent      float64   `gorm:"type:numeric(10,2)" json:"monthly_rent"`
	PropertyImageURL string    `gorm:"size:255" json:"property_image_url"`

	OwnerID   uuid.UUID `gorm:"type:uuid" json:"owner_id"`
	OwnerName string    `gorm:"size:255" json:"owner_name"`

	PersonalNote string    `gorm:"type:text" json:"personal_note"`
	SavedAt      time.Time `json:"saved_at"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.SavedAt.IsZero() {
		f.SavedAt = time.Now()
	}
	return nil
}
