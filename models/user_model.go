package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleOwner  = "owner"
	RoleSeeker = "seeker"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName    string    `gorm:"size:255;not null" json:"full_name"`
	Email       string    `gorm:"size:255;not null;unique" json:"email"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phone_number"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"size:20;not null" json:"role"`
	Verified    bool      `gorm:"default:false" json:"verified"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`

	ResetPasswordToken          *string    `gorm:"size:64;index" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
