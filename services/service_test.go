package services

import (
	"testing"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Booking{},
		&models.Payment{},
		&models.Favorite{},
		&models.Inquiry{},
		&models.VisitSchedule{},
		&models.Review{},
		&models.UserPreference{},
	)
	require.NoError(t, err)
	return db
}

func createOwner(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	owner := &models.User{
		FullName:    "Ravi Kumar",
		Email:       "ravi." + uuid.NewString()[:8] + "@example.com",
		PhoneNumber: "9876543210",
		Password:    "hashed",
		Role:        models.RoleOwner,
		Verified:    true,
	}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func createSeeker(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	seeker := &models.User{
		FullName:    "Priya Sharma",
		Email:       "priya." + uuid.NewString()[:8] + "@example.com",
		PhoneNumber: "9123456780",
		Password:    "hashed",
		Role:        models.RoleSeeker,
		Verified:    true,
	}
	require.NoError(t, db.Create(seeker).Error)
	return seeker
}

func createProperty(t *testing.T, db *gorm.DB, owner *models.User, rooms int) *models.Property {
	t.Helper()
	property := &models.Property{
		Name:             "Sunrise PG",
		PropertyType:     "pg",
		Address:          "12 MG Road",
		City:             "Bengaluru",
		State:            "Karnataka",
		PinCode:          "560001",
		OwnerID:          owner.ID,
		OwnerName:        owner.FullName,
		OwnerPhone:       owner.PhoneNumber,
		OwnerEmail:       owner.Email,
		TotalRooms:       rooms,
		AvailableRooms:   rooms,
		MonthlyRent:      8000,
		SecurityDeposit:  16000,
		RoomType:         "single",
		GenderPreference: "any",
		Status:           models.PropertyStatusActive,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

// fixedClock pins a service's Now to a known instant.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
