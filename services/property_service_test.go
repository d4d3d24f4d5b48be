package services

import (
	"testing"

	"pgstay-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProperty(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	svc := NewPropertyService(db)

	input := PropertyInput{
		Name:             "Green Nest PG",
		PropertyType:     "pg",
		Address:          "22 MG Road",
		City:             "Pune",
		State:            "Maharashtra",
		PinCode:          "411001",
		TotalRooms:       10,
		AvailableRooms:   8,
		MonthlyRent:      9500,
		SecurityDeposit:  19000,
		RoomType:         "double",
		GenderPreference: "any",
		Wifi:             true,
		Meals:            true,
	}

	property, err := svc.AddProperty(owner.ID, input)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusActive, property.Status)
	assert.Equal(t, owner.FullName, property.OwnerName)
	assert.True(t, property.Wifi)

	t.Run("seekers cannot list properties", func(t *testing.T) {
		seeker := createSeeker(t, db)
		_, err := svc.AddProperty(seeker.ID, input)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindForbidden))
	})

	t.Run("available rooms bounded by total", func(t *testing.T) {
		bad := input
		bad.AvailableRooms = 12
		_, err := svc.AddProperty(owner.ID, bad)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
	})
}

func TestUpdateProperty_OwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	other := createOwner(t, db)
	property := createProperty(t, db, owner, 3)

	svc := NewPropertyService(db)
	input := PropertyInput{
		Name:           property.Name,
		PropertyType:   property.PropertyType,
		Address:        property.Address,
		City:           property.City,
		State:          property.State,
		TotalRooms:     property.TotalRooms,
		AvailableRooms: property.AvailableRooms,
		MonthlyRent:    9000,
		RoomType:       property.RoomType,
	}

	_, err := svc.UpdateProperty(property.ID, other.ID, input)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	updated, err := svc.UpdateProperty(property.ID, owner.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 9000.0, updated.MonthlyRent)
}

func TestSearchProperties(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	svc := NewPropertyService(db)

	seed := []PropertyInput{
		{Name: "A", PropertyType: "pg", City: "Pune", State: "Maharashtra", RoomType: "single", GenderPreference: "any", TotalRooms: 5, AvailableRooms: 5, MonthlyRent: 7000},
		{Name: "B", PropertyType: "hostel", City: "Pune", State: "Maharashtra", RoomType: "dormitory", GenderPreference: "male", TotalRooms: 20, AvailableRooms: 10, MonthlyRent: 4500},
		{Name: "C", PropertyType: "pg", City: "Mumbai", State: "Maharashtra", RoomType: "double", GenderPreference: "any", TotalRooms: 6, AvailableRooms: 2, MonthlyRent: 12000},
	}
	for _, in := range seed {
		_, err := svc.AddProperty(owner.ID, in)
		require.NoError(t, err)
	}

	// city match is case-insensitive
	results, err := svc.SearchProperties(SearchFilters{City: "pune"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.SearchProperties(SearchFilters{PropertyType: "pg"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	minPrice, maxPrice := 5000.0, 10000.0
	results, err = svc.SearchProperties(SearchFilters{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Name)

	// inactive listings never surface
	require.NoError(t, db.Model(&models.Property{}).Where("name = ?", "A").Update("status", models.PropertyStatusInactive).Error)
	results, err = svc.SearchProperties(SearchFilters{City: "Pune"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestDeleteProperty(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	property := createProperty(t, db, owner, 2)
	svc := NewPropertyService(db)

	require.NoError(t, svc.DeleteProperty(property.ID, owner.ID))

	_, err := svc.GetPropertyByID(property.ID)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestGetOwnerPropertyStatistics(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	createProperty(t, db, owner, 4)
	second := createProperty(t, db, owner, 6)
	require.NoError(t, db.Model(second).Update("status", models.PropertyStatusInactive).Error)

	svc := NewPropertyService(db)
	stats, err := svc.GetOwnerPropertyStatistics(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProperties)
	assert.Equal(t, int64(1), stats.ActiveProperties)
	assert.Equal(t, 10, stats.TotalRooms)
	assert.Equal(t, 10, stats.AvailableRooms)
}
