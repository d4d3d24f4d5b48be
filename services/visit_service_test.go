package services

import (
	"testing"
	"time"

	"pgstay-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleVisit(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewVisitScheduleService(db)
	svc.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	visit, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "Looking for April move-in")
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusPending, visit.Status)
	assert.Equal(t, "First visit", visit.VisitPurpose) // default purpose
	assert.Equal(t, 30, visit.DurationMinutes)
	assert.Equal(t, property.Name, visit.PropertyName)
	assert.Equal(t, owner.FullName, visit.OwnerName)

	t.Run("past dates are rejected", func(t *testing.T) {
		_, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), "10:30", "", "")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("owners cannot schedule", func(t *testing.T) {
		_, err := svc.ScheduleVisit(owner.ID, property.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindForbidden))
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := svc.ScheduleVisit(seeker.ID, uuid.New(), time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotFound))
	})
}

func TestConfirmVisit(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewVisitScheduleService(db)
	svc.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	visit, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "")
	require.NoError(t, err)

	_, err = svc.ConfirmVisit(visit.ID, seeker.ID, "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	visit, err = svc.ConfirmVisit(visit.ID, owner.ID, "Gate code is 4321")
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusConfirmed, visit.Status)
	assert.NotNil(t, visit.ConfirmedAt)

	// confirming again is an invalid transition
	_, err = svc.ConfirmVisit(visit.ID, owner.ID, "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidState))
}

func TestRescheduleVisit(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewVisitScheduleService(db)
	svc.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	visit, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "")
	require.NoError(t, err)

	visit, err = svc.RescheduleVisit(visit.ID, seeker.ID, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), "16:00", "exam on the 5th")
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusRescheduled, visit.Status)
	assert.Equal(t, "16:00", visit.VisitTime)
	require.NotNil(t, visit.OriginalDate)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), *visit.OriginalDate)
	assert.Equal(t, "10:30", visit.OriginalTime)

	// a rescheduled visit can still be confirmed
	visit, err = svc.ConfirmVisit(visit.ID, owner.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusConfirmed, visit.Status)
}

func TestCompleteAndNoShow(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewVisitScheduleService(db)
	svc.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	visit, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "")
	require.NoError(t, err)

	// pending visits cannot be completed
	_, err = svc.CompleteVisit(visit.ID, owner.ID, "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidState))

	_, err = svc.ConfirmVisit(visit.ID, owner.ID, "")
	require.NoError(t, err)

	visit, err = svc.CompleteVisit(visit.ID, owner.ID, "Seeker liked the room")
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusCompleted, visit.Status)
	assert.NotNil(t, visit.CompletedAt)

	second, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), "11:00", "Second visit", "")
	require.NoError(t, err)
	_, err = svc.ConfirmVisit(second.ID, owner.ID, "")
	require.NoError(t, err)
	second, err = svc.MarkNoShow(second.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusNoShow, second.Status)
}

func TestCancelVisit(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewVisitScheduleService(db)
	svc.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	visit, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:30", "", "")
	require.NoError(t, err)

	visit, err = svc.CancelVisit(visit.ID, owner.ID, "out of town")
	require.NoError(t, err)
	assert.Equal(t, models.VisitStatusCancelled, visit.Status)
	assert.Equal(t, models.RoleOwner, visit.CancelledBy)

	t.Run("completed visits stay completed", func(t *testing.T) {
		v, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), "10:30", "", "")
		require.NoError(t, err)
		_, err = svc.ConfirmVisit(v.ID, owner.ID, "")
		require.NoError(t, err)
		_, err = svc.CompleteVisit(v.ID, owner.ID, "")
		require.NoError(t, err)

		_, err = svc.CancelVisit(v.ID, seeker.ID, "changed my mind")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidState))
	})

	t.Run("strangers cannot cancel", func(t *testing.T) {
		v, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), "10:30", "", "")
		require.NoError(t, err)
		_, err = svc.CancelVisit(v.ID, uuid.New(), "")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindForbidden))
	})
}

func TestUpcomingVisitQueries(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewVisitScheduleService(db)
	svc.Now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	past, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "10:00", "", "")
	require.NoError(t, err)
	_, err = svc.ConfirmVisit(past.ID, owner.ID, "")
	require.NoError(t, err)

	future, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), "10:00", "", "")
	require.NoError(t, err)
	_, err = svc.ConfirmVisit(future.ID, owner.ID, "")
	require.NoError(t, err)

	pending, err := svc.ScheduleVisit(seeker.ID, property.ID, time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), "10:00", "", "")
	require.NoError(t, err)

	// the clock has moved past the first confirmed visit
	svc.Now = fixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	upcoming, err := svc.GetUpcomingOwnerVisits(owner.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, future.ID, upcoming[0].ID)

	requests, err := svc.GetPendingVisitRequests(owner.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, pending.ID, requests[0].ID)

	all, err := svc.GetOwnerVisits(owner.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
