package services

import (
	"testing"

	"pgstay-server/models"

	"github.com/stretchr/testify/assert"
)

func TestNextBookingStatus_LegalChain(t *testing.T) {
	steps := []struct {
		action string
		from   string
		want   string
	}{
		{ActionOwnerConfirm, models.BookingStatusPending, models.BookingStatusOwnerConfirmed},
		{ActionSubmitDocuments, models.BookingStatusOwnerConfirmed, models.BookingStatusDocsSubmitted},
		{ActionApproveDocuments, models.BookingStatusDocsSubmitted, models.BookingStatusDocsVerified},
		{ActionRequestPayment, models.BookingStatusDocsVerified, models.BookingStatusPaymentPending},
		{ActionConfirmAdvancePayment, models.BookingStatusPaymentPending, models.BookingStatusActive},
		{ActionComplete, models.BookingStatusActive, models.BookingStatusCompleted},
	}
	for _, step := range steps {
		next, ok := NextBookingStatus(step.action, step.from)
		assert.True(t, ok, "%s from %s", step.action, step.from)
		assert.Equal(t, step.want, next)
	}
}

func TestNextBookingStatus_RejectionBranches(t *testing.T) {
	next, ok := NextBookingStatus(ActionOwnerReject, models.BookingStatusPending)
	assert.True(t, ok)
	assert.Equal(t, models.BookingStatusOwnerRejected, next)

	next, ok = NextBookingStatus(ActionRejectDocuments, models.BookingStatusDocsSubmitted)
	assert.True(t, ok)
	assert.Equal(t, models.BookingStatusDocsRejected, next)
}

func TestNextBookingStatus_IllegalTransitions(t *testing.T) {
	illegal := []struct {
		action string
		from   string
	}{
		{ActionOwnerConfirm, models.BookingStatusOwnerConfirmed},
		{ActionOwnerConfirm, models.BookingStatusActive},
		{ActionOwnerReject, models.BookingStatusDocsSubmitted},
		{ActionSubmitDocuments, models.BookingStatusPending},
		{ActionSubmitDocuments, models.BookingStatusDocsRejected},
		{ActionApproveDocuments, models.BookingStatusOwnerConfirmed},
		{ActionRequestPayment, models.BookingStatusDocsSubmitted},
		{ActionConfirmAdvancePayment, models.BookingStatusDocsVerified},
		{ActionConfirmAdvancePayment, models.BookingStatusActive},
		{ActionComplete, models.BookingStatusPaymentPending},
		{ActionComplete, models.BookingStatusCompleted},
		{"unknown_action", models.BookingStatusPending},
	}
	for _, tc := range illegal {
		_, ok := NextBookingStatus(tc.action, tc.from)
		assert.False(t, ok, "%s from %s should be illegal", tc.action, tc.from)
	}
}

func TestNextBookingStatus_CancelFanIn(t *testing.T) {
	cancellable := []string{
		models.BookingStatusPending,
		models.BookingStatusOwnerConfirmed,
		models.BookingStatusOwnerRejected,
		models.BookingStatusDocsSubmitted,
		models.BookingStatusDocsVerified,
		models.BookingStatusDocsRejected,
		models.BookingStatusPaymentPending,
		models.BookingStatusActive,
		models.BookingStatusCancelled,
	}
	for _, from := range cancellable {
		next, ok := NextBookingStatus(ActionCancel, from)
		assert.True(t, ok, "cancel from %s", from)
		assert.Equal(t, models.BookingStatusCancelled, next)
	}

	// the one terminal state cancel cannot touch
	_, ok := NextBookingStatus(ActionCancel, models.BookingStatusCompleted)
	assert.False(t, ok)
}
