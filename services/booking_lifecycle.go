package services

import "pgstay-server/models"

// Booking lifecycle actions. Each action is legal only from the source states
// listed in bookingTransitions; everything else is rejected as InvalidState.
const (
	ActionOwnerConfirm          = "owner_confirm"
	ActionOwnerReject           = "owner_reject"
	ActionSubmitDocuments       = "submit_documents"
	ActionApproveDocuments      = "approve_documents"
	ActionRejectDocuments       = "reject_documents"
	ActionRequestPayment        = "request_payment"
	ActionConfirmAdvancePayment = "confirm_advance_payment"
	ActionComplete              = "complete"
	ActionCancel                = "cancel"
)

// bookingTransitions is the full transition table: action × source state →
// next state. Cancellation is the one fan-in edge, legal from every
// non-terminal state.
var bookingTransitions = map[string]map[string]string{
	ActionOwnerConfirm: {
		models.BookingStatusPending: models.BookingStatusOwnerConfirmed,
	},
	ActionOwnerReject: {
		models.BookingStatusPending: models.BookingStatusOwnerRejected,
	},
	ActionSubmitDocuments: {
		models.BookingStatusOwnerConfirmed: models.BookingStatusDocsSubmitted,
	},
	ActionApproveDocuments: {
		models.BookingStatusDocsSubmitted: models.BookingStatusDocsVerified,
	},
	ActionRejectDocuments: {
		models.BookingStatusDocsSubmitted: models.BookingStatusDocsRejected,
	},
	ActionRequestPayment: {
		models.BookingStatusDocsVerified: models.BookingStatusPaymentPending,
	},
	ActionConfirmAdvancePayment: {
		models.BookingStatusPaymentPending: models.BookingStatusActive,
	},
	ActionComplete: {
		models.BookingStatusActive: models.BookingStatusCompleted,
	},
	ActionCancel: {
		models.BookingStatusPending:        models.BookingStatusCancelled,
		models.BookingStatusOwnerConfirmed: models.BookingStatusCancelled,
		models.BookingStatusOwnerRejected:  models.BookingStatusCancelled,
		models.BookingStatusDocsSubmitted:  models.BookingStatusCancelled,
		models.BookingStatusDocsVerified:   models.BookingStatusCancelled,
		models.BookingStatusDocsRejected:   models.BookingStatusCancelled,
		models.BookingStatusPaymentPending: models.BookingStatusCancelled,
		models.BookingStatusActive:         models.BookingStatusCancelled,
		models.BookingStatusCancelled:      models.BookingStatusCancelled,
	},
}

// NextBookingStatus returns the target state for applying action to a booking
// in the given state, or ok=false when the transition is not legal.
func NextBookingStatus(action, from string) (string, bool) {
	next, ok := bookingTransitions[action][from]
	return next, ok
}
