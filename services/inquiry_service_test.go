package services

import (
	"testing"

	"pgstay-server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInquiry(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewInquiryService(db)

	inquiry, err := svc.SendInquiry(seeker.ID, property.ID, "Room availability", "Is a single room free from April?", "")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusPending, inquiry.Status)
	assert.Equal(t, models.InquiryTypeGeneral, inquiry.InquiryType) // defaulted
	assert.Equal(t, owner.FullName, inquiry.OwnerName)
	require.Len(t, inquiry.Messages, 1)
	assert.Equal(t, models.RoleSeeker, inquiry.Messages[0].SenderRole)

	_, err = svc.SendInquiry(seeker.ID, uuid.New(), "x", "y", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestReplyToInquiry(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewInquiryService(db)
	inquiry, err := svc.SendInquiry(seeker.ID, property.ID, "Pricing", "Any discount for 12 months?", models.InquiryTypePricing)
	require.NoError(t, err)

	// the first owner reply flips pending to responded
	inquiry, err = svc.ReplyToInquiry(inquiry.ID, owner.ID, "Yes, 5% off for a year's stay.")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusResponded, inquiry.Status)
	assert.NotNil(t, inquiry.RespondedAt)
	require.Len(t, inquiry.Messages, 2)
	assert.Equal(t, models.RoleOwner, inquiry.Messages[1].SenderRole)

	// the seeker can keep the thread going
	inquiry, err = svc.ReplyToInquiry(inquiry.ID, seeker.ID, "Great, I'll schedule a visit.")
	require.NoError(t, err)
	assert.Len(t, inquiry.Messages, 3)
	assert.Equal(t, models.InquiryStatusResponded, inquiry.Status)

	_, err = svc.ReplyToInquiry(inquiry.ID, uuid.New(), "let me in")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))
}

func TestCloseInquiry(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewInquiryService(db)
	inquiry, err := svc.SendInquiry(seeker.ID, property.ID, "Visit", "Can I come by Sunday?", models.InquiryTypeVisitRequest)
	require.NoError(t, err)

	_, err = svc.CloseInquiry(inquiry.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindForbidden))

	inquiry, err = svc.CloseInquiry(inquiry.ID, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusClosed, inquiry.Status)
}

func TestUnreadCounts(t *testing.T) {
	db := setupTestDB(t)
	owner := createOwner(t, db)
	seeker := createSeeker(t, db)
	property := createProperty(t, db, owner, 2)

	svc := NewInquiryService(db)
	inquiry, err := svc.SendInquiry(seeker.ID, property.ID, "Amenities", "Does the rent include wifi?", models.InquiryTypeAmenities)
	require.NoError(t, err)

	// the seeker's opening message is unread for the owner
	count, err := svc.GetUnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.MarkAsRead(inquiry.ID, owner.ID)
	require.NoError(t, err)

	count, err = svc.GetUnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// an owner reply shows up unread on the seeker side
	_, err = svc.ReplyToInquiry(inquiry.ID, owner.ID, "Yes, wifi is included.")
	require.NoError(t, err)

	count, err = svc.GetUnreadCount(seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
