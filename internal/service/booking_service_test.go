package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/auth"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/lifecycle"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/validation"
	ws "github.com/manojsharma511/govindam-food-court-builder-sub001/internal/websocket"
)

var bookingNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

type bookingFixture struct {
	store       *fakeStore
	bookingRepo *mockBookingRepo
	auditRepo   *mockAuditRepo
	svc         *bookingService
}

func newBookingFixture() *bookingFixture {
	store := &fakeStore{}
	bookingRepo := &mockBookingRepo{store: store}
	auditRepo := &mockAuditRepo{store: store}
	svc := NewBookingService(bookingRepo, auditRepo, &fakeTxManager{store: store}, ws.NewHub()).(*bookingService)
	svc.now = func() time.Time { return bookingNow }
	return &bookingFixture{
		store:       store,
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		svc:         svc,
	}
}

func bookingRequest() validation.BookingRequest {
	return validation.BookingRequest{
		BookingType: "dinner",
		BookingDate: "2025-06-20",
		BookingTime: "19:30",
		GuestCount:  4,
		GuestName:   "Asha Verma",
		GuestPhone:  "+91 98765 43210",
	}
}

func TestCreateBooking_AuthenticatedUser(t *testing.T) {
	f := newBookingFixture()
	subject := uuid.New()
	authCtx := &auth.Context{SubjectID: subject.String(), Role: model.RoleUser}

	res, err := f.svc.CreateBooking(context.Background(), authCtx, bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, res.Status)

	require.Len(t, f.store.bookings, 1)
	booking := f.store.bookings[0]
	require.NotNil(t, booking.UserID)
	assert.Equal(t, subject, *booking.UserID)
	assert.Equal(t, "Asha Verma", booking.GuestName)

	require.Len(t, f.store.audits, 1)
	assert.Equal(t, model.ActionCreateBooking, f.store.audits[0].Action)
}

func TestCreateBooking_GuestWithoutAccount(t *testing.T) {
	f := newBookingFixture()

	res, err := f.svc.CreateBooking(context.Background(), nil, bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, res.Status)

	require.Len(t, f.store.bookings, 1)
	assert.Nil(t, f.store.bookings[0].UserID, "guest bookings carry no user reference")
}

func TestCreateBooking_ValidationAgainstServerClock(t *testing.T) {
	f := newBookingFixture()

	req := bookingRequest()
	req.BookingDate = "2025-06-14" // yesterday relative to the fixed clock
	_, err := f.svc.CreateBooking(context.Background(), nil, req)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.store.bookings)
}

func TestCreateBooking_GuestCountLimit(t *testing.T) {
	f := newBookingFixture()

	req := bookingRequest()
	req.GuestCount = 51
	_, err := f.svc.CreateBooking(context.Background(), nil, req)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "guest_count", verr.Violations[0].Field)
}

func TestCreateBooking_RollsBackOnAuditFailure(t *testing.T) {
	f := newBookingFixture()
	f.auditRepo.logErr = errors.New("audit table unavailable")

	_, err := f.svc.CreateBooking(context.Background(), nil, bookingRequest())
	require.Error(t, err)
	assert.Empty(t, f.store.bookings)
}

func TestListBookings(t *testing.T) {
	f := newBookingFixture()
	mine := uuid.New()
	other := uuid.New()

	f.store.bookings = []model.Booking{
		{ID: uuid.New(), UserID: &mine, BookingDate: bookingNow.AddDate(0, 0, 2)},
		{ID: uuid.New(), UserID: &other, BookingDate: bookingNow.AddDate(0, 0, 3)},
		{ID: uuid.New(), UserID: &mine, BookingDate: bookingNow.AddDate(0, 0, 7)},
	}

	bookings, err := f.svc.ListBookings(context.Background(), &auth.Context{SubjectID: mine.String(), Role: model.RoleUser})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.True(t, bookings[0].BookingDate.After(bookings[1].BookingDate))

	_, err = f.svc.ListBookings(context.Background(), nil)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestUpdateBookingStatus(t *testing.T) {
	f := newBookingFixture()
	bookingID := uuid.New()
	f.store.bookings = []model.Booking{{ID: bookingID, Status: model.BookingStatusPending}}

	t.Run("plain user is forbidden", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(context.Background(), userContext(), bookingID.String(), model.BookingStatusConfirmed)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin confirms then completes", func(t *testing.T) {
		booking, err := f.svc.UpdateStatus(context.Background(), adminContext(), bookingID.String(), model.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusConfirmed, booking.Status)

		booking, err = f.svc.UpdateStatus(context.Background(), adminContext(), bookingID.String(), model.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCompleted, booking.Status)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(context.Background(), adminContext(), bookingID.String(), model.BookingStatusCancelled)
		var terr *lifecycle.ErrIllegalTransition
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, model.BookingStatusCompleted, f.store.bookings[0].Status)
	})
}

func TestCancelBooking(t *testing.T) {
	owner := uuid.New()

	newBookingInStatus := func(status string) (*bookingFixture, uuid.UUID) {
		f := newBookingFixture()
		id := uuid.New()
		f.store.bookings = []model.Booking{{ID: id, UserID: &owner, Status: status}}
		return f, id
	}

	t.Run("owner cancels", func(t *testing.T) {
		f, id := newBookingInStatus(model.BookingStatusConfirmed)
		ownerCtx := &auth.Context{SubjectID: owner.String(), Role: model.RoleUser}

		booking, err := f.svc.CancelBooking(context.Background(), ownerCtx, id.String())
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCancelled, booking.Status)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f, id := newBookingInStatus(model.BookingStatusPending)
		_, err := f.svc.CancelBooking(context.Background(), userContext(), id.String())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f, id := newBookingInStatus(model.BookingStatusPending)
		_, err := f.svc.CancelBooking(context.Background(), nil, id.String())
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		f, _ := newBookingInStatus(model.BookingStatusPending)
		_, err := f.svc.CancelBooking(context.Background(), adminContext(), "not-a-uuid")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
