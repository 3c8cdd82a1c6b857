package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/auth"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/lifecycle"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/repository"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/validation"
	ws "github.com/manojsharma511/govindam-food-court-builder-sub001/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingResponse is returned on successful intake
type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
}

// BookingService handles reservation intake. Unlike orders there are no
// dependent rows, but the date window is always evaluated against the server
// clock and guests may book without an account.
type BookingService interface {
	CreateBooking(ctx context.Context, authCtx *auth.Context, req validation.BookingRequest) (*CreateBookingResponse, error)
	ListBookings(ctx context.Context, authCtx *auth.Context) ([]model.Booking, error)
	ListAllBookings(ctx context.Context, page, limit int) ([]model.Booking, int64, error)
	UpdateStatus(ctx context.Context, authCtx *auth.Context, id string, status string) (*model.Booking, error)
	CancelBooking(ctx context.Context, authCtx *auth.Context, id string) (*model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	hub         *ws.Hub
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		hub:         hub,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, authCtx *auth.Context, req validation.BookingRequest) (*CreateBookingResponse, error) {
	normalized, err := validation.ValidateBooking(req, s.now())
	if err != nil {
		return nil, err
	}

	// Guest bookings carry no user reference.
	var userID *uuid.UUID
	if authCtx != nil {
		if parsed, err := uuid.Parse(authCtx.SubjectID); err == nil {
			userID = &parsed
		}
	}

	booking := model.Booking{
		UserID:          userID,
		BookingType:     normalized.BookingType,
		Status:          lifecycle.InitialStatus(lifecycle.KindBooking),
		BookingDate:     normalized.BookingDate,
		BookingTime:     normalized.BookingTime,
		GuestCount:      normalized.GuestCount,
		GuestName:       normalized.GuestName,
		GuestEmail:      normalized.GuestEmail,
		GuestPhone:      normalized.GuestPhone,
		SpecialRequests: normalized.SpecialRequests,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Create(txCtx, &booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"booking_type": booking.BookingType,
			"booking_date": normalized.BookingDate.Format("2006-01-02"),
			"guest_count":  booking.GuestCount,
		})
		return s.auditRepo.Log(txCtx, &model.IntakeAudit{
			UserID:     userID,
			Action:     model.ActionCreateBooking,
			EntityID:   booking.ID.String(),
			EntityName: booking.GuestName,
			Details:    string(details),
		})
	})
	if err != nil {
		subject := "guest"
		if authCtx != nil {
			subject = authCtx.SubjectID
		}
		log.Printf("booking intake failed: subject=%s op=create_booking kind=persistence err=%v", subject, err)
		return nil, err
	}

	s.hub.Notify(ws.EventBookingCreated, map[string]interface{}{
		"booking_id": booking.ID.String(),
		"status":     booking.Status,
	})

	return &CreateBookingResponse{BookingID: booking.ID, Status: booking.Status}, nil
}

// ListBookings returns the authenticated subject's bookings ordered by
// booking date, newest first.
func (s *bookingService) ListBookings(ctx context.Context, authCtx *auth.Context) ([]model.Booking, error) {
	if authCtx == nil {
		return nil, auth.ErrUnauthorized
	}
	userID, err := uuid.Parse(authCtx.SubjectID)
	if err != nil {
		return nil, auth.ErrUnauthorized
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) ListAllBookings(ctx context.Context, page, limit int) ([]model.Booking, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.bookingRepo.List(ctx, page, limit)
}

func (s *bookingService) UpdateStatus(ctx context.Context, authCtx *auth.Context, id string, status string) (*model.Booking, error) {
	if !auth.Authorize(authCtx, model.RoleAdmin) {
		return nil, ErrForbidden
	}
	return s.transition(ctx, authCtx, id, status)
}

func (s *bookingService) CancelBooking(ctx context.Context, authCtx *auth.Context, id string) (*model.Booking, error) {
	if authCtx == nil {
		return nil, auth.ErrUnauthorized
	}

	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	isOwner := booking.UserID != nil && booking.UserID.String() == authCtx.SubjectID
	if !isOwner && !auth.Authorize(authCtx, model.RoleAdmin) {
		return nil, ErrForbidden
	}

	return s.transition(ctx, authCtx, id, model.BookingStatusCancelled)
}

func (s *bookingService) transition(ctx context.Context, authCtx *auth.Context, id string, status string) (*model.Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !lifecycle.IsKnownStatus(lifecycle.KindBooking, status) {
		return nil, &lifecycle.ErrIllegalTransition{Kind: lifecycle.KindBooking, From: "?", To: status}
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	newStatus, err := lifecycle.Transition(lifecycle.KindBooking, booking.Status, status)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		affected, err := s.bookingRepo.UpdateStatusGuard(txCtx, bookingID, booking.Status, newStatus)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		if affected == 0 {
			return ErrConflict
		}

		details, _ := json.Marshal(map[string]string{"from": booking.Status, "to": newStatus})
		var actor *uuid.UUID
		if parsed, err := uuid.Parse(authCtx.SubjectID); err == nil {
			actor = &parsed
		}
		return s.auditRepo.Log(txCtx, &model.IntakeAudit{
			UserID:   actor,
			Action:   model.ActionUpdateBookingStatus,
			EntityID: booking.ID.String(),
			Details:  string(details),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			log.Printf("booking transition failed: subject=%s op=update_booking_status kind=persistence err=%v", authCtx.SubjectID, err)
		}
		return nil, err
	}

	booking.Status = newStatus
	s.hub.Notify(ws.EventBookingStatusChanged, map[string]interface{}{
		"booking_id": booking.ID.String(),
		"status":     newStatus,
	})

	return booking, nil
}
