package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/repository"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/validation"
)

// ContactService handles public contact form submissions
type ContactService interface {
	Submit(ctx context.Context, req validation.ContactRequest) (*model.ContactMessage, error)
	ListMessages(ctx context.Context, page, limit int) ([]model.ContactMessage, int64, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
}

func NewContactService(
	contactRepo repository.ContactRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) ContactService {
	return &contactService{contactRepo: contactRepo, auditRepo: auditRepo, txManager: txManager}
}

func (s *contactService) Submit(ctx context.Context, req validation.ContactRequest) (*model.ContactMessage, error) {
	normalized, err := validation.ValidateContact(req)
	if err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Phone:   normalized.Phone,
		Subject: normalized.Subject,
		Message: normalized.Message,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contactRepo.Create(txCtx, msg); err != nil {
			return fmt.Errorf("failed to save contact message: %w", err)
		}

		details, _ := json.Marshal(map[string]string{"email": msg.Email, "subject": msg.Subject})
		return s.auditRepo.Log(txCtx, &model.IntakeAudit{
			Action:     model.ActionContactMessage,
			EntityID:   msg.ID.String(),
			EntityName: msg.Name,
			Details:    string(details),
		})
	})
	if err != nil {
		log.Printf("contact intake failed: subject=anonymous op=contact_message kind=persistence err=%v", err)
		return nil, err
	}

	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context, page, limit int) ([]model.ContactMessage, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.contactRepo.List(ctx, page, limit)
}
