package repository

import (
	"context"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"

	"gorm.io/gorm"
)

// ContactRepository defines persistence for contact form submissions
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, page, limit int) ([]model.ContactMessage, int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return GetDB(ctx, r.db).Create(msg).Error
}

func (r *contactRepository) List(ctx context.Context, page, limit int) ([]model.ContactMessage, int64, error) {
	var msgs []model.ContactMessage
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&msgs).Error; err != nil {
		return nil, 0, err
	}

	return msgs, total, nil
}
