package repository

import (
	"context"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuRepository is the read-mostly catalog. Orders consult it for item
// existence only; prices are snapshotted client-side and validated for
// positivity, never re-read here during intake.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	List(ctx context.Context, page, limit int) ([]model.MenuItem, int64, error)
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	return GetDB(ctx, r.db).Create(item).Error
}

func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := GetDB(ctx, r.db).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistingIDs returns which of the given ids exist in the catalog, in a
// single query
func (r *menuRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	var found []uuid.UUID
	if err := GetDB(ctx, r.db).
		Model(&model.MenuItem{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	existing := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *menuRepository) List(ctx context.Context, page, limit int) ([]model.MenuItem, int64, error) {
	var items []model.MenuItem
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.MenuItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.
		Order("category, name").
		Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	return GetDB(ctx, r.db).Save(item).Error
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.MenuItem{}).Error
}
