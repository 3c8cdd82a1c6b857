package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DTOs
type MenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category"`
	Available   *bool           `json:"available"`
}

// MenuService is the catalog surface: public listing plus single-row admin
// CRUD. Intake never reads prices from here.
type MenuService interface {
	ListMenu(ctx context.Context, page, limit int) ([]model.MenuItem, int64, error)
	CreateItem(ctx context.Context, req MenuItemRequest) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, id string, req MenuItemRequest) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListMenu(ctx context.Context, page, limit int) ([]model.MenuItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	return s.menuRepo.List(ctx, page, limit)
}

func (s *menuService) CreateItem(ctx context.Context, req MenuItemRequest) (*model.MenuItem, error) {
	if !req.Price.IsPositive() {
		return nil, errors.New("price must be greater than zero")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   available,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, id string, req MenuItemRequest) (*model.MenuItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !req.Price.IsPositive() {
		return nil, errors.New("price must be greater than zero")
	}

	item, err := s.menuRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	return s.menuRepo.Delete(ctx, itemID)
}
