package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/auth"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/lifecycle"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/repository"
	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/validation"
	ws "github.com/manojsharma511/govindam-food-court-builder-sub001/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrderResponse is returned on successful intake
type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
	Status  string    `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderService turns a validated, authorized order payload into durable
// state with all-or-nothing semantics. The parent order row must never exist
// without its line items.
type OrderService interface {
	CreateOrder(ctx context.Context, authCtx *auth.Context, req validation.OrderRequest) (*CreateOrderResponse, error)
	ListOrders(ctx context.Context, authCtx *auth.Context) ([]model.Order, error)
	ListAllOrders(ctx context.Context, page, limit int) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, authCtx *auth.Context, id string, status string) (*model.Order, error)
	CancelOrder(ctx context.Context, authCtx *auth.Context, id string) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	hub       *ws.Hub
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		hub:       hub,
	}
}

// CreateOrder runs the intake protocol: validate, authorize, then persist
// parent and line items inside one transaction. Name and price are
// snapshotted from the request, never re-read from the live menu. Any
// mid-transaction failure rolls back every earlier step of the same request.
func (s *orderService) CreateOrder(ctx context.Context, authCtx *auth.Context, req validation.OrderRequest) (*CreateOrderResponse, error) {
	normalized, err := validation.ValidateOrder(req)
	if err != nil {
		return nil, err
	}

	// Ordering requires a resolved subject; guests may not order.
	if authCtx == nil {
		return nil, auth.ErrUnauthorized
	}
	userID, err := uuid.Parse(authCtx.SubjectID)
	if err != nil {
		return nil, auth.ErrUnauthorized
	}

	// Catalog existence check only. The menu never supplies prices here.
	ids := make([]uuid.UUID, 0, len(normalized.Items))
	for _, item := range normalized.Items {
		ids = append(ids, item.MenuItemID)
	}
	existing, err := s.menuRepo.ExistingIDs(ctx, ids)
	if err != nil {
		log.Printf("order intake failed: subject=%s op=create_order kind=persistence err=%v", authCtx.SubjectID, err)
		return nil, fmt.Errorf("failed to check menu items: %w", err)
	}
	var violations []validation.FieldError
	for i, item := range normalized.Items {
		if !existing[item.MenuItemID] {
			violations = append(violations, validation.FieldError{
				Field:   fmt.Sprintf("items[%d].id", i),
				Message: "unknown menu item",
			})
		}
	}
	if len(violations) > 0 {
		return nil, &validation.Error{Violations: violations}
	}

	order := model.Order{
		UserID:              &userID,
		Status:              lifecycle.InitialStatus(lifecycle.KindOrder),
		TotalAmount:         normalized.TotalAmount,
		SpecialInstructions: normalized.SpecialInstructions,
		DeliveryAddress:     normalized.DeliveryAddress,
		Phone:               normalized.Phone,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.Create(txCtx, &order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range normalized.Items {
			lineItem := model.OrderLineItem{
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				ItemName:   item.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.Price,
				TotalPrice: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			}
			if err := s.orderRepo.CreateItem(txCtx, &lineItem); err != nil {
				return fmt.Errorf("failed to create line item: %w", err)
			}
			order.Items = append(order.Items, lineItem)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"total_amount": normalized.TotalAmount,
			"item_count":   len(normalized.Items),
		})
		audit := &model.IntakeAudit{
			UserID:   &userID,
			Action:   model.ActionCreateOrder,
			EntityID: order.ID.String(),
			Details:  string(details),
		}
		if err := s.auditRepo.Log(txCtx, audit); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Printf("order intake failed: subject=%s op=create_order kind=persistence err=%v", authCtx.SubjectID, err)
		return nil, err
	}

	s.hub.Notify(ws.EventOrderCreated, map[string]interface{}{
		"order_id": order.ID.String(),
		"user_id":  userID.String(),
		"status":   order.Status,
	})

	return &CreateOrderResponse{OrderID: order.ID, Status: order.Status}, nil
}

// ListOrders returns only the authenticated subject's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, authCtx *auth.Context) ([]model.Order, error) {
	if authCtx == nil {
		return nil, auth.ErrUnauthorized
	}
	userID, err := uuid.Parse(authCtx.SubjectID)
	if err != nil {
		return nil, auth.ErrUnauthorized
	}
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderService) ListAllOrders(ctx context.Context, page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.orderRepo.List(ctx, page, limit)
}

// UpdateStatus moves an order along its state machine. Illegal transitions
// are rejected and the persisted state is left unchanged.
func (s *orderService) UpdateStatus(ctx context.Context, authCtx *auth.Context, id string, status string) (*model.Order, error) {
	if !auth.Authorize(authCtx, model.RoleAdmin) {
		return nil, ErrForbidden
	}
	return s.transition(ctx, authCtx, id, status)
}

// CancelOrder lets a customer cancel their own order while the lifecycle
// still allows it.
func (s *orderService) CancelOrder(ctx context.Context, authCtx *auth.Context, id string) (*model.Order, error) {
	if authCtx == nil {
		return nil, auth.ErrUnauthorized
	}

	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	isOwner := order.UserID != nil && order.UserID.String() == authCtx.SubjectID
	if !isOwner && !auth.Authorize(authCtx, model.RoleAdmin) {
		return nil, ErrForbidden
	}

	return s.transition(ctx, authCtx, id, model.OrderStatusCancelled)
}

func (s *orderService) transition(ctx context.Context, authCtx *auth.Context, id string, status string) (*model.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !lifecycle.IsKnownStatus(lifecycle.KindOrder, status) {
		return nil, &lifecycle.ErrIllegalTransition{Kind: lifecycle.KindOrder, From: "?", To: status}
	}

	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	newStatus, err := lifecycle.Transition(lifecycle.KindOrder, order.Status, status)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		affected, err := s.orderRepo.UpdateStatusGuard(txCtx, orderID, order.Status, newStatus)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		if affected == 0 {
			// Another request moved the order first; persisted state wins.
			return ErrConflict
		}

		details, _ := json.Marshal(map[string]string{"from": order.Status, "to": newStatus})
		var actor *uuid.UUID
		if parsed, err := uuid.Parse(authCtx.SubjectID); err == nil {
			actor = &parsed
		}
		return s.auditRepo.Log(txCtx, &model.IntakeAudit{
			UserID:   actor,
			Action:   model.ActionUpdateOrderStatus,
			EntityID: order.ID.String(),
			Details:  string(details),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			log.Printf("order transition failed: subject=%s op=update_order_status kind=persistence err=%v", authCtx.SubjectID, err)
		}
		return nil, err
	}

	order.Status = newStatus
	s.hub.Notify(ws.EventOrderStatusChanged, map[string]interface{}{
		"order_id": order.ID.String(),
		"status":   newStatus,
	})

	return order, nil
}
