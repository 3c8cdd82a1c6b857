package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order represents a customer food order together with its line items.
// Line items are owned exclusively by the order: created with it, deleted
// only by cascading the order's deletion.
type Order struct {
	ID                  uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID              *uuid.UUID      `gorm:"type:uuid;index" json:"user_id"` // SET NULL on user deletion, history is retained
	User                *User           `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Status              string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	SpecialInstructions string          `gorm:"type:varchar(500)" json:"special_instructions"`
	DeliveryAddress     string          `gorm:"type:varchar(300)" json:"delivery_address"`
	Phone               string          `gorm:"type:varchar(20)" json:"phone"`
	Items               []OrderLineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt           time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// OrderLineItem is a priced, quantified snapshot of one menu item within an
// order. Name and unit price are copied from the request at order time so
// later menu edits never alter historical orders.
type OrderLineItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null" json:"menu_item_id"`
	ItemName   string          `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity   int             `gorm:"type:int;not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
}
