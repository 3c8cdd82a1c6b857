package model

import (
	"time"

	"github.com/google/uuid"
)

// Intake audit actions
const (
	ActionRegisterUser        = "REGISTER_USER"
	ActionCreateOrder         = "CREATE_ORDER"
	ActionUpdateOrderStatus   = "UPDATE_ORDER_STATUS"
	ActionCreateBooking       = "CREATE_BOOKING"
	ActionUpdateBookingStatus = "UPDATE_BOOKING_STATUS"
	ActionContactMessage      = "CONTACT_MESSAGE"
)

// IntakeAudit tracks Who, What, and When for every intake operation
type IntakeAudit struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for guest submissions
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string     `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
