package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking type constants
const (
	BookingTypeTable  = "table"
	BookingTypeLunch  = "lunch"
	BookingTypeDinner = "dinner"
	BookingTypeEvent  = "event"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a table/event reservation. Guests may book without an
// account, so UserID is nullable.
type Booking struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User            *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	BookingType     string     `gorm:"type:varchar(20);not null" json:"booking_type"` // table, lunch, dinner, event
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	BookingDate     time.Time  `gorm:"type:date;not null;index" json:"booking_date"`
	BookingTime     string     `gorm:"type:varchar(8);not null" json:"booking_time"` // HH:MM or HH:MM:SS
	GuestCount      int        `gorm:"type:int;not null" json:"guest_count"`
	GuestName       string     `gorm:"type:varchar(100);not null" json:"guest_name"`
	GuestEmail      string     `gorm:"type:varchar(255)" json:"guest_email"`
	GuestPhone      string     `gorm:"type:varchar(20);not null" json:"guest_phone"`
	SpecialRequests string     `gorm:"type:varchar(500)" json:"special_requests"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
