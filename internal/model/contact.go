package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage stores a submission from the public contact form
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Subject   string    `gorm:"type:varchar(100)" json:"subject"`
	Message   string    `gorm:"type:varchar(1000);not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
