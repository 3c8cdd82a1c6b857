package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// validate is shared and safe for concurrent use
var validate = validator.New()

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{10,20}$`)
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
)

// FieldError is a single user-correctable violation on a named field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violation found in one record. Validation is
// whole-record: all problems are collected so the caller can report them at
// once instead of fixing fields one by one.
type Error struct {
	Violations []FieldError `json:"violations"`
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// collector accumulates field violations
type collector struct {
	violations []FieldError
}

func (c *collector) add(field, message string) {
	c.violations = append(c.violations, FieldError{Field: field, Message: message})
}

func (c *collector) result() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Error{Violations: c.violations}
}

func validEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// --- Booking ---

var bookingTypes = map[string]bool{
	"table":  true,
	"lunch":  true,
	"dinner": true,
	"event":  true,
}

// BookingRequest is the raw, untrusted booking payload
type BookingRequest struct {
	BookingType     string `json:"booking_type"`
	BookingDate     string `json:"booking_date"` // YYYY-MM-DD
	BookingTime     string `json:"booking_time"` // HH:MM or HH:MM:SS
	GuestCount      int    `json:"guest_count"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	SpecialRequests string `json:"special_requests"`
}

// Booking is the normalized, validated booking record
type Booking struct {
	BookingType     string
	BookingDate     time.Time
	BookingTime     string
	GuestCount      int
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
}

// ValidateBooking checks the payload against the booking rules. The date
// window is evaluated against now (the server clock), never a client-supplied
// time. Today and today+1 year are both accepted.
func ValidateBooking(req BookingRequest, now time.Time) (*Booking, error) {
	c := &collector{}

	bookingType := strings.TrimSpace(req.BookingType)
	if !bookingTypes[bookingType] {
		c.add("booking_type", "must be one of: table, lunch, dinner, event")
	}

	var bookingDate time.Time
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.BookingDate), now.Location())
	if err != nil {
		c.add("booking_date", "must be a valid date in YYYY-MM-DD format")
	} else {
		bookingDate = parsed
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if bookingDate.Before(today) {
			c.add("booking_date", "must not be in the past")
		} else if bookingDate.After(today.AddDate(1, 0, 0)) {
			c.add("booking_date", "must be within one year from today")
		}
	}

	bookingTime := strings.TrimSpace(req.BookingTime)
	if !timeRegex.MatchString(bookingTime) {
		c.add("booking_time", "must be a 24-hour time (HH:MM or HH:MM:SS)")
	}

	if req.GuestCount < 1 || req.GuestCount > 50 {
		c.add("guest_count", "must be between 1 and 50")
	}

	guestName := strings.TrimSpace(req.GuestName)
	if len(guestName) < 2 || len(guestName) > 100 {
		c.add("guest_name", "must be between 2 and 100 characters")
	}

	guestEmail := strings.TrimSpace(req.GuestEmail)
	if guestEmail != "" && !validEmail(guestEmail) {
		c.add("guest_email", "must be a valid email address")
	}

	guestPhone := strings.TrimSpace(req.GuestPhone)
	if !phoneRegex.MatchString(guestPhone) {
		c.add("guest_phone", "must be a valid phone number")
	}

	specialRequests := strings.TrimSpace(req.SpecialRequests)
	if len(specialRequests) > 500 {
		c.add("special_requests", "must be at most 500 characters")
	}

	if err := c.result(); err != nil {
		return nil, err
	}

	return &Booking{
		BookingType:     bookingType,
		BookingDate:     bookingDate,
		BookingTime:     bookingTime,
		GuestCount:      req.GuestCount,
		GuestName:       guestName,
		GuestEmail:      guestEmail,
		GuestPhone:      guestPhone,
		SpecialRequests: specialRequests,
	}, nil
}

// --- Order ---

// OrderItemRequest is one raw line item of an order payload
type OrderItemRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderRequest is the raw, untrusted order payload
type OrderRequest struct {
	Items               []OrderItemRequest `json:"items"`
	TotalAmount         decimal.Decimal    `json:"total_amount"`
	SpecialInstructions string             `json:"special_instructions"`
	DeliveryAddress     string             `json:"delivery_address"`
	Phone               string             `json:"phone"`
}

// OrderItem is a normalized line item with the snapshot values that will be
// persisted
type OrderItem struct {
	MenuItemID uuid.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// Order is the normalized, validated order record. Optional fields are empty
// strings, never nulls.
type Order struct {
	Items               []OrderItem
	TotalAmount         decimal.Decimal
	SpecialInstructions string
	DeliveryAddress     string
	Phone               string
}

// ValidateOrder checks the payload against the order rules. TotalAmount is
// independently validated as positive, not cross-checked against line items;
// the source of the client math is the caller's concern.
func ValidateOrder(req OrderRequest) (*Order, error) {
	c := &collector{}

	items := make([]OrderItem, 0, len(req.Items))
	if len(req.Items) == 0 {
		c.add("items", "at least one item required")
	}
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d]", i)

		menuItemID, err := uuid.Parse(strings.TrimSpace(item.ID))
		if err != nil {
			c.add(field+".id", "must be a valid item identifier")
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			c.add(field+".name", "must not be empty")
		}

		if !item.Price.IsPositive() {
			c.add(field+".price", "must be greater than zero")
		}

		if item.Quantity < 1 || item.Quantity > 99 {
			c.add(field+".quantity", "must be between 1 and 99")
		}

		items = append(items, OrderItem{
			MenuItemID: menuItemID,
			Name:       name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	if !req.TotalAmount.IsPositive() {
		c.add("total_amount", "must be greater than zero")
	}

	specialInstructions := strings.TrimSpace(req.SpecialInstructions)
	if len(specialInstructions) > 500 {
		c.add("special_instructions", "must be at most 500 characters")
	}

	deliveryAddress := strings.TrimSpace(req.DeliveryAddress)
	if len(deliveryAddress) > 300 {
		c.add("delivery_address", "must be at most 300 characters")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		c.add("phone", "must be a valid phone number")
	}

	if err := c.result(); err != nil {
		return nil, err
	}

	return &Order{
		Items:               items,
		TotalAmount:         req.TotalAmount,
		SpecialInstructions: specialInstructions,
		DeliveryAddress:     deliveryAddress,
		Phone:               phone,
	}, nil
}

// --- Contact ---

// ContactRequest is the raw contact form payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact is the normalized contact message
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ValidateContact checks the contact form rules
func ValidateContact(req ContactRequest) (*Contact, error) {
	c := &collector{}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 100 {
		c.add("name", "must be between 2 and 100 characters")
	}

	email := strings.TrimSpace(req.Email)
	if len(email) > 255 || !validEmail(email) {
		c.add("email", "must be a valid email address of at most 255 characters")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		c.add("phone", "must be a valid phone number")
	}

	subject := strings.TrimSpace(req.Subject)
	if len(subject) > 100 {
		c.add("subject", "must be at most 100 characters")
	}

	message := strings.TrimSpace(req.Message)
	if len(message) < 10 || len(message) > 1000 {
		c.add("message", "must be between 10 and 1000 characters")
	}

	if err := c.result(); err != nil {
		return nil, err
	}

	return &Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
	}, nil
}
