package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

func validBookingRequest() BookingRequest {
	return BookingRequest{
		BookingType:     "dinner",
		BookingDate:     "2025-06-20",
		BookingTime:     "19:30",
		GuestCount:      4,
		GuestName:       "Asha Verma",
		GuestEmail:      "asha@example.com",
		GuestPhone:      "+91 98765 43210",
		SpecialRequests: "window seat",
	}
}

func fieldNames(err error) []string {
	verr, ok := err.(*Error)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		names = append(names, v.Field)
	}
	return names
}

func TestValidateBooking_Valid(t *testing.T) {
	booking, err := ValidateBooking(validBookingRequest(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "dinner", booking.BookingType)
	assert.Equal(t, 4, booking.GuestCount)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), booking.BookingDate)
}

func TestValidateBooking_DateWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today is accepted", "2025-06-15", false},
		{"one year ahead is accepted", "2026-06-15", false},
		{"yesterday is rejected", "2025-06-14", true},
		{"beyond one year is rejected", "2026-06-16", true},
		{"garbage is rejected", "not-a-date", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			req.BookingDate = tt.date
			_, err := ValidateBooking(req, fixedNow)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, fieldNames(err), "booking_date")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateBooking_Time(t *testing.T) {
	valid := []string{"00:00", "09:05", "23:59", "19:30:45"}
	invalid := []string{"24:00", "7pm", "19:60", "19:30:61", ""}

	for _, v := range valid {
		req := validBookingRequest()
		req.BookingTime = v
		_, err := ValidateBooking(req, fixedNow)
		assert.NoError(t, err, "time %q should be accepted", v)
	}
	for _, v := range invalid {
		req := validBookingRequest()
		req.BookingTime = v
		_, err := ValidateBooking(req, fixedNow)
		require.Error(t, err, "time %q should be rejected", v)
		assert.Contains(t, fieldNames(err), "booking_time")
	}
}

func TestValidateBooking_GuestCount(t *testing.T) {
	for _, count := range []int{0, -1, 51} {
		req := validBookingRequest()
		req.GuestCount = count
		_, err := ValidateBooking(req, fixedNow)
		require.Error(t, err, "guest count %d should be rejected", count)
		assert.Contains(t, fieldNames(err), "guest_count")
	}
	for _, count := range []int{1, 50} {
		req := validBookingRequest()
		req.GuestCount = count
		_, err := ValidateBooking(req, fixedNow)
		assert.NoError(t, err, "guest count %d should be accepted", count)
	}
}

func TestValidateBooking_OptionalEmail(t *testing.T) {
	req := validBookingRequest()
	req.GuestEmail = ""
	booking, err := ValidateBooking(req, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "", booking.GuestEmail)

	req.GuestEmail = "not-an-email"
	_, err = ValidateBooking(req, fixedNow)
	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "guest_email")
}

func TestValidateBooking_Phone(t *testing.T) {
	invalid := []string{"", "12345", "phone-number-text", "+1 (222) 333-4444 ext 55555"}
	for _, v := range invalid {
		req := validBookingRequest()
		req.GuestPhone = v
		_, err := ValidateBooking(req, fixedNow)
		require.Error(t, err, "phone %q should be rejected", v)
	}

	valid := []string{"0123456789", "+1 (222) 333-4444", "98765-43210"}
	for _, v := range valid {
		req := validBookingRequest()
		req.GuestPhone = v
		_, err := ValidateBooking(req, fixedNow)
		assert.NoError(t, err, "phone %q should be accepted", v)
	}
}

func TestValidateBooking_CollectsAllViolations(t *testing.T) {
	req := BookingRequest{
		BookingType: "brunch",
		BookingDate: "1999-01-01",
		BookingTime: "25:00",
		GuestCount:  0,
		GuestName:   "A",
		GuestPhone:  "x",
	}
	_, err := ValidateBooking(req, fixedNow)
	require.Error(t, err)

	fields := fieldNames(err)
	assert.GreaterOrEqual(t, len(fields), 6)
	assert.Contains(t, fields, "booking_type")
	assert.Contains(t, fields, "booking_date")
	assert.Contains(t, fields, "booking_time")
	assert.Contains(t, fields, "guest_count")
	assert.Contains(t, fields, "guest_name")
	assert.Contains(t, fields, "guest_phone")
}

func validOrderRequest() OrderRequest {
	return OrderRequest{
		Items: []OrderItemRequest{
			{
				ID:       uuid.NewString(),
				Name:     "Paneer Tikka",
				Price:    decimal.NewFromFloat(12.50),
				Quantity: 2,
			},
		},
		TotalAmount: decimal.NewFromFloat(25.00),
		Phone:       "0123456789",
	}
}

func TestValidateOrder_Valid(t *testing.T) {
	order, err := ValidateOrder(validOrderRequest())
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "", order.SpecialInstructions, "absent optionals normalize to empty string")
	assert.Equal(t, "", order.DeliveryAddress)
}

func TestValidateOrder_EmptyItems(t *testing.T) {
	req := validOrderRequest()
	req.Items = nil
	_, err := ValidateOrder(req)
	require.Error(t, err)

	verr := err.(*Error)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "items", verr.Violations[0].Field)
	assert.Equal(t, "at least one item required", verr.Violations[0].Message)
}

func TestValidateOrder_ItemRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OrderItemRequest)
		field  string
	}{
		{"bad identifier", func(i *OrderItemRequest) { i.ID = "nope" }, "items[0].id"},
		{"empty name", func(i *OrderItemRequest) { i.Name = "  " }, "items[0].name"},
		{"zero price", func(i *OrderItemRequest) { i.Price = decimal.Zero }, "items[0].price"},
		{"negative price", func(i *OrderItemRequest) { i.Price = decimal.NewFromInt(-1) }, "items[0].price"},
		{"zero quantity", func(i *OrderItemRequest) { i.Quantity = 0 }, "items[0].quantity"},
		{"quantity above 99", func(i *OrderItemRequest) { i.Quantity = 100 }, "items[0].quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(&req.Items[0])
			_, err := ValidateOrder(req)
			require.Error(t, err)
			assert.Contains(t, fieldNames(err), tt.field)
		})
	}
}

func TestValidateOrder_TotalAmount(t *testing.T) {
	req := validOrderRequest()
	req.TotalAmount = decimal.Zero
	_, err := ValidateOrder(req)
	require.Error(t, err)
	assert.Contains(t, fieldNames(err), "total_amount")

	// Total is validated for positivity only, never cross-checked against items.
	req = validOrderRequest()
	req.TotalAmount = decimal.NewFromInt(9999)
	_, err = ValidateOrder(req)
	assert.NoError(t, err)
}

func TestValidateContact(t *testing.T) {
	valid := ContactRequest{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Message: "I would like to ask about catering options.",
	}
	contact, err := ValidateContact(valid)
	require.NoError(t, err)
	assert.Equal(t, "", contact.Subject)

	invalid := ContactRequest{
		Name:    "A",
		Email:   "not-an-email",
		Message: "short",
	}
	_, err = ValidateContact(invalid)
	require.Error(t, err)
	fields := fieldNames(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
}
