package lifecycle

import (
	"fmt"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
)

// EntityKind selects which transition table applies
type EntityKind string

const (
	KindOrder   EntityKind = "order"
	KindBooking EntityKind = "booking"
)

// ErrIllegalTransition reports a rejected state change. The persisted state
// must be left unchanged when it is returned.
type ErrIllegalTransition struct {
	Kind EntityKind
	From string
	To   string
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("illegal %s transition: %s -> %s", e.Kind, e.From, e.To)
}

// orderTransitions defines the valid order state changes. The key is the
// current state, the value the set of reachable target states. Terminal
// states map to an empty slice.
var orderTransitions = map[string][]string{
	model.OrderStatusPending:   {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed: {model.OrderStatusPreparing, model.OrderStatusCancelled},
	model.OrderStatusPreparing: {model.OrderStatusReady, model.OrderStatusCancelled},
	model.OrderStatusReady:     {model.OrderStatusDelivered},
	model.OrderStatusDelivered: {},
	model.OrderStatusCancelled: {},
}

var bookingTransitions = map[string][]string{
	model.BookingStatusPending:   {model.BookingStatusConfirmed, model.BookingStatusCancelled},
	model.BookingStatusConfirmed: {model.BookingStatusCompleted, model.BookingStatusCancelled},
	model.BookingStatusCompleted: {},
	model.BookingStatusCancelled: {},
}

// InitialStatus returns the state assigned at creation time.
func InitialStatus(kind EntityKind) string {
	if kind == KindBooking {
		return model.BookingStatusPending
	}
	return model.OrderStatusPending
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(kind EntityKind, from, to string) bool {
	table := orderTransitions
	if kind == KindBooking {
		table = bookingTransitions
	}
	allowed, exists := table[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates from -> to and returns the new state, or an
// ErrIllegalTransition if the table does not permit it.
func Transition(kind EntityKind, from, to string) (string, error) {
	if !CanTransition(kind, from, to) {
		return "", &ErrIllegalTransition{Kind: kind, From: from, To: to}
	}
	return to, nil
}

// IsKnownStatus reports whether s is a state the table knows about at all,
// used to reject garbage before consulting the transition rules.
func IsKnownStatus(kind EntityKind, s string) bool {
	table := orderTransitions
	if kind == KindBooking {
		table = bookingTransitions
	}
	_, ok := table[s]
	return ok
}
