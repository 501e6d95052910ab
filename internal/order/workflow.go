package order

import (
	"errors"
	"fmt"
	"strings"
)

// Status is an order's fulfilment stage.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
)

var (
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// transitions lists, per current status, the statuses an order may move to.
// Fulfilment only moves forward (skipping SHIPPED is allowed); DELIVERED is
// terminal. Self-transitions are accepted as no-ops in canTransition.
var transitions = map[Status][]Status{
	StatusPending:   {StatusShipped, StatusDelivered},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func canTransition(from, to Status) bool {
	if from == to {
		return true
	}
	// rows written before status validation existed may hold arbitrary
	// values; let operators repair those by moving to any valid status
	if !from.Valid() {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// UpdateRequest is a partial order mutation. Nil fields are absent from the
// request and leave the stored value untouched.
type UpdateRequest struct {
	Status      *Status `json:"status,omitempty"`
	TrackingURL *string `json:"trackingUrl,omitempty"`
}

// Apply validates req against the transition table and returns the merged
// order to persist. A tracking-only request (no status field) is accepted
// whatever the current status, so an operator can attach a tracking link
// before formally marking an order SHIPPED. When both fields are present
// they are merged into one mutation and persisted together.
func (req UpdateRequest) Apply(current Order) (Order, error) {
	next := current
	if req.Status != nil {
		to := *req.Status
		if !to.Valid() {
			return Order{}, fmt.Errorf("%w: %q", ErrUnknownStatus, string(to))
		}
		if !canTransition(current.Status, to) {
			return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
		}
		next.Status = to
	}
	if req.TrackingURL != nil {
		u := strings.TrimSpace(*req.TrackingURL)
		next.TrackingURL = &u
	}
	return next, nil
}
