package order

import (
	"strings"

	"github.com/go-faster/errors"
)

// Status is the fulfilment lifecycle of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
	StatusRefunded   Status = "refunded"
)

// forward is the happy path; an order only moves towards its end.
var forward = []Status{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
}

// ParseStatus validates a raw status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned, StatusRefunded:
		return st, nil
	default:
		return "", errors.Errorf("unknown order status: %q", s)
	}
}

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

// Qualifying reports whether the order counts as a past purchase for
// first-purchase coupons.
func (s Status) Qualifying() bool {
	return s == StatusConfirmed || s == StatusProcessing || s == StatusDelivered
}

func rank(s Status) int {
	for i, f := range forward {
		if f == s {
			return i
		}
	}
	return -1
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	if from == to || from.Terminal() {
		return false
	}
	if from == StatusReturned {
		return to == StatusRefunded
	}
	switch to {
	case StatusCancelled, StatusReturned, StatusRefunded:
		return true
	}
	fi, ti := rank(from), rank(to)
	return fi >= 0 && ti > fi
}

// TransitionError reports a rejected status change.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return "cannot move order from " + string(e.From) + " to " + string(e.To)
}
