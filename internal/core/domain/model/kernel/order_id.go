package kernel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderIDLength is the fixed length of an order identifier. Six digits keep
// the identifier easy to read back over the phone or quote in an SMS.
const OrderIDLength = 6

// OrderID is a value object that represents the short, human-readable order
// identifier. It is derived from a monotonically increasing millisecond clock
// and is only a *candidate* identifier: the order store's uniqueness
// constraint is the authoritative guard, and callers are expected to retry
// generation on a duplicate.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID or OrderIDFromString.
//
// Example usage:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g., "483920"
type OrderID struct {
	value string
}

// NewOrderID generates a new candidate order identifier from the current
// millisecond timestamp, truncated to the last OrderIDLength digits.
// Two calls within the same millisecond yield the same candidate; the store
// write decides which one survives.
func NewOrderID() OrderID {
	return NewOrderIDAt(time.Now())
}

// NewOrderIDAt generates a candidate order identifier from the given instant.
// Exposed for deterministic construction in tests.
func NewOrderIDAt(t time.Time) OrderID {
	millis := strconv.FormatInt(t.UnixMilli(), 10)
	return OrderID{value: millis[len(millis)-OrderIDLength:]}
}

// OrderIDFromString parses an order identifier from its string
// representation. It is typically used when reconstructing orders from
// persistence or resolving identifiers supplied by clients.
// Returns an error if the string is not exactly OrderIDLength digits.
func OrderIDFromString(s string) (OrderID, error) {
	if len(s) != OrderIDLength {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not %d characters long", s, OrderIDLength))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
				fmt.Errorf("%q contains a non-digit character", s))
		}
	}
	return OrderID{value: s}, nil
}

// Validate ensures the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// String returns the identifier as it appears on receipts, emails, and SMS.
func (id OrderID) String() string {
	return id.value
}
