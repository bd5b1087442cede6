package kernel

import (
	"strings"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates that a Phone was not properly
// initialized through NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"Phone must be created via NewPhone",
)

// Phone is a value object for a customer contact number. The number is kept
// exactly as the customer supplied it and serves as the secondary lookup key
// for orders; channel adapters apply their own destination formatting when
// they actually send to it.
type Phone struct {
	value string
}

// NewPhone creates a Phone from the customer-supplied number.
// The number must not be empty or whitespace-only; no further format
// validation is applied here.
func NewPhone(value string) (Phone, error) {
	if strings.TrimSpace(value) == "" {
		return Phone{}, errs.NewValueIsRequiredError("customerPhone")
	}
	return Phone{value: value}, nil
}

// Validate ensures the Phone was created through NewPhone.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}

// IsEqual compares two phone numbers by their stored representation.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// String returns the number as supplied by the customer.
func (p Phone) String() string {
	return p.value
}
