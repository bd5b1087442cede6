package order

import (
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

// Customer identifies who placed the order. The phone number is required
// (it doubles as the lookup key for "my orders"); email is optional and
// only used for the confirmation email when present.
type Customer struct {
	name  string
	phone kernel.Phone
	email string
}

// NewCustomer creates a validated customer. Name and phone are required.
func NewCustomer(name string, phone kernel.Phone, email string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerName")
	}
	if err := phone.Validate(); err != nil {
		return Customer{}, err
	}

	return Customer{name: name, phone: phone, email: email}, nil
}

// Validate ensures the customer was created via NewCustomer.
func (c Customer) Validate() error {
	if c.name == "" {
		return errs.NewValueIsRequiredError("Customer must be created via NewCustomer")
	}
	return c.phone.Validate()
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact number.
func (c Customer) Phone() kernel.Phone {
	return c.phone
}

// Email returns the customer's email address, or "" when none was supplied.
func (c Customer) Email() string {
	return c.email
}

// HasEmail reports whether a confirmation email can be sent.
func (c Customer) HasEmail() bool {
	return c.email != ""
}
