package queries

import (
	"errors"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// CustomerOrdersLimit caps how many orders the customer lookup returns.
// Customers only ever need their recent orders; the operator surface pages
// through the full set instead.
const CustomerOrdersLimit = 20

// GetCustomerOrdersQuery retrieves a customer's recent orders by phone
// number, newest first.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query to retrieve a customer's recent
// orders. Validates that the phone is constructed.
func NewGetCustomerOrdersQuery(phone kernel.Phone) (GetCustomerOrdersQuery, error) {
	query := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPhone(phone); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Phone returns the customer phone number to look up.
func (q GetCustomerOrdersQuery) Phone() kernel.Phone {
	return q.phone
}

func (q *GetCustomerOrdersQuery) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	q.phone = phone
	return nil
}
