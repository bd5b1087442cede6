package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's recent orders from
// the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// lookups. Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns up to CustomerOrdersLimit orders for
// the phone number, newest first; an unknown phone yields an empty slice,
// not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_phone = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.Phone().String(), CustomerOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachChildren(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
