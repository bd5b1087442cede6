// Package queries contains read-only operations for the customer and
// operator surfaces. Queries bypass the domain aggregate and read the store
// directly, returning flat response projections shaped for serialization.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is the full order projection returned by the order queries.
type OrderResponse struct {
	OrderID         string
	Customer        CustomerResponse
	Items           []ItemResponse
	Amounts         AmountsResponse
	PickupAddress   string
	DeliveryAddress string
	PaymentMethod   string
	PaymentStatus   string
	Notes           string
	Status          string
	History         []HistoryEntryResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CustomerResponse is the customer snapshot within an order projection.
type CustomerResponse struct {
	Name  string
	Phone string
	Email string
}

// ItemResponse is one line item within an order projection.
type ItemResponse struct {
	ItemID   string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Category string
}

// AmountsResponse holds the money totals within an order projection.
type AmountsResponse struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// HistoryEntryResponse is one entry of the status audit trail within an
// order projection.
type HistoryEntryResponse struct {
	Status    string
	Timestamp time.Time
	Note      string
}

// orderColumns is the column list every order projection query selects, in
// the order scanOrderRow expects.
const orderColumns = `
	id,
	customer_name,
	customer_phone,
	customer_email,
	pickup_address,
	delivery_address,
	subtotal,
	discount,
	total,
	payment_method,
	payment_status,
	notes,
	status,
	created_at,
	updated_at
`

// scanOrderRow scans one orders row into a projection without its children.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	err := rows.Scan(
		&resp.OrderID,
		&resp.Customer.Name,
		&resp.Customer.Phone,
		&resp.Customer.Email,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.Amounts.Subtotal,
		&resp.Amounts.Discount,
		&resp.Amounts.Total,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.Notes,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	return resp, err
}

// scanOrderRows drains a result set of orders rows.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachChildren loads the line items and status history for the given
// projections in two queries and stitches them in by order id.
func attachChildren(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	index := make(map[string]*OrderResponse, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].OrderID)
		index[orders[i].OrderID] = &orders[i]
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			price,
			quantity,
			category
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, seq
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item ItemResponse
		if err = itemRows.Scan(
			&orderID,
			&item.ItemID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Category,
		); err != nil {
			return err
		}
		if resp, ok := index[orderID]; ok {
			resp.Items = append(resp.Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return err
	}

	historyRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			timestamp,
			note
		FROM order_status_history
		WHERE order_id IN ?
		ORDER BY order_id, seq
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer historyRows.Close()

	for historyRows.Next() {
		var orderID string
		var entry HistoryEntryResponse
		if err = historyRows.Scan(
			&orderID,
			&entry.Status,
			&entry.Timestamp,
			&entry.Note,
		); err != nil {
			return err
		}
		if resp, ok := index[orderID]; ok {
			resp.History = append(resp.History, entry)
		}
	}

	return historyRows.Err()
}
