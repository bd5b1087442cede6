// Package ports defines the contracts between the application core and the
// infrastructure adapters: persistence for order aggregates and outbound
// notification channels.
package ports

import (
	"context"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read models for the customer and operator query surface live in the query
// handlers, not here; the repository only serves commands.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Returns an errs.ObjectAlreadyExistsError when the order identifier is
	// already taken; the identifier generator only proposes candidates and
	// this constraint is the authoritative uniqueness guard.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status transition: the current status and any newly
	// appended history entries are written in the same transaction, so a
	// history entry can never be lost even if a concurrent writer wins the
	// status field.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier. When called inside
	// an active unit-of-work transaction the row is locked for update, which
	// serializes concurrent status updates to the same order.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllInStatus retrieves every order currently in the given status,
	// oldest first. Used by the delivery reminder job.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
