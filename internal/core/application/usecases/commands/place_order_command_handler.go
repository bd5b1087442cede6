package commands

import (
	"context"
	"errors"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

// maxOrderIDAttempts bounds how many identifier candidates are tried when
// the store reports a collision. Identifiers are time-derived, so a retry a
// moment later almost always lands on a free one.
const maxOrderIDAttempts = 3

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates the order in "pending" status with its first history entry, then
// fans out the order-placed notifications once the write is committed.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewPlaceOrderCommand(customer, items, amounts,
//	    "12 Mall Road", "", order.PaymentMethodCOD, order.PaymentReference{}, "")
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.ID())
type PlaceOrderCommandHandler struct {
	uowFactory UnitOfWorkFactory
	notifier   ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UnitOfWorkFactory for transactional persistence and a Notifier
// for the post-commit fan-out.
func NewPlaceOrderCommandHandler(
	uowFactory UnitOfWorkFactory,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command and returns the placed order.
//
// The identifier generator only proposes candidates; the store's uniqueness
// constraint is authoritative. On a collision the whole transaction is
// retried with a fresh candidate, up to maxOrderIDAttempts times.
//
// Notifications are dispatched strictly after the commit, and their
// outcomes never affect the result: a placed order is placed no matter what
// the channels do.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var placed *order.Order
	var err error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		placed, err = h.placeOnce(ctx, cmd)
		if err == nil {
			break
		}

		var exists *errs.ObjectAlreadyExistsError
		if !errors.As(err, &exists) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	h.notifier.OrderCreated(ctx, placed)

	return placed, nil
}

// placeOnce runs one full placement transaction with a fresh identifier
// candidate.
func (h *PlaceOrderCommandHandler) placeOnce(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (*order.Order, error) {
	newOrder, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.Items(),
		cmd.Amounts(),
		cmd.Customer(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PaymentMethod(),
		cmd.PaymentRef(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
