package commands

import (
	"context"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles the business logic for status
// transitions. Loads the order under a row lock, applies the transition
// through the aggregate so the history entry is appended atomically with the
// status change, and texts the customer once the write is committed.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UnitOfWorkFactory
	notifier   ports.Notifier
	policy     order.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// The policy decides whether transitions are checked against the
// fulfillment chain or any known status is accepted.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UnitOfWorkFactory,
	notifier ports.Notifier,
	policy order.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     policy,
	}
}

// Handle processes the status update command and returns the updated order.
// The load and the write happen inside one transaction with the order row
// locked, so two concurrent updates to the same order serialize and both
// history entries survive. The customer SMS goes out strictly after the
// commit and never affects the result.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	updated, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = updated.ChangeStatus(cmd.Status(), cmd.Note(), h.policy); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderStatusChanged(ctx, updated)

	return updated, nil
}
