package commands

import (
	"context"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"
)

// SendDeliveryRemindersCommandHandler sweeps the orders currently out for
// delivery and texts each customer a reminder. The sweep only reads; no
// order state changes, so a failed reminder is simply retried on the next
// scheduled run.
type SendDeliveryRemindersCommandHandler struct {
	uowFactory UnitOfWorkFactory
	notifier   ports.Notifier
}

// NewSendDeliveryRemindersCommandHandler creates a handler for the reminder
// sweep.
func NewSendDeliveryRemindersCommandHandler(
	uowFactory UnitOfWorkFactory,
	notifier ports.Notifier,
) SendDeliveryRemindersCommandHandler {
	return SendDeliveryRemindersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reminder sweep command.
// Loads every order in "out_for_delivery" status inside a read transaction,
// then dispatches the reminders after the transaction ends. Channel
// failures are recorded by the notifier and never fail the sweep.
func (h *SendDeliveryRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendDeliveryRemindersCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInStatus(ctx, order.StatusOutForDelivery)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range orders {
		h.notifier.OrderDueForDelivery(ctx, o)
	}

	return nil
}
