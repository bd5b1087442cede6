package commands

import (
	"errors"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/guard"
)

var (
	ErrSendDeliveryRemindersCommandIsNotConstructed = errors.New(
		"SendDeliveryRemindersCommand must be created via NewSendDeliveryRemindersCommand constructor",
	)
)

// SendDeliveryRemindersCommand triggers reminder texts for every order that
// is out for delivery. This batch operation is run periodically by the
// scheduler.
//
// Example:
//
//	cmd := NewSendDeliveryRemindersCommand()
//	handler := NewSendDeliveryRemindersCommandHandler(uowFactory, notifier)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Reminder sweep failed: %v", err)
//	}
type SendDeliveryRemindersCommand struct {
	guard guard.ConstructorGuard
}

// NewSendDeliveryRemindersCommand creates a command to sweep out-for-delivery
// orders. This is a parameterless command.
func NewSendDeliveryRemindersCommand() SendDeliveryRemindersCommand {
	command := SendDeliveryRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendDeliveryRemindersCommandIsNotConstructed if validation fails.
func (c *SendDeliveryRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryRemindersCommandIsNotConstructed)
}
