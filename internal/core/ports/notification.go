package ports

import (
	"context"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
)

// Channel names reported in notification results and logs.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Message kinds reported in notification results and logs.
const (
	KindOrderConfirmation = "order_confirmation"
	KindOperatorAlert     = "operator_alert"
	KindStatusUpdate      = "status_update"
	KindDeliveryReminder  = "delivery_reminder"
)

// EmailChannel sends templated email messages for order events. Each method
// is one send attempt; the channel owns its own templating and addressing.
type EmailChannel interface {
	// OrderConfirmation sends the HTML confirmation to the customer.
	// Callers must check Customer().HasEmail() first.
	OrderConfirmation(ctx context.Context, o *order.Order) error

	// OperatorAlert sends the new-order alert to the operator mailbox.
	OperatorAlert(ctx context.Context, o *order.Order) error
}

// SMSChannel sends templated SMS messages for order events. Each method is
// one send attempt; the channel owns message text and destination
// normalization.
type SMSChannel interface {
	// OrderConfirmation texts the customer that the order was received.
	OrderConfirmation(ctx context.Context, o *order.Order) error

	// OperatorAlert texts the operator about a new order.
	OperatorAlert(ctx context.Context, o *order.Order) error

	// StatusUpdate texts the customer about a fulfillment status change.
	StatusUpdate(ctx context.Context, o *order.Order) error

	// DeliveryReminder texts the customer that delivery is imminent.
	DeliveryReminder(ctx context.Context, o *order.Order) error
}

// NotificationResult is the recorded outcome of one send attempt on one
// channel. A failed attempt carries its error; it is never retried.
type NotificationResult struct {
	Channel string
	Kind    string
	Err     error
}

// Sent reports whether the attempt succeeded.
func (r NotificationResult) Sent() bool {
	return r.Err == nil
}

// Notifier fans an order event out across the notification channels.
// Implementations must isolate channel failures: the returned results
// record every attempt, and no failure ever surfaces as an error to the
// triggering business operation.
type Notifier interface {
	// OrderCreated dispatches the order-placed notifications: customer
	// email (when an address is on file), operator email, customer SMS,
	// and operator SMS.
	OrderCreated(ctx context.Context, o *order.Order) []NotificationResult

	// OrderStatusChanged dispatches the status-change notification:
	// customer SMS.
	OrderStatusChanged(ctx context.Context, o *order.Order) []NotificationResult

	// OrderDueForDelivery dispatches the delivery reminder: customer SMS.
	OrderDueForDelivery(ctx context.Context, o *order.Order) []NotificationResult
}
