// Package notifications fans order events out across the outbound channels.
//
// The dispatch contract is fire-and-isolate: every applicable send attempt
// runs in its own goroutine with its own timeout, a failing or panicking
// channel is caught and recorded in that attempt's result, and no outcome
// ever propagates as an error to the business operation that triggered the
// event. The order/status write that preceded the dispatch is already
// committed and stays committed whatever the channels do.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single channel send attempt.
const DefaultTimeout = 10 * time.Second

// Orchestrator composes channel calls for order events. Channels are
// injected; there is no process-wide client state.
type Orchestrator struct {
	email   ports.EmailChannel
	sms     ports.SMSChannel
	timeout time.Duration
	logger  *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given channels.
// A non-positive timeout falls back to DefaultTimeout.
func NewOrchestrator(
	email ports.EmailChannel,
	sms ports.SMSChannel,
	timeout time.Duration,
	logger *slog.Logger,
) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Orchestrator{
		email:   email,
		sms:     sms,
		timeout: timeout,
		logger:  logger.With("component", "notification_orchestrator"),
	}
}

// attempt is one planned send on one channel.
type attempt struct {
	channel string
	kind    string
	send    func(ctx context.Context) error
}

// OrderCreated dispatches the order-placed notifications: customer email
// (only when an address is on file), operator email, customer SMS, and
// operator SMS. All attempts run concurrently; one result per attempt.
func (d *Orchestrator) OrderCreated(ctx context.Context, o *order.Order) []ports.NotificationResult {
	attempts := make([]attempt, 0, 4)

	if o.Customer().HasEmail() {
		attempts = append(attempts, attempt{
			channel: ports.ChannelEmail,
			kind:    ports.KindOrderConfirmation,
			send:    func(ctx context.Context) error { return d.email.OrderConfirmation(ctx, o) },
		})
	}

	attempts = append(attempts,
		attempt{
			channel: ports.ChannelEmail,
			kind:    ports.KindOperatorAlert,
			send:    func(ctx context.Context) error { return d.email.OperatorAlert(ctx, o) },
		},
		attempt{
			channel: ports.ChannelSMS,
			kind:    ports.KindOrderConfirmation,
			send:    func(ctx context.Context) error { return d.sms.OrderConfirmation(ctx, o) },
		},
		attempt{
			channel: ports.ChannelSMS,
			kind:    ports.KindOperatorAlert,
			send:    func(ctx context.Context) error { return d.sms.OperatorAlert(ctx, o) },
		},
	)

	return d.dispatch(ctx, o, attempts)
}

// OrderStatusChanged dispatches the status-change notification: one SMS to
// the customer.
func (d *Orchestrator) OrderStatusChanged(ctx context.Context, o *order.Order) []ports.NotificationResult {
	return d.dispatch(ctx, o, []attempt{{
		channel: ports.ChannelSMS,
		kind:    ports.KindStatusUpdate,
		send:    func(ctx context.Context) error { return d.sms.StatusUpdate(ctx, o) },
	}})
}

// OrderDueForDelivery dispatches the delivery reminder: one SMS to the
// customer.
func (d *Orchestrator) OrderDueForDelivery(ctx context.Context, o *order.Order) []ports.NotificationResult {
	return d.dispatch(ctx, o, []attempt{{
		channel: ports.ChannelSMS,
		kind:    ports.KindDeliveryReminder,
		send:    func(ctx context.Context) error { return d.sms.DeliveryReminder(ctx, o) },
	}})
}

// dispatch runs every attempt concurrently and joins them. Each attempt gets
// its own timeout context and panic guard, so one slow or broken channel
// cannot delay or poison the others.
func (d *Orchestrator) dispatch(
	ctx context.Context,
	o *order.Order,
	attempts []attempt,
) []ports.NotificationResult {
	dispatchID := uuid.New().String()
	results := make([]ports.NotificationResult, len(attempts))

	var wg sync.WaitGroup
	for i, a := range attempts {
		wg.Add(1)
		go func(i int, a attempt) {
			defer wg.Done()

			err := d.run(ctx, a)
			results[i] = ports.NotificationResult{Channel: a.channel, Kind: a.kind, Err: err}

			if err != nil {
				d.logger.ErrorContext(ctx, "Notification send failed",
					"channel", a.channel,
					"kind", a.kind,
					"order_id", o.ID().String(),
					"dispatch_id", dispatchID,
					"error", err,
				)
				return
			}

			d.logger.InfoContext(ctx, "Notification sent",
				"channel", a.channel,
				"kind", a.kind,
				"order_id", o.ID().String(),
				"dispatch_id", dispatchID,
			)
		}(i, a)
	}
	wg.Wait()

	return results
}

// run executes one attempt under its own timeout, converting a panic in the
// channel into an ordinary error.
func (d *Orchestrator) run(ctx context.Context, a attempt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	return a.send(ctx)
}
