package notifications_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/notifications"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
)

// recordingEmail records calls and returns the configured errors.
type recordingEmail struct {
	mu sync.Mutex

	confirmationErr   error
	confirmationPanic bool
	alertErr          error

	confirmations int
	alerts        int
}

func (c *recordingEmail) OrderConfirmation(_ context.Context, _ *order.Order) error {
	c.mu.Lock()
	c.confirmations++
	c.mu.Unlock()
	if c.confirmationPanic {
		panic("smtp client exploded")
	}
	return c.confirmationErr
}

func (c *recordingEmail) OperatorAlert(_ context.Context, _ *order.Order) error {
	c.mu.Lock()
	c.alerts++
	c.mu.Unlock()
	return c.alertErr
}

// recordingSMS records calls and returns the configured errors.
type recordingSMS struct {
	mu sync.Mutex

	err error

	confirmations int
	alerts        int
	statusUpdates int
	reminders     int
}

func (c *recordingSMS) OrderConfirmation(_ context.Context, _ *order.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmations++
	return c.err
}

func (c *recordingSMS) OperatorAlert(_ context.Context, _ *order.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts++
	return c.err
}

func (c *recordingSMS) StatusUpdate(_ context.Context, _ *order.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statusUpdates++
	return c.err
}

func (c *recordingSMS) DeliveryReminder(_ context.Context, _ *order.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reminders++
	return c.err
}

func testOrder(t *testing.T, email string) *order.Order {
	t.Helper()

	item, err := order.NewItem("shirt-wash", "Shirt (Wash & Iron)", decimal.NewFromInt(30), 2, "wash")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(decimal.NewFromInt(60), decimal.Zero, decimal.NewFromInt(60))
	require.NoError(t, err)
	phone, err := kernel.NewPhone("9999999999")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Asha Negi", phone, email)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewOrderID(), []order.Item{item}, amounts, customer,
		"12 Mall Road, Dehradun", "", order.PaymentMethodCOD, order.PaymentReference{}, "")
	require.NoError(t, err)
	return o
}

func newOrchestrator(email ports.EmailChannel, sms ports.SMSChannel) *notifications.Orchestrator {
	return notifications.NewOrchestrator(email, sms, time.Second, slog.Default())
}

func resultFor(results []ports.NotificationResult, channel, kind string) (ports.NotificationResult, bool) {
	for _, r := range results {
		if r.Channel == channel && r.Kind == kind {
			return r, true
		}
	}
	return ports.NotificationResult{}, false
}

func TestOrchestrator_OrderCreated(t *testing.T) {
	t.Run("dispatches all four attempts when customer has email", func(t *testing.T) {
		email := &recordingEmail{}
		sms := &recordingSMS{}

		results := newOrchestrator(email, sms).OrderCreated(t.Context(), testOrder(t, "asha@example.com"))

		require.Len(t, results, 4)
		assert.Equal(t, 1, email.confirmations)
		assert.Equal(t, 1, email.alerts)
		assert.Equal(t, 1, sms.confirmations)
		assert.Equal(t, 1, sms.alerts)
		for _, r := range results {
			assert.True(t, r.Sent(), "%s/%s should have been sent", r.Channel, r.Kind)
		}
	})

	t.Run("skips customer email when no address on file", func(t *testing.T) {
		email := &recordingEmail{}
		sms := &recordingSMS{}

		results := newOrchestrator(email, sms).OrderCreated(t.Context(), testOrder(t, ""))

		require.Len(t, results, 3)
		assert.Equal(t, 0, email.confirmations)
		assert.Equal(t, 1, email.alerts)
		_, found := resultFor(results, ports.ChannelEmail, ports.KindOrderConfirmation)
		assert.False(t, found)
	})

	t.Run("email failure does not prevent sms attempts", func(t *testing.T) {
		sendErr := errors.New("smtp: connection refused")
		email := &recordingEmail{confirmationErr: sendErr, alertErr: sendErr}
		sms := &recordingSMS{}

		results := newOrchestrator(email, sms).OrderCreated(t.Context(), testOrder(t, "asha@example.com"))

		require.Len(t, results, 4)
		assert.Equal(t, 1, sms.confirmations)
		assert.Equal(t, 1, sms.alerts)

		emailResult, found := resultFor(results, ports.ChannelEmail, ports.KindOrderConfirmation)
		require.True(t, found)
		assert.False(t, emailResult.Sent())
		assert.ErrorIs(t, emailResult.Err, sendErr)

		smsResult, found := resultFor(results, ports.ChannelSMS, ports.KindOrderConfirmation)
		require.True(t, found)
		assert.True(t, smsResult.Sent())
	})

	t.Run("a panicking channel is contained and recorded", func(t *testing.T) {
		email := &recordingEmail{confirmationPanic: true}
		sms := &recordingSMS{}

		var results []ports.NotificationResult
		require.NotPanics(t, func() {
			results = newOrchestrator(email, sms).OrderCreated(t.Context(), testOrder(t, "asha@example.com"))
		})

		require.Len(t, results, 4)
		emailResult, found := resultFor(results, ports.ChannelEmail, ports.KindOrderConfirmation)
		require.True(t, found)
		require.Error(t, emailResult.Err)
		assert.Contains(t, emailResult.Err.Error(), "channel panicked")

		// Siblings still completed.
		assert.Equal(t, 1, sms.confirmations)
		assert.Equal(t, 1, sms.alerts)
	})
}

func TestOrchestrator_OrderStatusChanged(t *testing.T) {
	t.Run("dispatches exactly one sms attempt", func(t *testing.T) {
		email := &recordingEmail{}
		sms := &recordingSMS{}

		results := newOrchestrator(email, sms).OrderStatusChanged(t.Context(), testOrder(t, "asha@example.com"))

		require.Len(t, results, 1)
		assert.Equal(t, ports.ChannelSMS, results[0].Channel)
		assert.Equal(t, ports.KindStatusUpdate, results[0].Kind)
		assert.Equal(t, 1, sms.statusUpdates)
		assert.Equal(t, 0, email.confirmations)
		assert.Equal(t, 0, email.alerts)
	})

	t.Run("delivery reminder dispatches exactly one sms attempt", func(t *testing.T) {
		sms := &recordingSMS{}

		results := newOrchestrator(&recordingEmail{}, sms).OrderDueForDelivery(t.Context(), testOrder(t, ""))

		require.Len(t, results, 1)
		assert.Equal(t, ports.KindDeliveryReminder, results[0].Kind)
		assert.Equal(t, 1, sms.reminders)
	})

	t.Run("sms failure is recorded, not raised", func(t *testing.T) {
		sms := &recordingSMS{err: errors.New("twilio: 429 too many requests")}

		results := newOrchestrator(&recordingEmail{}, sms).OrderStatusChanged(t.Context(), testOrder(t, ""))

		require.Len(t, results, 1)
		assert.False(t, results[0].Sent())
		require.Error(t, results[0].Err)
	})
}
