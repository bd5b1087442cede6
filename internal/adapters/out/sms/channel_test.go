package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	err    error
	params []*twilioapi.CreateMessageParams
}

func (f *fakeMessageCreator) CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &twilioapi.ApiV2010Message{}, nil
}

func testConfig() Config {
	return Config{
		FromNumber:    "+15005550006",
		OperatorPhone: "9811111111",
		BusinessName:  "Devbhoomi Drycleaner",
		BusinessPhone: "+919876500000",
		WebsiteURL:    "https://devbhoomidrycleaner.example",
	}
}

func testOrder(t *testing.T, method order.PaymentMethod, ref order.PaymentReference) *order.Order {
	t.Helper()

	item, err := order.NewItem("kurta-press", "Kurta (Press)", decimal.NewFromInt(20), 3, "press")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(decimal.NewFromInt(60), decimal.Zero, decimal.NewFromInt(60))
	require.NoError(t, err)
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Rohan Bisht", phone, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewOrderID(), []order.Item{item}, amounts, customer,
		"7 Rajpur Road, Dehradun", "", method, ref, "")
	require.NoError(t, err)
	return o
}

func TestNewTwilioChannel_Validation(t *testing.T) {
	t.Run("requires from number", func(t *testing.T) {
		cfg := testConfig()
		cfg.FromNumber = ""

		_, err := newTwilioChannel(&fakeMessageCreator{}, cfg)

		assert.ErrorIs(t, err, ErrFromNumberIsRequired)
	})

	t.Run("requires operator phone", func(t *testing.T) {
		cfg := testConfig()
		cfg.OperatorPhone = ""

		_, err := newTwilioChannel(&fakeMessageCreator{}, cfg)

		assert.ErrorIs(t, err, ErrOperatorPhoneIsRequired)
	})

	t.Run("requires message creator", func(t *testing.T) {
		_, err := newTwilioChannel(nil, testConfig())

		assert.ErrorIs(t, err, ErrMessageCreatorIsRequired)
	})
}

func TestTwilioChannel_OrderConfirmation(t *testing.T) {
	creator := &fakeMessageCreator{}
	channel, err := newTwilioChannel(creator, testConfig())
	require.NoError(t, err)
	o := testOrder(t, order.PaymentMethodCOD, order.PaymentReference{})

	require.NoError(t, channel.OrderConfirmation(t.Context(), o))

	require.Len(t, creator.params, 1)
	params := creator.params[0]
	assert.Equal(t, "+919876543210", *params.To)
	assert.Equal(t, "+15005550006", *params.From)
	assert.Contains(t, *params.Body, "Order Confirmed!")
	assert.Contains(t, *params.Body, "Hello Rohan Bisht")
	assert.Contains(t, *params.Body, o.ID().String())
	assert.Contains(t, *params.Body, "Total: Rs 60.00")
	assert.Contains(t, *params.Body, "Cash on Delivery")
	assert.Contains(t, *params.Body, "Devbhoomi Drycleaner")
}

func TestTwilioChannel_OperatorAlert(t *testing.T) {
	creator := &fakeMessageCreator{}
	channel, err := newTwilioChannel(creator, testConfig())
	require.NoError(t, err)
	o := testOrder(t, order.PaymentMethodCOD, order.PaymentReference{})

	require.NoError(t, channel.OperatorAlert(t.Context(), o))

	require.Len(t, creator.params, 1)
	params := creator.params[0]
	assert.Equal(t, "+919811111111", *params.To)
	assert.Contains(t, *params.Body, "NEW ORDER!")
	assert.Contains(t, *params.Body, "Customer: Rohan Bisht")
	assert.Contains(t, *params.Body, "Phone: 9876543210")
}

func TestTwilioChannel_StatusUpdate(t *testing.T) {
	t.Run("known status uses its message line", func(t *testing.T) {
		creator := &fakeMessageCreator{}
		channel, err := newTwilioChannel(creator, testConfig())
		require.NoError(t, err)
		o := testOrder(t, order.PaymentMethodCOD, order.PaymentReference{})
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, "", order.PolicyPermissive))

		require.NoError(t, channel.StatusUpdate(t.Context(), o))

		require.Len(t, creator.params, 1)
		body := *creator.params[0].Body
		assert.Contains(t, body, "Order Update - #"+o.ID().String())
		assert.Contains(t, body, "Your order has been confirmed.")
		assert.Contains(t, body, "Track your order: https://devbhoomidrycleaner.example")
	})
}

func TestTwilioChannel_DeliveryReminder(t *testing.T) {
	t.Run("cod order asks for exact change", func(t *testing.T) {
		creator := &fakeMessageCreator{}
		channel, err := newTwilioChannel(creator, testConfig())
		require.NoError(t, err)
		o := testOrder(t, order.PaymentMethodCOD, order.PaymentReference{})

		require.NoError(t, channel.DeliveryReminder(t.Context(), o))

		require.Len(t, creator.params, 1)
		body := *creator.params[0].Body
		assert.Contains(t, body, "Delivery Reminder")
		assert.Contains(t, body, "7 Rajpur Road, Dehradun")
		assert.Contains(t, body, "keep exact change")
	})

	t.Run("paid online order does not ask for payment", func(t *testing.T) {
		creator := &fakeMessageCreator{}
		channel, err := newTwilioChannel(creator, testConfig())
		require.NoError(t, err)
		ref := order.NewPaymentReference("pay_123", "order_123", "sig")
		o := testOrder(t, order.PaymentMethodOnline, ref)

		require.NoError(t, channel.DeliveryReminder(t.Context(), o))

		require.Len(t, creator.params, 1)
		assert.Contains(t, *creator.params[0].Body, "Already paid")
		assert.NotContains(t, *creator.params[0].Body, "exact change")
	})
}

func TestTwilioChannel_SendErrors(t *testing.T) {
	t.Run("api error is returned", func(t *testing.T) {
		apiErr := errors.New("twilio: 21211 invalid to number")
		creator := &fakeMessageCreator{err: apiErr}
		channel, err := newTwilioChannel(creator, testConfig())
		require.NoError(t, err)

		err = channel.OrderConfirmation(t.Context(), testOrder(t, order.PaymentMethodCOD, order.PaymentReference{}))

		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("cancelled context is not sent", func(t *testing.T) {
		creator := &fakeMessageCreator{}
		channel, err := newTwilioChannel(creator, testConfig())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err = channel.OrderConfirmation(ctx, testOrder(t, order.PaymentMethodCOD, order.PaymentReference{}))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, creator.params)
	})
}
