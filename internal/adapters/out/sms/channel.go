package sms

import (
	"context"
	"errors"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrFromNumberIsRequired     = errors.New("twilio from number is required")
	ErrOperatorPhoneIsRequired  = errors.New("operator phone is required")
	ErrMessageCreatorIsRequired = errors.New("message creator is required")
)

// Config carries the Twilio account settings and the business identity
// lines appended to every message.
type Config struct {
	AccountSID    string
	AuthToken     string
	FromNumber    string
	OperatorPhone string
	BusinessName  string
	BusinessPhone string
	WebsiteURL    string
}

// messageCreator is the slice of the Twilio REST client the channel uses.
type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// TwilioChannel sends order notification texts through the Twilio API.
// It implements ports.SMSChannel.
type TwilioChannel struct {
	messages messageCreator
	cfg      Config
}

// NewTwilioChannel creates an SMS channel backed by the Twilio REST API.
func NewTwilioChannel(cfg Config) (*TwilioChannel, error) {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newTwilioChannel(client.Api, cfg)
}

func newTwilioChannel(messages messageCreator, cfg Config) (*TwilioChannel, error) {
	if messages == nil {
		return nil, ErrMessageCreatorIsRequired
	}
	if cfg.FromNumber == "" {
		return nil, ErrFromNumberIsRequired
	}
	if cfg.OperatorPhone == "" {
		return nil, ErrOperatorPhoneIsRequired
	}

	return &TwilioChannel{messages: messages, cfg: cfg}, nil
}

// OrderConfirmation texts the customer that the order was received.
func (c *TwilioChannel) OrderConfirmation(ctx context.Context, o *order.Order) error {
	return c.send(ctx, o.Customer().Phone().String(), c.customerConfirmationBody(o))
}

// OperatorAlert texts the operator about a new order.
func (c *TwilioChannel) OperatorAlert(ctx context.Context, o *order.Order) error {
	return c.send(ctx, c.cfg.OperatorPhone, c.operatorAlertBody(o))
}

// StatusUpdate texts the customer about a fulfillment status change.
func (c *TwilioChannel) StatusUpdate(ctx context.Context, o *order.Order) error {
	return c.send(ctx, o.Customer().Phone().String(), c.statusUpdateBody(o))
}

// DeliveryReminder texts the customer that delivery is imminent.
func (c *TwilioChannel) DeliveryReminder(ctx context.Context, o *order.Order) error {
	return c.send(ctx, o.Customer().Phone().String(), c.deliveryReminderBody(o))
}

// send pushes one message through the Twilio API. The Twilio client has no
// context plumbing, so the deadline is only honored between attempts.
func (c *TwilioChannel) send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(FormatNumber(to))
	params.SetFrom(c.cfg.FromNumber)
	params.SetBody(body)

	_, err := c.messages.CreateMessage(params)
	return err
}
