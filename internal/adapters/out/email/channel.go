// Package email delivers order notifications over SMTP.
package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"

	"gopkg.in/gomail.v2"
)

var (
	ErrFromAddressIsRequired   = errors.New("from address is required")
	ErrOperatorEmailIsRequired = errors.New("operator email is required")
	ErrMailSenderIsRequired    = errors.New("mail sender is required")
	ErrCustomerHasNoEmail      = errors.New("customer has no email address")
)

// Config carries the SMTP account settings and the business identity lines
// rendered into every message.
type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	OperatorEmail string
	BusinessName  string
	BusinessPhone string
	WebsiteURL    string
}

// mailSender is the slice of gomail the channel uses.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// GomailChannel sends order notification emails over SMTP. It implements
// ports.EmailChannel.
type GomailChannel struct {
	sender mailSender
	cfg    Config
}

// NewGomailChannel creates an email channel backed by an SMTP dialer.
func NewGomailChannel(cfg Config) (*GomailChannel, error) {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return newGomailChannel(dialer, cfg)
}

func newGomailChannel(sender mailSender, cfg Config) (*GomailChannel, error) {
	if sender == nil {
		return nil, ErrMailSenderIsRequired
	}
	if cfg.From == "" {
		return nil, ErrFromAddressIsRequired
	}
	if cfg.OperatorEmail == "" {
		return nil, ErrOperatorEmailIsRequired
	}

	return &GomailChannel{sender: sender, cfg: cfg}, nil
}

// OrderConfirmation sends the HTML confirmation to the customer.
func (c *GomailChannel) OrderConfirmation(ctx context.Context, o *order.Order) error {
	if !o.Customer().HasEmail() {
		return ErrCustomerHasNoEmail
	}

	body, err := c.confirmationBody(o)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.cfg.From, c.cfg.BusinessName)
	m.SetHeader("To", o.Customer().Email())
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmed #%s - %s", o.ID(), c.cfg.BusinessName))
	m.SetBody("text/html", body)

	return c.send(ctx, m)
}

// OperatorAlert sends the new-order alert to the operator mailbox.
func (c *GomailChannel) OperatorAlert(ctx context.Context, o *order.Order) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.cfg.From, c.cfg.BusinessName)
	m.SetHeader("To", c.cfg.OperatorEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Order #%s - Rs %s", o.ID(), o.Amounts().Total().StringFixed(2)))
	m.SetBody("text/plain", c.operatorAlertBody(o))

	return c.send(ctx, m)
}

// send pushes one message through SMTP. gomail has no context plumbing, so
// the deadline is only honored between attempts.
func (c *GomailChannel) send(ctx context.Context, m *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.sender.DialAndSend(m)
}
