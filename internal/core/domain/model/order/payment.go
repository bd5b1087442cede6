package order

import (
	"fmt"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD PaymentMethod = "cod"

	// PaymentMethodOnline is an online payment through the gateway.
	PaymentMethodOnline PaymentMethod = "online"
)

// PaymentMethodFromString parses a payment method from its wire
// representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks that the method is one of the allowed values.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCOD, PaymentMethodOnline:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", string(m)))
}

// String returns the wire representation of the method.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus is the payment-side flag on an order. This core records it
// but never reconciles it with the gateway.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentStatusFromString parses a payment status from its wire
// representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the allowed values.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", string(s)))
}

// String returns the wire representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentReference carries the opaque identifiers the payment gateway hands
// back after an online payment. They are stored for correlation only and
// never verified here.
type PaymentReference struct {
	paymentID        string
	gatewayOrderID   string
	gatewaySignature string
}

// NewPaymentReference creates a reference from the gateway identifiers.
// All fields are optional; an all-empty reference means no online payment
// was reported.
func NewPaymentReference(paymentID, gatewayOrderID, gatewaySignature string) PaymentReference {
	return PaymentReference{
		paymentID:        paymentID,
		gatewayOrderID:   gatewayOrderID,
		gatewaySignature: gatewaySignature,
	}
}

// PaymentID returns the gateway's payment identifier.
func (r PaymentReference) PaymentID() string {
	return r.paymentID
}

// GatewayOrderID returns the gateway-side order identifier.
func (r PaymentReference) GatewayOrderID() string {
	return r.gatewayOrderID
}

// GatewaySignature returns the gateway's signature over the payment.
func (r PaymentReference) GatewaySignature() string {
	return r.gatewaySignature
}

// IsEmpty reports whether no payment reference was supplied at all.
func (r PaymentReference) IsEmpty() bool {
	return r.paymentID == "" && r.gatewayOrderID == "" && r.gatewaySignature == ""
}
