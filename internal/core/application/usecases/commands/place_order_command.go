package commands

import (
	"errors"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired         = errors.New("at least one item is required")
	ErrPickupAddressIsRequired  = errors.New("pickup address is required")
	ErrCustomerIsNotConstructed = errors.New("customer must be created via order.NewCustomer")
)

// PlaceOrderCommand represents a request to place a new drycleaning order.
// Encapsulates the customer, the line items with their money totals, the
// pickup and delivery addresses, and the chosen payment method.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customer, items, amounts,
//	    "12 Mall Road", "", order.PaymentMethodCOD, order.PaymentReference{}, "ring the bell")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customer        order.Customer
	items           []order.Item
	amounts         order.Amounts
	pickupAddress   string
	deliveryAddress string
	paymentMethod   order.PaymentMethod
	paymentRef      order.PaymentReference
	notes           string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the customer is constructed, at least one item is present,
// the pickup address is not empty, and the payment method is known. The
// delivery address and notes may be empty.
func NewPlaceOrderCommand(
	customer order.Customer,
	items []order.Item,
	amounts order.Amounts,
	pickupAddress string,
	deliveryAddress string,
	paymentMethod order.PaymentMethod,
	paymentRef order.PaymentReference,
	notes string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		deliveryAddress: deliveryAddress,
		paymentRef:      paymentRef,
		notes:           notes,
		amounts:         amounts,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomer(customer),
		command.setItems(items),
		command.setPickupAddress(pickupAddress),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Customer returns the customer placing the order.
func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the order line items.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

// Amounts returns the order money totals.
func (c PlaceOrderCommand) Amounts() order.Amounts {
	return c.amounts
}

// PickupAddress returns the address where items are collected.
func (c PlaceOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the address where items are returned.
// May be empty; the aggregate falls back to the pickup address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PaymentRef returns the gateway payment identifiers, if any.
func (c PlaceOrderCommand) PaymentRef() order.PaymentReference {
	return c.paymentRef
}

// Notes returns the free-form customer instruction.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return ErrCustomerIsNotConstructed
	}

	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
