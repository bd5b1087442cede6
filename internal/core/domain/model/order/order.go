package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// InitialStatusNote is the note written into the first status-history entry
// at order creation.
const InitialStatusNote = "Order placed"

// Order represents one customer transaction for pickup, processing, and
// delivery of items. It is the aggregate root for the fulfillment lifecycle.
//
// Order maintains these invariants:
//   - The identifier is assigned at creation and immutable
//   - Items and money totals are immutable after creation
//   - The status history has at least one entry, its timestamps are
//     non-decreasing, and the last entry's status equals the current status
//   - The delivery address is never empty (falls back to the pickup address)
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through ChangeStatus, which appends to the audit trail.
type Order struct {
	// id is the short human-readable order identifier
	id kernel.OrderID

	// items is the immutable sequence of line items
	items []Item

	// amounts holds subtotal, discount, and total
	amounts Amounts

	// customer identifies who placed the order
	customer Customer

	// pickupAddress is where items are collected
	pickupAddress string

	// deliveryAddress is where items are returned; defaults to pickupAddress
	deliveryAddress string

	// paymentMethod is cod or online
	paymentMethod PaymentMethod

	// paymentStatus is the payment-side flag, derived at creation
	paymentStatus PaymentStatus

	// paymentRef carries opaque gateway identifiers for correlation
	paymentRef PaymentReference

	// notes is the free-form instruction the customer attached
	notes string

	// status is the current fulfillment state
	status Status

	// history is the append-only status audit trail
	history []HistoryEntry

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with a pending status and the first
// status-history entry. This is the only way orders come into existence;
// the store never fabricates them.
//
// Validation failures are joined, so a caller receives every violated field
// at once rather than just the first.
//
// The payment status is derived here: paid when the method is online and a
// gateway payment id was supplied, pending otherwise. A missing delivery
// address falls back to the pickup address.
func NewOrder(
	id kernel.OrderID,
	items []Item,
	amounts Amounts,
	customer Customer,
	pickupAddress string,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	paymentRef PaymentReference,
	notes string,
) (*Order, error) {
	o := &Order{
		paymentRef:    paymentRef,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setAmounts(amounts),
		o.setCustomer(customer),
		o.setAddresses(pickupAddress, deliveryAddress),
		o.setPayment(paymentMethod, paymentRef),
	); err != nil {
		return nil, err
	}

	o.status = StatusPending
	o.history = []HistoryEntry{{
		status:    StatusPending,
		timestamp: time.Now(),
		note:      InitialStatusNote,
	}}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It checks structural
// invariants (non-empty history whose last entry matches the status) but
// does not re-derive the payment status or re-validate the money totals;
// those are creation-time rules only.
func RestoreOrder(
	id kernel.OrderID,
	items []Item,
	amounts Amounts,
	customer Customer,
	pickupAddress string,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	paymentRef PaymentReference,
	notes string,
	status Status,
	history []HistoryEntry,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customer.Validate(),
		paymentMethod.Validate(),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	if last := history[len(history)-1].Status(); last != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("statusHistory",
			fmt.Errorf("last history entry is %s but order status is %s", last, status))
	}
	if pickupAddress == "" {
		return nil, errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		deliveryAddress = pickupAddress
	}

	return &Order{
		id:              id,
		items:           items,
		amounts:         amounts,
		customer:        customer,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		paymentMethod:   paymentMethod,
		paymentStatus:   paymentStatus,
		paymentRef:      paymentRef,
		notes:           notes,
		status:          status,
		history:         history,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ChangeStatus records a fulfillment transition: it sets the current status
// and appends one history entry stamped at transition time.
//
// Under PolicyPermissive any known status is accepted as the next state,
// which is the historical behavior operators rely on. Under PolicyStrict the
// transition must follow the fulfillment chain (see Status.CanTransitionTo).
//
// An empty note defaults to "Status updated to <status>".
func (o *Order) ChangeStatus(next Status, note string, policy TransitionPolicy) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if policy == PolicyStrict {
		if err := o.status.CanTransitionTo(next); err != nil {
			return err
		}
	}

	if note == "" {
		note = fmt.Sprintf("Status updated to %s", next)
	}

	o.status = next
	o.history = append(o.history, HistoryEntry{
		status:    next,
		timestamp: time.Now(),
		note:      note,
	})

	return nil
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Amounts returns the order's money totals.
func (o *Order) Amounts() Amounts {
	return o.amounts
}

// Customer returns who placed the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// PickupAddress returns where items are collected.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns where items are returned. Never empty.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the payment-side flag.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentReference returns the opaque gateway identifiers.
func (o *Order) PaymentReference() PaymentReference {
	return o.paymentRef
}

// Notes returns the customer's free-form instructions.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current fulfillment state.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status audit trail.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAmounts(amounts Amounts) error {
	o.amounts = amounts
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddresses(pickup, delivery string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = pickup
	if delivery == "" {
		delivery = pickup
	}
	o.deliveryAddress = delivery
	return nil
}

func (o *Order) setPayment(method PaymentMethod, ref PaymentReference) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method

	if method == PaymentMethodOnline && ref.PaymentID() != "" {
		o.paymentStatus = PaymentStatusPaid
	} else {
		o.paymentStatus = PaymentStatusPending
	}
	return nil
}
