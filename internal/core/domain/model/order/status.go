package order

import (
	"fmt"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// The fulfillment chain is:
//
//	pending -> confirmed -> picked_up -> in_process -> ready -> out_for_delivery -> delivered
//
// with cancelled reachable from any non-terminal state. delivered and
// cancelled are terminal.
//
// Status values are persisted and exposed to clients as these snake_case
// strings; they are part of the wire contract.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPickedUp       Status = "picked_up"
	StatusInProcess      Status = "in_process"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// TransitionPolicy controls how ChangeStatus validates the requested next
// status against the current one.
type TransitionPolicy int

const (
	// PolicyPermissive accepts any known status as the next state, including
	// jumps along the chain and transitions out of terminal states. This is
	// the historical behavior of the system and the default.
	PolicyPermissive TransitionPolicy = iota

	// PolicyStrict enforces the fulfillment chain: only the next state in
	// the chain is accepted, cancelled is reachable from any non-terminal
	// state, and terminal states accept nothing.
	PolicyStrict
)

// nextInChain maps each state to its successor in the fulfillment chain.
// Terminal states have no successor.
func nextInChain() map[Status]Status {
	return map[Status]Status{
		StatusPending:        StatusConfirmed,
		StatusConfirmed:      StatusPickedUp,
		StatusPickedUp:       StatusInProcess,
		StatusInProcess:      StatusReady,
		StatusReady:          StatusOutForDelivery,
		StatusOutForDelivery: StatusDelivered,
	}
}

// StatusFromString parses a fulfillment status from its wire representation.
// Returns an error for unknown status strings.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known fulfillment states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed, StatusPickedUp, StatusInProcess,
		StatusReady, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%q is not a valid status", string(s)))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks the strict transition table: the next state in the
// fulfillment chain, or cancellation of a non-terminal order. It is only
// consulted under PolicyStrict; the permissive default skips it entirely.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next))
	}

	if next == StatusCancelled {
		return nil
	}

	if nextInChain()[s] != next {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("cannot transition from %s to %s", s, next))
	}

	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
