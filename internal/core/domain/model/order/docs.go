// Package order contains the Order aggregate and its supporting value
// objects for the drycleaning pickup/delivery business.
//
// The aggregate owns the fulfillment lifecycle: an order is created once via
// NewOrder with a pending status and a first status-history entry, advances
// through a bounded set of states via ChangeStatus, and is never deleted.
// The status history is append-only and serves as the audit trail; its last
// entry always matches the current status.
//
// Status transitions are validated by the Status value object. By default
// the machine is permissive (any known status is accepted as the next
// state, which matches the behavior operators rely on today); strict mode
// enforces the fulfillment chain and terminal states.
package order
