package order

import (
	"fmt"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amounts groups the money totals of an order. The invariant
// total == subtotal - discount is enforced at creation time only; restored
// orders carry whatever was persisted.
type Amounts struct {
	subtotal decimal.Decimal
	discount decimal.Decimal
	total    decimal.Decimal
}

// NewAmounts creates validated order totals. Subtotal and discount must be
// non-negative and the total must equal subtotal minus discount.
func NewAmounts(subtotal, discount, total decimal.Decimal) (Amounts, error) {
	if subtotal.IsNegative() {
		return Amounts{}, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s is negative", subtotal))
	}
	if discount.IsNegative() {
		return Amounts{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%s is negative", discount))
	}
	if !total.Equal(subtotal.Sub(discount)) {
		return Amounts{}, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not equal subtotal %s minus discount %s", total, subtotal, discount))
	}

	return Amounts{subtotal: subtotal, discount: discount, total: total}, nil
}

// RestoreAmounts reconstructs totals from persistence without re-checking
// the creation-time invariant.
func RestoreAmounts(subtotal, discount, total decimal.Decimal) Amounts {
	return Amounts{subtotal: subtotal, discount: discount, total: total}
}

// Subtotal returns the sum of line totals before discount.
func (a Amounts) Subtotal() decimal.Decimal {
	return a.subtotal
}

// Discount returns the discount applied to the order.
func (a Amounts) Discount() decimal.Decimal {
	return a.discount
}

// Total returns the amount the customer pays.
func (a Amounts) Total() decimal.Decimal {
	return a.total
}
