package order

import (
	"fmt"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order: a garment or service from the price list
// with the quantity the customer handed over. Items are immutable after the
// order is created.
type Item struct {
	id       string
	name     string
	price    decimal.Decimal
	quantity int
	category string
}

// NewItem creates a validated line item. The unit price must be
// non-negative and the quantity positive.
func NewItem(id, name string, price decimal.Decimal, quantity int, category string) (Item, error) {
	var item Item

	if err := item.setID(id); err != nil {
		return Item{}, err
	}
	if err := item.setName(name); err != nil {
		return Item{}, err
	}
	if err := item.setPrice(price); err != nil {
		return Item{}, err
	}
	if err := item.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	item.category = category

	return item, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if i.id == "" {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}

// ID returns the catalog identifier of the item.
func (i Item) ID() string {
	return i.id
}

// Name returns the display name shown on receipts and notifications.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Quantity returns how many pieces of this item the order carries.
func (i Item) Quantity() int {
	return i.quantity
}

// Category returns the catalog category tag (e.g. "wash", "dry-clean").
func (i Item) Category() string {
	return i.category
}

// LineTotal returns price multiplied by quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("item.id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item.name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("item.price",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item.quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
