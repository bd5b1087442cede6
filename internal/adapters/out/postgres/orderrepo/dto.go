// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order row carries the customer snapshot, addresses, money totals, and
// payment details; line items and the status history live in child tables
// keyed by (order_id, seq).
type OrderDTO struct {
	ID              string      `gorm:"type:varchar(6);primaryKey"`
	Customer        CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	PickupAddress   string
	DeliveryAddress string
	Amounts         AmountsDTO `gorm:"embedded"`
	Payment         PaymentDTO `gorm:"embedded;embeddedPrefix:payment_"`
	Notes           string
	Status          string `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items   []ItemDTO          `gorm:"foreignKey:OrderID;references:ID"`
	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the customer snapshot embedded in the order row. The phone
// is indexed for the customer order-lookup surface.
type CustomerDTO struct {
	Name  string
	Phone string `gorm:"index"`
	Email string
}

// AmountsDTO holds the money totals embedded in the order row.
type AmountsDTO struct {
	Subtotal decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// PaymentDTO holds the payment method, the derived payment status, and the
// opaque gateway identifiers embedded in the order row.
type PaymentDTO struct {
	Method           string
	Status           string
	ID               string
	GatewayOrderID   string
	GatewaySignature string
}

// ItemDTO represents one order line item.
type ItemDTO struct {
	OrderID  string `gorm:"type:varchar(6);primaryKey"`
	Seq      int    `gorm:"primaryKey"`
	ItemID   string
	Name     string
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity int
	Category string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents one entry of the append-only status audit
// trail. Rows are only ever inserted, never updated or deleted.
type StatusHistoryDTO struct {
	OrderID   string `gorm:"type:varchar(6);primaryKey"`
	Seq       int    `gorm:"primaryKey"`
	Status    string
	Timestamp time.Time
	Note      string
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
// Child rows get their sequence numbers from their position in the aggregate.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().String()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:  id,
			Seq:      i,
			ItemID:   item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Category: item.Category(),
		})
	}

	history := make([]StatusHistoryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		history = append(history, StatusHistoryDTO{
			OrderID:   id,
			Seq:       i,
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
		})
	}

	return OrderDTO{
		ID: id,
		Customer: CustomerDTO{
			Name:  aggregate.Customer().Name(),
			Phone: aggregate.Customer().Phone().String(),
			Email: aggregate.Customer().Email(),
		},
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Amounts: AmountsDTO{
			Subtotal: aggregate.Amounts().Subtotal(),
			Discount: aggregate.Amounts().Discount(),
			Total:    aggregate.Amounts().Total(),
		},
		Payment: PaymentDTO{
			Method:           aggregate.PaymentMethod().String(),
			Status:           aggregate.PaymentStatus().String(),
			ID:               aggregate.PaymentReference().PaymentID(),
			GatewayOrderID:   aggregate.PaymentReference().GatewayOrderID(),
			GatewaySignature: aggregate.PaymentReference().GatewaySignature(),
		},
		Notes:   aggregate.Notes(),
		Status:  aggregate.Status().String(),
		Items:   items,
		History: history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and the full status
// history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, phone, dto.Customer.Email)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ItemID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.Quantity,
			itemDTO.Category,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		status, statusErr := order.StatusFromString(entryDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.RestoreHistoryEntry(status, entryDTO.Timestamp, entryDTO.Note))
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.Payment.Method)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.Payment.Status)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		items,
		order.RestoreAmounts(dto.Amounts.Subtotal, dto.Amounts.Discount, dto.Amounts.Total),
		customer,
		dto.PickupAddress,
		dto.DeliveryAddress,
		paymentMethod,
		paymentStatus,
		order.NewPaymentReference(dto.Payment.ID, dto.Payment.GatewayOrderID, dto.Payment.GatewaySignature),
		dto.Notes,
		status,
		history,
	)
}
