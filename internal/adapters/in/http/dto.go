package http

import (
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/commands"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/queries"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// placeOrderRequest is the order creation payload.
type placeOrderRequest struct {
	Items            []orderItemPayload `json:"items"`
	Subtotal         float64            `json:"subtotal"`
	Discount         float64            `json:"discount"`
	Total            float64            `json:"total"`
	CustomerName     string             `json:"customerName"`
	CustomerPhone    string             `json:"customerPhone"`
	CustomerEmail    string             `json:"customerEmail"`
	PickupAddress    string             `json:"pickupAddress"`
	DeliveryAddress  string             `json:"deliveryAddress"`
	PaymentMethod    string             `json:"paymentMethod"`
	PaymentID        string             `json:"paymentId"`
	GatewayOrderID   string             `json:"gatewayOrderId"`
	GatewaySignature string             `json:"gatewaySignature"`
	Notes            string             `json:"notes"`
}

// toCommand converts the payload into a place-order command, collecting
// every field violation rather than stopping at the first.
func (r placeOrderRequest) toCommand() (commands.PlaceOrderCommand, []string) {
	var violations []string

	items := make([]order.Item, 0, len(r.Items))
	for _, payload := range r.Items {
		item, err := order.NewItem(payload.ID, payload.Name, decimal.NewFromFloat(payload.Price),
			payload.Quantity, payload.Category)
		if err != nil {
			violations = append(violations, err.Error())
			continue
		}
		items = append(items, item)
	}

	amounts, err := order.NewAmounts(decimal.NewFromFloat(r.Subtotal),
		decimal.NewFromFloat(r.Discount), decimal.NewFromFloat(r.Total))
	if err != nil {
		violations = append(violations, err.Error())
	}

	var customer order.Customer
	phone, err := kernel.NewPhone(r.CustomerPhone)
	if err != nil {
		violations = append(violations, err.Error())
	} else if customer, err = order.NewCustomer(r.CustomerName, phone, r.CustomerEmail); err != nil {
		violations = append(violations, err.Error())
	}

	method, err := order.PaymentMethodFromString(r.PaymentMethod)
	if err != nil {
		violations = append(violations, err.Error())
	}

	if violations != nil {
		return commands.PlaceOrderCommand{}, violations
	}

	ref := order.NewPaymentReference(r.PaymentID, r.GatewayOrderID, r.GatewaySignature)
	cmd, err := commands.NewPlaceOrderCommand(customer, items, amounts,
		r.PickupAddress, r.DeliveryAddress, method, ref, r.Notes)
	if err != nil {
		return commands.PlaceOrderCommand{}, []string{err.Error()}
	}
	return cmd, nil
}

// updateOrderStatusRequest is the operator status update payload.
type updateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// orderPayload is the full order shape returned to consumers.
type orderPayload struct {
	OrderID         string               `json:"orderId"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerEmail   string               `json:"customerEmail,omitempty"`
	Items           []orderItemPayload   `json:"items"`
	Subtotal        float64              `json:"subtotal"`
	Discount        float64              `json:"discount"`
	Total           float64              `json:"total"`
	PickupAddress   string               `json:"pickupAddress"`
	DeliveryAddress string               `json:"deliveryAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentStatus   string               `json:"paymentStatus"`
	Notes           string               `json:"notes,omitempty"`
	OrderStatus     string               `json:"orderStatus"`
	StatusHistory   []statusEntryPayload `json:"statusHistory"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type orderItemPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

type statusEntryPayload struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// orderSummaryPayload is the minimal summary returned on creation.
type orderSummaryPayload struct {
	OrderID       string  `json:"orderId"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
	OrderStatus   string  `json:"orderStatus"`
}

type paginationPayload struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

type statsPayload struct {
	TotalOrders     int64                `json:"totalOrders"`
	PendingOrders   int64                `json:"pendingOrders"`
	CompletedOrders int64                `json:"completedOrders"`
	TotalRevenue    float64              `json:"totalRevenue"`
	RecentOrders    []recentOrderPayload `json:"recentOrders"`
}

type recentOrderPayload struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Total        float64   `json:"total"`
	OrderStatus  string    `json:"orderStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

func orderPayloadFromProjection(projection queries.OrderResponse) orderPayload {
	payload := orderPayload{
		OrderID:         projection.OrderID,
		CustomerName:    projection.Customer.Name,
		CustomerPhone:   projection.Customer.Phone,
		CustomerEmail:   projection.Customer.Email,
		Items:           make([]orderItemPayload, 0, len(projection.Items)),
		Subtotal:        projection.Amounts.Subtotal.InexactFloat64(),
		Discount:        projection.Amounts.Discount.InexactFloat64(),
		Total:           projection.Amounts.Total.InexactFloat64(),
		PickupAddress:   projection.PickupAddress,
		DeliveryAddress: projection.DeliveryAddress,
		PaymentMethod:   projection.PaymentMethod,
		PaymentStatus:   projection.PaymentStatus,
		Notes:           projection.Notes,
		OrderStatus:     projection.Status,
		StatusHistory:   make([]statusEntryPayload, 0, len(projection.History)),
		CreatedAt:       projection.CreatedAt,
		UpdatedAt:       projection.UpdatedAt,
	}
	for _, item := range projection.Items {
		payload.Items = append(payload.Items, orderItemPayload{
			ID:       item.ItemID,
			Name:     item.Name,
			Price:    item.Price.InexactFloat64(),
			Quantity: item.Quantity,
			Category: item.Category,
		})
	}
	for _, entry := range projection.History {
		payload.StatusHistory = append(payload.StatusHistory, statusEntryPayload{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}
	return payload
}

func orderPayloadFromAggregate(o *order.Order) orderPayload {
	history := o.History()
	payload := orderPayload{
		OrderID:         o.ID().String(),
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone().String(),
		CustomerEmail:   o.Customer().Email(),
		Items:           make([]orderItemPayload, 0, len(o.Items())),
		Subtotal:        o.Amounts().Subtotal().InexactFloat64(),
		Discount:        o.Amounts().Discount().InexactFloat64(),
		Total:           o.Amounts().Total().InexactFloat64(),
		PickupAddress:   o.PickupAddress(),
		DeliveryAddress: o.DeliveryAddress(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		Notes:           o.Notes(),
		OrderStatus:     o.Status().String(),
		StatusHistory:   make([]statusEntryPayload, 0, len(history)),
		CreatedAt:       history[0].Timestamp(),
		UpdatedAt:       history[len(history)-1].Timestamp(),
	}
	for _, item := range o.Items() {
		payload.Items = append(payload.Items, orderItemPayload{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price().InexactFloat64(),
			Quantity: item.Quantity(),
			Category: item.Category(),
		})
	}
	for _, entry := range history {
		payload.StatusHistory = append(payload.StatusHistory, statusEntryPayload{
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
		})
	}
	return payload
}

func statsPayloadFromResponse(stats queries.GetDashboardStatsQueryResponse) statsPayload {
	payload := statsPayload{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.DeliveredOrders,
		TotalRevenue:    stats.Revenue.InexactFloat64(),
		RecentOrders:    make([]recentOrderPayload, 0, len(stats.RecentOrders)),
	}
	for _, recent := range stats.RecentOrders {
		payload.RecentOrders = append(payload.RecentOrders, recentOrderPayload{
			OrderID:      recent.OrderID,
			CustomerName: recent.CustomerName,
			Total:        recent.Total.InexactFloat64(),
			OrderStatus:  recent.Status,
			CreatedAt:    recent.CreatedAt,
		})
	}
	return payload
}
