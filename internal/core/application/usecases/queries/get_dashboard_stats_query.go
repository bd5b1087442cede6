package queries

import (
	"errors"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// RecentOrdersLimit caps how many recent orders the dashboard shows.
const RecentOrdersLimit = 10

// GetDashboardStatsQuery retrieves the operator dashboard counters.
// This is a parameterless query.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard counters.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardStatsQueryIsNotConstructed if validation fails.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the operator dashboard counters.
// Revenue only counts orders whose payment has actually settled.
type GetDashboardStatsQueryResponse struct {
	TotalOrders     int64
	PendingOrders   int64
	DeliveredOrders int64
	Revenue         decimal.Decimal
	RecentOrders    []RecentOrderResponse
}

// RecentOrderResponse is the compact projection shown in the dashboard's
// recent-orders panel.
type RecentOrderResponse struct {
	OrderID      string
	CustomerName string
	Status       string
	Total        decimal.Decimal
	CreatedAt    time.Time
}
