package queries

import (
	"context"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the operator dashboard counters
// from the database.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
// Requires a GORM database connection for query execution.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query. Revenue sums the totals of orders whose
// payment status is paid; unpaid cash orders do not count until collected.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var resp GetDashboardStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total) FILTER (WHERE payment_status = ?), 0)
		FROM orders
	`,
		order.StatusPending.String(),
		order.StatusDelivered.String(),
		order.PaymentStatusPaid.String(),
	).Row()
	if err := row.Scan(
		&resp.TotalOrders,
		&resp.PendingOrders,
		&resp.DeliveredOrders,
		&resp.Revenue,
	); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			total,
			created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`, RecentOrdersLimit).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	resp.RecentOrders = make([]RecentOrderResponse, 0, RecentOrdersLimit)
	for rows.Next() {
		var recent RecentOrderResponse
		if err = rows.Scan(
			&recent.OrderID,
			&recent.CustomerName,
			&recent.Status,
			&recent.Total,
			&recent.CreatedAt,
		); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		resp.RecentOrders = append(resp.RecentOrders, recent)
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
