package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of the operator order list from the
// database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for operator order listing.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. The page is ordered newest first; Total and
// Pages describe the whole filtered set so the dashboard can render its
// pager.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where := ""
	args := make([]any, 0, 3)
	if status := query.Status(); status != nil {
		where = "WHERE status = ?"
		args = append(args, status.String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return ListOrdersResponse{}, err
	}

	orders, err := scanOrderRows(rows)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	if err = attachChildren(ctx, h.db, orders); err != nil {
		return ListOrdersResponse{}, err
	}

	pages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return ListOrdersResponse{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
		Pages:  pages,
	}, nil
}
