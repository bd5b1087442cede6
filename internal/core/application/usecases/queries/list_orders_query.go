package queries

import (
	"errors"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersMaxLimit caps the operator page size.
const ListOrdersMaxLimit = 100

// ListOrdersQuery retrieves a page of orders for the operator dashboard,
// newest first, optionally filtered by status.
//
// Example:
//
//	query, _ := NewListOrdersQuery("pending", 1, 50)
//	handler := NewListOrdersQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for one page of the operator order
// list. An empty status means no filter; otherwise it must be a known
// status value. Page starts at 1; limit is capped at ListOrdersMaxLimit.
func NewListOrdersQuery(status string, page, limit int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setPage(page),
		query.setLimit(limit),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when the page is unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q *ListOrdersQuery) setStatus(status string) error {
	if status == "" {
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = &parsed
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit < 1 || limit > ListOrdersMaxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, ListOrdersMaxLimit)
	}

	q.limit = limit
	return nil
}

// ListOrdersResponse is one page of the operator order list.
type ListOrdersResponse struct {
	Orders []OrderResponse
	Total  int64
	Page   int
	Pages  int
}
