// Package queries contains read operations for retrieving tracker state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries run against ports.TrackingReadModel and never open a unit of work.
package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists the ids of every stored order.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(readModel)
//
//	ids, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders stored\n", len(ids))
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query listing all order ids.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
