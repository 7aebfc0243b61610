package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetUnassignedOrderCountQueryIsNotConstructed = errors.New(
	"GetUnassignedOrderCountQuery must be created via NewGetUnassignedOrderCountQuery constructor",
)

// GetUnassignedOrderCountQuery counts orders that no partner holds.
type GetUnassignedOrderCountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrderCountQuery creates the query.
func NewGetUnassignedOrderCountQuery() GetUnassignedOrderCountQuery {
	return GetUnassignedOrderCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrderCountQueryIsNotConstructed)
}
