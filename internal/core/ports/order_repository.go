package ports

import (
	"context"

	"tracker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add stores an order, replacing any order with the same id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Delete removes an order record. Its assignment is not touched; use
	// AssignmentRepository.Unassign first.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Delete(ctx context.Context, id string) error
}
