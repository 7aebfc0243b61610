package ports

import (
	"context"

	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
)

// TrackingSummary holds store-wide totals.
type TrackingSummary struct {
	Orders         int
	Partners       int
	AssignedOrders int
}

// UnassignedOrders returns the number of orders not assigned to any partner.
func (s TrackingSummary) UnassignedOrders() int {
	return s.Orders - s.AssignedOrders
}

// TrackingReadModel is the query side of the store. Every method observes a
// consistent state: it never sees a transaction half applied.
type TrackingReadModel interface {
	// FindOrder returns errs.ErrObjectNotFound for an unknown id.
	FindOrder(ctx context.Context, id string) (*order.Order, error)

	// FindPartner returns errs.ErrObjectNotFound for an unknown id.
	FindPartner(ctx context.Context, id string) (*partner.Partner, error)

	// FindOrdersByPartner returns the partner's orders sorted by id.
	// Returns errs.ErrObjectNotFound for an unknown partner.
	FindOrdersByPartner(ctx context.Context, partnerID string) ([]*order.Order, error)

	// ListOrderIDs returns every stored order id in ascending order.
	ListOrderIDs(ctx context.Context) ([]string, error)

	// Summarize returns store-wide totals.
	Summarize(ctx context.Context) (TrackingSummary, error)
}
