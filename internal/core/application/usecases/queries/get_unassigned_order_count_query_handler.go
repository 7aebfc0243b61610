package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetUnassignedOrderCountQueryHandler resolves GetUnassignedOrderCountQuery.
type GetUnassignedOrderCountQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetUnassignedOrderCountQueryHandler creates a handler over the given read model.
func NewGetUnassignedOrderCountQueryHandler(
	readModel ports.TrackingReadModel,
) GetUnassignedOrderCountQueryHandler {
	return GetUnassignedOrderCountQueryHandler{readModel: readModel}
}

// Handle returns total orders minus assigned orders.
func (h GetUnassignedOrderCountQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrderCountQuery,
) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	summary, err := h.readModel.Summarize(ctx)
	if err != nil {
		return 0, err
	}
	return summary.UnassignedOrders(), nil
}
