package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetAllOrdersQueryHandler lists order ids.
type GetAllOrdersQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetAllOrdersQueryHandler creates a handler over the given read model.
func NewGetAllOrdersQueryHandler(readModel ports.TrackingReadModel) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{readModel: readModel}
}

// Handle returns every order id in ascending order. The result is empty, not
// nil, when no orders exist.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.readModel.ListOrderIDs(ctx)
}
