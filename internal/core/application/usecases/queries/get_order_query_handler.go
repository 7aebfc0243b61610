package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetOrderQueryHandler resolves GetOrderQuery.
type GetOrderQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetOrderQueryHandler creates a handler over the given read model.
func NewGetOrderQueryHandler(readModel ports.TrackingReadModel) GetOrderQueryHandler {
	return GetOrderQueryHandler{readModel: readModel}
}

// Handle returns the order or errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.readModel.FindOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:           o.ID(),
		DeliveryTime: o.DeliveryTime().String(),
	}, nil
}
