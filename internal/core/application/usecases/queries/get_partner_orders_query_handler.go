package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetPartnerOrdersQueryHandler resolves GetPartnerOrdersQuery.
type GetPartnerOrdersQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetPartnerOrdersQueryHandler creates a handler over the given read model.
func NewGetPartnerOrdersQueryHandler(readModel ports.TrackingReadModel) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{readModel: readModel}
}

// Handle returns the partner's order ids in ascending order.
// Returns errs.ErrObjectNotFound for an unknown partner.
func (h GetPartnerOrdersQueryHandler) Handle(ctx context.Context, query GetPartnerOrdersQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readModel.FindOrdersByPartner(ctx, query.PartnerID())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, nil
}
