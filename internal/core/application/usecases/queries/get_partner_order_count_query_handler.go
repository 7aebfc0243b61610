package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetPartnerOrderCountQueryHandler resolves GetPartnerOrderCountQuery.
type GetPartnerOrderCountQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetPartnerOrderCountQueryHandler creates a handler over the given read model.
func NewGetPartnerOrderCountQueryHandler(readModel ports.TrackingReadModel) GetPartnerOrderCountQueryHandler {
	return GetPartnerOrderCountQueryHandler{readModel: readModel}
}

// Handle returns the size of the partner's order set.
// Returns errs.ErrObjectNotFound for an unknown partner.
func (h GetPartnerOrderCountQueryHandler) Handle(ctx context.Context, query GetPartnerOrderCountQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.readModel.FindOrdersByPartner(ctx, query.PartnerID())
	if err != nil {
		return 0, err
	}

	return len(orders), nil
}
