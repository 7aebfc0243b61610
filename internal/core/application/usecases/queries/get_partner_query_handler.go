package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetPartnerQueryHandler resolves GetPartnerQuery.
type GetPartnerQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetPartnerQueryHandler creates a handler over the given read model.
func NewGetPartnerQueryHandler(readModel ports.TrackingReadModel) GetPartnerQueryHandler {
	return GetPartnerQueryHandler{readModel: readModel}
}

// Handle returns the partner or errs.ErrObjectNotFound.
func (h GetPartnerQueryHandler) Handle(ctx context.Context, query GetPartnerQuery) (GetPartnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerQueryResponse{}, err
	}

	p, err := h.readModel.FindPartner(ctx, query.PartnerID())
	if err != nil {
		return GetPartnerQueryResponse{}, err
	}

	return GetPartnerQueryResponse{
		ID:             p.ID(),
		NumberOfOrders: p.NumberOfOrders(),
	}, nil
}
