package queries

import (
	"context"

	"tracker/internal/core/ports"
)

// GetTrackingSummaryQueryHandler resolves GetTrackingSummaryQuery.
type GetTrackingSummaryQueryHandler struct {
	readModel ports.TrackingReadModel
}

// NewGetTrackingSummaryQueryHandler creates a handler over the given read model.
func NewGetTrackingSummaryQueryHandler(readModel ports.TrackingReadModel) GetTrackingSummaryQueryHandler {
	return GetTrackingSummaryQueryHandler{readModel: readModel}
}

// Handle returns the current totals.
func (h GetTrackingSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingSummaryQuery,
) (GetTrackingSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingSummaryQueryResponse{}, err
	}

	summary, err := h.readModel.Summarize(ctx)
	if err != nil {
		return GetTrackingSummaryQueryResponse{}, err
	}

	return GetTrackingSummaryQueryResponse{
		Orders:           summary.Orders,
		Partners:         summary.Partners,
		AssignedOrders:   summary.AssignedOrders,
		UnassignedOrders: summary.UnassignedOrders(),
	}, nil
}
