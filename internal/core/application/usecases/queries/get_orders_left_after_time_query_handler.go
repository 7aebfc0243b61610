package queries

import (
	"context"

	"tracker/internal/core/domain/services"
	"tracker/internal/core/ports"
)

// GetOrdersLeftAfterTimeQueryHandler resolves GetOrdersLeftAfterTimeQuery.
type GetOrdersLeftAfterTimeQueryHandler struct {
	readModel ports.TrackingReadModel
	schedule  services.DeliverySchedule
}

// NewGetOrdersLeftAfterTimeQueryHandler creates a handler over the given read model.
func NewGetOrdersLeftAfterTimeQueryHandler(readModel ports.TrackingReadModel) GetOrdersLeftAfterTimeQueryHandler {
	return GetOrdersLeftAfterTimeQueryHandler{
		readModel: readModel,
		schedule:  services.NewDeliverySchedule(),
	}
}

// Handle returns how many of the partner's orders are due strictly after the
// query's time. Returns errs.ErrObjectNotFound for an unknown partner.
func (h GetOrdersLeftAfterTimeQueryHandler) Handle(ctx context.Context, query GetOrdersLeftAfterTimeQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.readModel.FindOrdersByPartner(ctx, query.PartnerID())
	if err != nil {
		return 0, err
	}

	return h.schedule.CountDueAfter(orders, query.After())
}
