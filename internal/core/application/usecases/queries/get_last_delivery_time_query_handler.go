package queries

import (
	"context"

	"tracker/internal/core/domain/services"
	"tracker/internal/core/ports"
)

// GetLastDeliveryTimeQueryHandler resolves GetLastDeliveryTimeQuery.
//
// Example:
//
//	handler := NewGetLastDeliveryTimeQueryHandler(readModel)
//	query, _ := NewGetLastDeliveryTimeQuery("P1")
//	last, err := handler.Handle(ctx, query) // "10:10"
type GetLastDeliveryTimeQueryHandler struct {
	readModel ports.TrackingReadModel
	schedule  services.DeliverySchedule
}

// NewGetLastDeliveryTimeQueryHandler creates a handler over the given read model.
func NewGetLastDeliveryTimeQueryHandler(readModel ports.TrackingReadModel) GetLastDeliveryTimeQueryHandler {
	return GetLastDeliveryTimeQueryHandler{
		readModel: readModel,
		schedule:  services.NewDeliverySchedule(),
	}
}

// Handle returns the latest delivery time of the partner's orders as HH:MM,
// or "00:00" when the partner has none.
// Returns errs.ErrObjectNotFound for an unknown partner.
func (h GetLastDeliveryTimeQueryHandler) Handle(ctx context.Context, query GetLastDeliveryTimeQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	orders, err := h.readModel.FindOrdersByPartner(ctx, query.PartnerID())
	if err != nil {
		return "", err
	}

	last, err := h.schedule.LastDeliveryTime(orders)
	if err != nil {
		return "", err
	}
	return last.String(), nil
}
