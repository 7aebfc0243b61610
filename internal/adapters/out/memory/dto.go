package memory

import (
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
)

// orderRecord is the stored form of an order. Aggregates never leave the
// store by reference, so a caller mutating what it got from a repository
// cannot change state behind the unit of work's back.
type orderRecord struct {
	ID              string
	DeliveryMinutes int
}

// partnerRecord is the stored form of a partner.
type partnerRecord struct {
	ID             string
	NumberOfOrders int
}

func orderFromDomain(o *order.Order) orderRecord {
	return orderRecord{
		ID:              o.ID(),
		DeliveryMinutes: o.DeliveryTime().Minutes(),
	}
}

func orderToDomain(r orderRecord) (*order.Order, error) {
	due, err := kernel.NewDeliveryTime(r.DeliveryMinutes)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(r.ID, due)
}

func partnerFromDomain(p *partner.Partner) partnerRecord {
	return partnerRecord{
		ID:             p.ID(),
		NumberOfOrders: p.NumberOfOrders(),
	}
}

func partnerToDomain(r partnerRecord) (*partner.Partner, error) {
	return partner.RestorePartner(r.ID, r.NumberOfOrders)
}
