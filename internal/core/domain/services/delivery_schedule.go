package services

import (
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
)

// DeliverySchedule is a stateless domain service that evaluates the delivery
// times of a set of orders, typically all orders held by one partner.
//
// Example usage:
//
//	schedule := services.NewDeliverySchedule()
//	last, err := schedule.LastDeliveryTime(partnerOrders)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(last) // e.g. "10:10"
type DeliverySchedule struct{}

// NewDeliverySchedule creates a new DeliverySchedule instance.
func NewDeliverySchedule() DeliverySchedule {
	return DeliverySchedule{}
}

// LastDeliveryTime returns the latest delivery time among orders, or
// StartOfDay (00:00) when orders is empty.
//
// Returns a validation error if any order was not properly constructed.
func (s DeliverySchedule) LastDeliveryTime(orders []*order.Order) (kernel.DeliveryTime, error) {
	last := kernel.StartOfDay()

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return kernel.DeliveryTime{}, err
		}

		if o.IsDueAfter(last) {
			last = o.DeliveryTime()
		}
	}

	return last, nil
}

// CountDueAfter returns how many orders are due strictly later than t.
// An order due exactly at t is not counted.
//
// Returns a validation error if t or any order was not properly constructed.
func (s DeliverySchedule) CountDueAfter(orders []*order.Order, t kernel.DeliveryTime) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	count := 0
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return 0, err
		}

		if o.IsDueAfter(t) {
			count++
		}
	}

	return count, nil
}
