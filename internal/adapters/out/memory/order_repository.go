package memory

import (
	"context"

	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

// Add stores an order, replacing any order with the same id.
func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orders := r.uow.store.orders
	rec := orderFromDomain(aggregate)
	prev, existed := orders[rec.ID]
	orders[rec.ID] = rec

	r.uow.record(func() {
		if existed {
			orders[rec.ID] = prev
			return
		}
		delete(orders, rec.ID)
	})
	return nil
}

// Get retrieves an order by id.
func (r *orderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	rec, ok := r.uow.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return orderToDomain(rec)
}

// Delete removes an order record.
func (r *orderRepository) Delete(_ context.Context, id string) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}

	orders := r.uow.store.orders
	prev, ok := orders[id]
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	delete(orders, id)

	r.uow.record(func() {
		orders[id] = prev
	})
	return nil
}
