// Package memory is the in-process storage adapter of the tracker.
//
// Store owns every piece of state: orders, partners and the partner → orders
// relation with its inverse. One RWMutex guards all of it, because a single
// assignment touches the relation and a partner's count at the same time and
// both must move together.
//
// Writes go through a UnitOfWork: Begin takes the exclusive lock, every
// repository call journals how to undo itself, Commit drops the journal and
// Rollback replays it backwards. Reads go through the Store's read-model
// methods under the shared lock, so a query never sees half a transaction.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/bimap"
	"tracker/internal/pkg/errs"
)

// Store holds the tracker state. Create it with NewStore.
type Store struct {
	mu          sync.RWMutex
	orders      map[string]orderRecord
	partners    map[string]partnerRecord
	assignments *bimap.OneToMany[string, string] // partner id → order ids
}

var _ ports.TrackingReadModel = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		orders:      make(map[string]orderRecord),
		partners:    make(map[string]partnerRecord),
		assignments: bimap.New[string, string](),
	}
}

// FindOrder returns the order with the given id.
func (s *Store) FindOrder(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return orderToDomain(rec)
}

// FindPartner returns the partner with the given id.
func (s *Store) FindPartner(ctx context.Context, id string) (*partner.Partner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.partners[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("partner", id)
	}
	return partnerToDomain(rec)
}

// FindOrdersByPartner returns the orders assigned to partnerID sorted by id.
func (s *Store) FindOrdersByPartner(ctx context.Context, partnerID string) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.partners[partnerID]; !ok {
		return nil, errs.NewObjectNotFoundError("partner", partnerID)
	}

	ids := s.assignments.Values(partnerID)
	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		rec, ok := s.orders[id]
		if !ok {
			return nil, fmt.Errorf("order %s assigned to partner %s is not stored", id, partnerID)
		}
		o, err := orderToDomain(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// ListOrderIDs returns every order id in ascending order.
func (s *Store) ListOrderIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(s.orders))
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Summarize returns the current totals.
func (s *Store) Summarize(ctx context.Context) (ports.TrackingSummary, error) {
	if err := ctx.Err(); err != nil {
		return ports.TrackingSummary{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return ports.TrackingSummary{
		Orders:         len(s.orders),
		Partners:       len(s.partners),
		AssignedOrders: s.assignments.Len(),
	}, nil
}
