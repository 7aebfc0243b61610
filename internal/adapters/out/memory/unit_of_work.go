package memory

import (
	"context"
	"errors"

	"tracker/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit, Rollback and repository calls
// made outside Begin/Commit.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over one Store.
//
// Example:
//
//	factory := NewUnitOfWorkFactory(store)
//	uow := factory.Create()
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Each instance has its own transaction
// state and must not be shared between goroutines.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a transaction over the Store.
//
// While active it holds the store's exclusive lock; other units of work and
// readers wait until Commit or Rollback. Every repository mutation appends an
// undo step to the journal, so Rollback restores the state seen at Begin.
type UnitOfWork struct {
	store   *Store
	active  bool
	journal []func()
}

// Begin takes the store lock. Calling Begin on an active unit of work is a
// no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.journal = nil
	return nil
}

// Commit keeps every change made since Begin and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// Rollback undoes every change made since Begin, newest first, and releases
// the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for i := len(uow.journal) - 1; i >= 0; i-- {
		uow.journal[i]()
	}
	uow.finish()
	return nil
}

// OrderRepository returns the order repository of this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// PartnerRepository returns the partner repository of this unit of work.
func (uow *UnitOfWork) PartnerRepository() ports.PartnerRepository {
	return &partnerRepository{uow: uow}
}

// AssignmentRepository returns the assignment repository of this unit of work.
func (uow *UnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return &assignmentRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	uow.journal = nil
	uow.active = false
	uow.store.mu.Unlock()
}

func (uow *UnitOfWork) ensureActive() error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	return nil
}

func (uow *UnitOfWork) record(undo func()) {
	uow.journal = append(uow.journal, undo)
}
