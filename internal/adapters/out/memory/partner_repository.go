package memory

import (
	"context"

	"tracker/internal/core/domain/model/partner"
	"tracker/internal/pkg/errs"
)

type partnerRepository struct {
	uow *UnitOfWork
}

// Add stores a partner, replacing any partner with the same id.
func (r *partnerRepository) Add(_ context.Context, aggregate *partner.Partner) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.put(partnerFromDomain(aggregate))
	return nil
}

// Update stores changes to an existing partner.
func (r *partnerRepository) Update(_ context.Context, aggregate *partner.Partner) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.uow.store.partners[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("partner", aggregate.ID())
	}

	r.put(partnerFromDomain(aggregate))
	return nil
}

// Get retrieves a partner by id.
func (r *partnerRepository) Get(_ context.Context, id string) (*partner.Partner, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	rec, ok := r.uow.store.partners[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("partner", id)
	}
	return partnerToDomain(rec)
}

// Delete removes a partner record.
func (r *partnerRepository) Delete(_ context.Context, id string) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}

	partners := r.uow.store.partners
	prev, ok := partners[id]
	if !ok {
		return errs.NewObjectNotFoundError("partner", id)
	}
	delete(partners, id)

	r.uow.record(func() {
		partners[id] = prev
	})
	return nil
}

func (r *partnerRepository) put(rec partnerRecord) {
	partners := r.uow.store.partners
	prev, existed := partners[rec.ID]
	partners[rec.ID] = rec

	r.uow.record(func() {
		if existed {
			partners[rec.ID] = prev
			return
		}
		delete(partners, rec.ID)
	})
}
