package memory

import (
	"context"
)

type assignmentRepository struct {
	uow *UnitOfWork
}

// Assign relates orderID to partnerID, moving it away from a previous partner.
func (r *assignmentRepository) Assign(_ context.Context, orderID, partnerID string) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}

	assignments := r.uow.store.assignments
	previous, hadPrevious := assignments.Link(partnerID, orderID)

	r.uow.record(func() {
		if hadPrevious {
			assignments.Link(previous, orderID)
			return
		}
		assignments.Unlink(orderID)
	})
	return nil
}

// Unassign removes the assignment of orderID, if any.
func (r *assignmentRepository) Unassign(_ context.Context, orderID string) error {
	if err := r.uow.ensureActive(); err != nil {
		return err
	}

	assignments := r.uow.store.assignments
	partnerID, ok := assignments.Unlink(orderID)
	if !ok {
		return nil
	}

	r.uow.record(func() {
		assignments.Link(partnerID, orderID)
	})
	return nil
}

// PartnerOf returns the partner orderID is assigned to.
func (r *assignmentRepository) PartnerOf(_ context.Context, orderID string) (string, bool, error) {
	if err := r.uow.ensureActive(); err != nil {
		return "", false, err
	}

	partnerID, ok := r.uow.store.assignments.KeyOf(orderID)
	return partnerID, ok, nil
}

// ReleasePartner removes every assignment of partnerID.
func (r *assignmentRepository) ReleasePartner(_ context.Context, partnerID string) ([]string, error) {
	if err := r.uow.ensureActive(); err != nil {
		return nil, err
	}

	assignments := r.uow.store.assignments
	released := assignments.RemoveKey(partnerID)

	r.uow.record(func() {
		for _, orderID := range released {
			assignments.Link(partnerID, orderID)
		}
	})
	return released, nil
}
