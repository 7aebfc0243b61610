// Package ports defines the contracts between the tracker's core and its
// adapters: repositories and the unit of work for the write side, and the
// read model for queries.
package ports

import (
	"context"

	"tracker/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
type PartnerRepository interface {
	// Add stores a partner, replacing any partner with the same id.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update stores changes to an existing partner.
	// Returns errs.ErrObjectNotFound if the partner does not exist.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by id.
	// Returns errs.ErrObjectNotFound if the partner does not exist.
	Get(ctx context.Context, id string) (*partner.Partner, error)

	// Delete removes a partner record. Its assignments are not touched; use
	// AssignmentRepository.ReleasePartner first.
	// Returns errs.ErrObjectNotFound if the partner does not exist.
	Delete(ctx context.Context, id string) error
}
