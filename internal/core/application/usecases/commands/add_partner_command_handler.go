package commands

import (
	"context"

	"tracker/internal/core/domain/model/partner"
)

// AddPartnerCommandHandler registers delivery partners.
type AddPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewAddPartnerCommandHandler creates a handler for partner registration.
func NewAddPartnerCommandHandler(uowFactory PartnerUoWFactory) AddPartnerCommandHandler {
	return AddPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a partner with zero orders. Re-adding an existing partner
// resets it: every order it held becomes unassigned, so the stored count
// always matches the assignments.
func (h AddPartnerCommandHandler) Handle(ctx context.Context, cmd AddPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := partner.NewPartner(cmd.PartnerID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.AssignmentRepository().ReleasePartner(ctx, p.ID()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
