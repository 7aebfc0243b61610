package commands

import (
	"context"
)

// DeletePartnerCommandHandler removes delivery partners.
type DeletePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner removal.
func NewDeletePartnerCommandHandler(uowFactory PartnerUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases every order of the partner and then deletes it.
// Returns errs.ErrObjectNotFound for an unknown partner.
func (h DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	if _, err := partnerRepo.Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	if _, err := uow.AssignmentRepository().ReleasePartner(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	if err := partnerRepo.Delete(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
