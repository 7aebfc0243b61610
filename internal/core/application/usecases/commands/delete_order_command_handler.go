package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes orders together with their assignment.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle unassigns the order, decrementing its partner's count, and deletes
// the order record. Returns errs.ErrObjectNotFound for an unknown order.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()
	assignmentRepo := uow.AssignmentRepository()

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	partnerID, assigned, err := assignmentRepo.PartnerOf(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if assigned {
		if err = assignmentRepo.Unassign(ctx, cmd.OrderID()); err != nil {
			return err
		}

		p, getErr := partnerRepo.Get(ctx, partnerID)
		if getErr != nil {
			return getErr
		}
		if err = p.UnassignOrder(); err != nil {
			return err
		}
		if err = partnerRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
