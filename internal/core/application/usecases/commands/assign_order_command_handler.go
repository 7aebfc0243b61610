package commands

import (
	"context"
)

// AssignOrderCommandHandler pairs orders with delivery partners.
// The assignment and both partners' counts change in one transaction.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand("O1", "P1")
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("unknown order or partner")
//	case err != nil:
//	    log.Printf("assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the order to the partner.
//
// Both must exist, otherwise errs.ErrObjectNotFound is returned and nothing
// changes. Assigning an order to the partner that already holds it is a
// no-op. An order held by another partner is moved and that partner's count
// goes down by one.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	target, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	currentID, assigned, err := assignmentRepo.PartnerOf(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if assigned && currentID == target.ID() {
		return nil
	}

	if assigned {
		current, getErr := partnerRepo.Get(ctx, currentID)
		if getErr != nil {
			return getErr
		}
		if err = current.UnassignOrder(); err != nil {
			return err
		}
		if err = partnerRepo.Update(ctx, current); err != nil {
			return err
		}
	}

	if err = assignmentRepo.Assign(ctx, cmd.OrderID(), target.ID()); err != nil {
		return err
	}

	target.AssignOrder()
	if err = partnerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
