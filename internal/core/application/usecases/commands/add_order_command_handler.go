package commands

import (
	"context"

	"tracker/internal/core/domain/model/order"
)

// AddOrderCommandHandler stores new orders.
//
// Example:
//
//	handler := NewAddOrderCommandHandler(uowFactory)
//	cmd, _ := NewAddOrderCommand("O1", "01:15")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type AddOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderCommandHandler creates a handler for order registration.
func NewAddOrderCommandHandler(uowFactory OrderUoWFactory) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the order. Re-adding an id overwrites the stored order and
// keeps its assignment.
func (h AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.DeliveryTime())
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

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
