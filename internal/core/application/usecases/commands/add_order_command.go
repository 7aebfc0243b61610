package commands

import (
	"errors"
	"strings"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand represents a request to register an order.
// An order with the same id is replaced.
//
// Example:
//
//	cmd, err := NewAddOrderCommand("O1", "10:10")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewAddOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add order: %w", err)
//	}
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	deliveryTime kernel.DeliveryTime

	guard guard.ConstructorGuard
}

// NewAddOrderCommand creates a command to register an order.
// deliveryTime must be in HH:MM form.
func NewAddOrderCommand(orderID string, deliveryTime string) (AddOrderCommand, error) {
	cmd := AddOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryTime(deliveryTime),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to add.
func (c AddOrderCommand) OrderID() string {
	return c.orderID
}

// DeliveryTime returns the parsed delivery time.
func (c AddOrderCommand) DeliveryTime() kernel.DeliveryTime {
	return c.deliveryTime
}

func (c *AddOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setDeliveryTime(value string) error {
	deliveryTime, err := kernel.ParseDeliveryTime(value)
	if err != nil {
		return err
	}

	c.deliveryTime = deliveryTime
	return nil
}
