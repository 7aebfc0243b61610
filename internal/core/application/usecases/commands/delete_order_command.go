package commands

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to remove an order.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to remove.
func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
