package commands

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to pair an order with a delivery
// partner.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand("O1", "P1")
//	if err != nil {
//	    return err
//	}
//	err = NewAssignOrderCommandHandler(uowFactory).Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order or partner is unknown, nothing changed
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	partnerID string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a pairing command. Both ids are required.
func NewAssignOrderCommand(orderID, partnerID string) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() string {
	return c.orderID
}

// PartnerID returns the partner receiving the order.
func (c AssignOrderCommand) PartnerID() string {
	return c.partnerID
}

func (c *AssignOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}

	c.partnerID = partnerID
	return nil
}
