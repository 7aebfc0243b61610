package commands

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrAddPartnerCommandIsNotConstructed = errors.New(
	"AddPartnerCommand must be created via NewAddPartnerCommand constructor",
)

// AddPartnerCommand represents a request to register a delivery partner.
//
// Example:
//
//	cmd, err := NewAddPartnerCommand("P1")
//	if err != nil {
//	    return err
//	}
//	err = NewAddPartnerCommandHandler(uowFactory).Handle(ctx, cmd)
type AddPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID string

	guard guard.ConstructorGuard
}

// NewAddPartnerCommand creates a command to register a partner.
func NewAddPartnerCommand(partnerID string) (AddPartnerCommand, error) {
	cmd := AddPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return AddPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAddPartnerCommandIsNotConstructed)
}

// PartnerID returns the id of the partner to add.
func (c AddPartnerCommand) PartnerID() string {
	return c.partnerID
}

func (c *AddPartnerCommand) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}

	c.partnerID = partnerID
	return nil
}
