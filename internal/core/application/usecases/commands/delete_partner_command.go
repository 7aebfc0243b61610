package commands

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrDeletePartnerCommandIsNotConstructed = errors.New(
	"DeletePartnerCommand must be created via NewDeletePartnerCommand constructor",
)

// DeletePartnerCommand represents a request to remove a delivery partner.
// The partner's orders are kept and become unassigned.
type DeletePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID string

	guard guard.ConstructorGuard
}

// NewDeletePartnerCommand creates a command to remove a partner.
func NewDeletePartnerCommand(partnerID string) (DeletePartnerCommand, error) {
	cmd := DeletePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return DeletePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner to remove.
func (c DeletePartnerCommand) PartnerID() string {
	return c.partnerID
}

func (c *DeletePartnerCommand) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}

	c.partnerID = partnerID
	return nil
}
