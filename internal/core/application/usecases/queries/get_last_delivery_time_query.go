package queries

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrGetLastDeliveryTimeQueryIsNotConstructed = errors.New(
	"GetLastDeliveryTimeQuery must be created via NewGetLastDeliveryTimeQuery constructor",
)

// GetLastDeliveryTimeQuery asks for the latest delivery time among a partner's orders.
type GetLastDeliveryTimeQuery struct { //nolint:recvcheck //using for validation
	partnerID string

	guard guard.ConstructorGuard
}

// NewGetLastDeliveryTimeQuery creates the query for partnerID.
func NewGetLastDeliveryTimeQuery(partnerID string) (GetLastDeliveryTimeQuery, error) {
	query := GetLastDeliveryTimeQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPartnerID(partnerID); err != nil {
		return GetLastDeliveryTimeQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLastDeliveryTimeQuery) Validate() error {
	return q.guard.Validate(ErrGetLastDeliveryTimeQueryIsNotConstructed)
}

// PartnerID returns the partner the query is about.
func (q GetLastDeliveryTimeQuery) PartnerID() string {
	return q.partnerID
}

func (q *GetLastDeliveryTimeQuery) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}
	q.partnerID = partnerID
	return nil
}
