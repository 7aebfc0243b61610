package queries

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery lists the ids of the orders assigned to a partner.
type GetPartnerOrdersQuery struct { //nolint:recvcheck //using for validation
	partnerID string

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates the query for partnerID.
func NewGetPartnerOrdersQuery(partnerID string) (GetPartnerOrdersQuery, error) {
	query := GetPartnerOrdersQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPartnerID(partnerID); err != nil {
		return GetPartnerOrdersQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the partner the query is about.
func (q GetPartnerOrdersQuery) PartnerID() string {
	return q.partnerID
}

func (q *GetPartnerOrdersQuery) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}
	q.partnerID = partnerID
	return nil
}
