package queries

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrGetPartnerOrderCountQueryIsNotConstructed = errors.New(
	"GetPartnerOrderCountQuery must be created via NewGetPartnerOrderCountQuery constructor",
)

// GetPartnerOrderCountQuery counts the orders assigned to a partner.
type GetPartnerOrderCountQuery struct { //nolint:recvcheck //using for validation
	partnerID string

	guard guard.ConstructorGuard
}

// NewGetPartnerOrderCountQuery creates the query for partnerID.
func NewGetPartnerOrderCountQuery(partnerID string) (GetPartnerOrderCountQuery, error) {
	query := GetPartnerOrderCountQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPartnerID(partnerID); err != nil {
		return GetPartnerOrderCountQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrderCountQueryIsNotConstructed)
}

// PartnerID returns the partner the query is about.
func (q GetPartnerOrderCountQuery) PartnerID() string {
	return q.partnerID
}

func (q *GetPartnerOrderCountQuery) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}
	q.partnerID = partnerID
	return nil
}
