package queries

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrGetPartnerQueryIsNotConstructed = errors.New(
	"GetPartnerQuery must be created via NewGetPartnerQuery constructor",
)

// GetPartnerQuery looks up one delivery partner by id.
type GetPartnerQuery struct { //nolint:recvcheck //using for validation
	partnerID string

	guard guard.ConstructorGuard
}

// NewGetPartnerQuery creates the query for partnerID.
func NewGetPartnerQuery(partnerID string) (GetPartnerQuery, error) {
	query := GetPartnerQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPartnerID(partnerID); err != nil {
		return GetPartnerQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerQueryIsNotConstructed)
}

// PartnerID returns the partner the query is about.
func (q GetPartnerQuery) PartnerID() string {
	return q.partnerID
}

func (q *GetPartnerQuery) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}
	q.partnerID = partnerID
	return nil
}

// GetPartnerQueryResponse is the read model of a delivery partner.
type GetPartnerQueryResponse struct {
	ID             string
	NumberOfOrders int
}
