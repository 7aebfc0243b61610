package queries

import (
	"errors"
	"strings"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrGetOrdersLeftAfterTimeQueryIsNotConstructed = errors.New(
	"GetOrdersLeftAfterTimeQuery must be created via NewGetOrdersLeftAfterTimeQuery constructor",
)

// GetOrdersLeftAfterTimeQuery counts a partner's orders due strictly after a
// time of day.
//
// Example:
//
//	query, err := NewGetOrdersLeftAfterTimeQuery("P1", "05:00")
//	if err != nil {
//	    return err // time is not HH:MM
//	}
//	left, err := NewGetOrdersLeftAfterTimeQueryHandler(readModel).Handle(ctx, query)
type GetOrdersLeftAfterTimeQuery struct { //nolint:recvcheck //using for validation
	partnerID string
	after     kernel.DeliveryTime

	guard guard.ConstructorGuard
}

// NewGetOrdersLeftAfterTimeQuery creates the query. after must be in HH:MM form.
func NewGetOrdersLeftAfterTimeQuery(partnerID, after string) (GetOrdersLeftAfterTimeQuery, error) {
	query := GetOrdersLeftAfterTimeQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		query.setPartnerID(partnerID),
		query.setAfter(after),
	); err != nil {
		return GetOrdersLeftAfterTimeQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersLeftAfterTimeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersLeftAfterTimeQueryIsNotConstructed)
}

// PartnerID returns the partner the query is about.
func (q GetOrdersLeftAfterTimeQuery) PartnerID() string {
	return q.partnerID
}

// After returns the threshold time.
func (q GetOrdersLeftAfterTimeQuery) After() kernel.DeliveryTime {
	return q.after
}

func (q *GetOrdersLeftAfterTimeQuery) setPartnerID(partnerID string) error {
	if strings.TrimSpace(partnerID) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}
	q.partnerID = partnerID
	return nil
}

func (q *GetOrdersLeftAfterTimeQuery) setAfter(value string) error {
	after, err := kernel.ParseDeliveryTime(value)
	if err != nil {
		return err
	}
	q.after = after
	return nil
}
