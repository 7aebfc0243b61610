package queries

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up one order by id.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a lookup for orderID.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}
	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id to look up.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID           string
	DeliveryTime string // HH:MM
}
