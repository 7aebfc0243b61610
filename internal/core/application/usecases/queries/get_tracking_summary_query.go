package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetTrackingSummaryQueryIsNotConstructed = errors.New(
	"GetTrackingSummaryQuery must be created via NewGetTrackingSummaryQuery constructor",
)

// GetTrackingSummaryQuery asks for store-wide totals. The snapshot job runs it
// on a schedule.
type GetTrackingSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrackingSummaryQuery creates the query.
func NewGetTrackingSummaryQuery() GetTrackingSummaryQuery {
	return GetTrackingSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingSummaryQueryIsNotConstructed)
}

// GetTrackingSummaryQueryResponse holds the totals at one point in time.
type GetTrackingSummaryQueryResponse struct {
	Orders           int
	Partners         int
	AssignedOrders   int
	UnassignedOrders int
}
