package partner

import (
	"errors"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

// Domain errors for partner operations.
var (
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrPartnerHasNoOrders is returned when releasing an order from a partner that holds none.
	ErrPartnerHasNoOrders = errors.New("partner has no assigned orders")
)

// Partner represents a delivery partner known to the tracker.
//
// Key responsibilities:
//   - Holding the partner identity
//   - Counting the orders currently assigned to the partner
//
// Example usage:
//
//	p, err := partner.NewPartner("P1")
//	if err != nil {
//	    // Handle construction error
//	}
//	p.AssignOrder()
//	fmt.Println(p.NumberOfOrders()) // 1
type Partner struct {
	// id uniquely identifies the partner
	id string
	// numberOfOrders is the count of currently assigned orders
	numberOfOrders int
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewPartner creates a partner with no assigned orders.
//
// Parameters:
//   - id: Unique identifier for the partner (must not be blank)
//
// Returns:
//   - *Partner: A partner ready to receive orders
//   - error: Validation error if id is blank
func NewPartner(id string) (*Partner, error) {
	return RestorePartner(id, 0)
}

// RestorePartner reconstructs a Partner from its stored representation,
// including how many orders it holds.
//
// Parameters:
//   - id: Unique identifier for the partner
//   - numberOfOrders: Number of assigned orders (must not be negative)
//
// Returns:
//   - *Partner: Restored partner aggregate
//   - error: Joined validation errors if any parameter is invalid
func RestorePartner(id string, numberOfOrders int) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setNumberOfOrders(numberOfOrders),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the Partner was built through a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by identifier.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id == other.id
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() string {
	return p.id
}

// NumberOfOrders returns how many orders are currently assigned to the partner.
func (p *Partner) NumberOfOrders() int {
	return p.numberOfOrders
}

// AssignOrder records one more order assigned to the partner.
func (p *Partner) AssignOrder() {
	p.numberOfOrders++
}

// UnassignOrder records that one of the partner's orders was taken away.
//
// Returns ErrPartnerHasNoOrders if the partner holds no orders; the count is
// left unchanged in that case.
func (p *Partner) UnassignOrder() error {
	if p.numberOfOrders == 0 {
		return ErrPartnerHasNoOrders
	}
	p.numberOfOrders--
	return nil
}

func (p *Partner) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("partner id")
	}
	p.id = id
	return nil
}

func (p *Partner) setNumberOfOrders(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("number of orders", n, 0, "unbounded")
	}
	p.numberOfOrders = n
	return nil
}
