package order

import (
	"errors"
	"strings"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order registered with the tracker.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Must have a constructed delivery time
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the client-supplied unique identifier
	id string

	// deliveryTime is the time of day the order is due
	deliveryTime kernel.DeliveryTime

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order.
//
// Parameters:
//   - id: Unique identifier for the order (must not be blank)
//   - deliveryTime: Time of day the order is due
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors otherwise
//
// Example:
//
//	due, _ := kernel.ParseDeliveryTime("01:30")
//	o, err := order.NewOrder("O1", due)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id string, deliveryTime kernel.DeliveryTime) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryTime(deliveryTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from its stored representation.
// It applies the same validation as NewOrder.
func RestoreOrder(id string, deliveryTime kernel.DeliveryTime) (*Order, error) {
	return NewOrder(id, deliveryTime)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// DeliveryTime returns the time of day the order is due.
func (o *Order) DeliveryTime() kernel.DeliveryTime {
	return o.deliveryTime
}

// IsDueAfter reports whether the order is due strictly later than t.
func (o *Order) IsDueAfter(t kernel.DeliveryTime) bool {
	return o.deliveryTime.IsAfter(t)
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setDeliveryTime(deliveryTime kernel.DeliveryTime) error {
	if err := deliveryTime.Validate(); err != nil {
		return err
	}
	o.deliveryTime = deliveryTime
	return nil
}
