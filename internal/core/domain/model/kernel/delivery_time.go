package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

const (
	// MinutesPerHour is the number of minutes in one hour.
	MinutesPerHour = 60
	// MinutesPerDay is the number of minutes in one day. Valid delivery times
	// lie in [0, MinutesPerDay).
	MinutesPerDay = 24 * MinutesPerHour
)

// ErrDeliveryTimeIsNotConstructed is returned when a zero-value DeliveryTime is used.
var ErrDeliveryTimeIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery time must be created via NewDeliveryTime, ParseDeliveryTime or StartOfDay")

// DeliveryTime is the time of day an order is due, stored as minutes since
// midnight. Its textual form is zero-padded HH:MM.
//
// Example:
//
//	t, err := kernel.ParseDeliveryTime("10:10")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t.Minutes()) // 610
//	fmt.Println(t)           // 10:10
type DeliveryTime struct { //nolint:recvcheck //using for validation
	minutes int
	guard   guard.ConstructorGuard
}

// NewDeliveryTime creates a DeliveryTime from minutes since midnight.
//
// Returns an out-of-range error unless 0 <= minutes < MinutesPerDay.
func NewDeliveryTime(minutes int) (DeliveryTime, error) {
	t := DeliveryTime{guard: guard.NewConstructorGuard()}
	if err := t.setMinutes(minutes); err != nil {
		return DeliveryTime{}, err
	}
	return t, nil
}

// ParseDeliveryTime parses an HH:MM clock value. One- or two-digit fields are
// accepted ("9:05" and "09:05" are the same time); hours must be 0..23 and
// minutes 0..59.
//
// Example:
//
//	t, err := kernel.ParseDeliveryTime("03:20")
//	// t.Minutes() == 200
func ParseDeliveryTime(value string) (DeliveryTime, error) {
	rawHours, rawMinutes, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return DeliveryTime{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery time", fmt.Errorf("%q is not in HH:MM format", value))
	}

	hours, hoursErr := parseClockField("hours", rawHours)
	minutes, minutesErr := parseClockField("minutes", rawMinutes)
	if err := errors.Join(hoursErr, minutesErr); err != nil {
		return DeliveryTime{}, err
	}

	var rangeErrs []error
	if hours >= MinutesPerDay/MinutesPerHour {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("hours", hours, 0, 23))
	}
	if minutes >= MinutesPerHour {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, 59))
	}
	if err := errors.Join(rangeErrs...); err != nil {
		return DeliveryTime{}, err
	}

	return NewDeliveryTime(hours*MinutesPerHour + minutes)
}

// StartOfDay returns 00:00, the value reported for a partner without orders.
func StartOfDay() DeliveryTime {
	return DeliveryTime{guard: guard.NewConstructorGuard()}
}

// Validate reports whether t was built through a constructor.
func (t DeliveryTime) Validate() error {
	return t.guard.Validate(ErrDeliveryTimeIsNotConstructed)
}

// Minutes returns the number of minutes since midnight.
func (t DeliveryTime) Minutes() int {
	return t.minutes
}

// IsAfter reports whether t is strictly later in the day than other.
func (t DeliveryTime) IsAfter(other DeliveryTime) bool {
	return t.minutes > other.minutes
}

// IsEqual reports whether both values denote the same minute.
func (t DeliveryTime) IsEqual(other DeliveryTime) bool {
	return t.minutes == other.minutes
}

// String formats t as zero-padded HH:MM.
func (t DeliveryTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/MinutesPerHour, t.minutes%MinutesPerHour)
}

func (t *DeliveryTime) setMinutes(minutes int) error {
	if minutes < 0 || minutes >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("delivery time minutes", minutes, 0, MinutesPerDay-1)
	}
	t.minutes = minutes
	return nil
}

func parseClockField(name, raw string) (int, error) {
	if len(raw) == 0 || len(raw) > 2 {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q must have one or two digits", raw))
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a number", raw))
		}
	}
	return strconv.Atoi(raw)
}
