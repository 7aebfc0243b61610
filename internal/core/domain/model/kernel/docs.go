// Package kernel provides the value objects shared by the tracker's aggregates.
//
// The package includes:
//   - DeliveryTime: a time of day with minute precision, written as HH:MM
//
// Kernel values are immutable and carry a constructor guard, so a zero value
// is never mistaken for a real one (a zero DeliveryTime is not midnight; use
// StartOfDay for that).
package kernel
