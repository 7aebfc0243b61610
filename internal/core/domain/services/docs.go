// Package services provides domain services that compute over several
// aggregates at once.
//
// The package includes:
//   - DeliverySchedule: answers time-of-day questions about a partner's orders
//     (latest delivery, orders still due after a given time)
package services
