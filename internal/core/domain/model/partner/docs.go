// Package partner provides the Partner aggregate: a delivery partner that
// orders are assigned to.
//
// Key business rules:
//   - A partner is identified by a client-supplied, non-blank string id
//   - A new partner has no orders
//   - NumberOfOrders tracks how many orders are currently assigned and never
//     goes below zero
//
// Which orders a partner holds lives in the store's assignment relation; the
// partner keeps only the count that is reported back to clients.
package partner
