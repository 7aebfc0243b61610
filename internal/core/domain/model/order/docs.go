// Package order provides the Order aggregate of the tracking system.
//
// An Order is identified by a client-supplied string id and carries the time
// of day it is due. Orders are immutable once created: re-adding an order with
// the same id replaces it as a whole. Which partner an order is assigned to is
// not part of the aggregate; the assignment relation is kept by the store so
// that both of its directions change together.
package order
