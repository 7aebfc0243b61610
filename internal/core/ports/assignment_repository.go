package ports

import "context"

// AssignmentRepository maintains the partner → orders relation and its
// inverse. Both directions always change together; partner order counts are
// the caller's responsibility.
type AssignmentRepository interface {
	// Assign relates orderID to partnerID, moving it away from any partner it
	// was assigned to before.
	Assign(ctx context.Context, orderID, partnerID string) error

	// Unassign removes the assignment of orderID, if any.
	Unassign(ctx context.Context, orderID string) error

	// PartnerOf returns the partner orderID is assigned to.
	// The boolean is false for an unassigned order.
	PartnerOf(ctx context.Context, orderID string) (string, bool, error)

	// ReleasePartner removes every assignment of partnerID and returns the
	// released order ids in ascending order.
	ReleasePartner(ctx context.Context, partnerID string) ([]string, error)
}
