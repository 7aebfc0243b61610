// Package commands contains business operations that modify tracker state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions keep orders, partners and assignments consistent with each other.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW manages transactions that change partners and their assignments
	// but never order records.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
		AssignmentRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW manages transactions across orders, partners and assignments.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   partnerRepo := uow.PartnerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
