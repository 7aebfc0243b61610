package memory_test

import (
	"context"
	"testing"

	"tracker/internal/adapters/out/memory"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyReadModel(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()

	ids, err := store.ListOrderIDs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	summary, err := store.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, ports.TrackingSummary{}, summary)
	assert.Zero(t, summary.UnassignedOrders())

	_, err = store.FindOrder(ctx, "O1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = store.FindPartner(ctx, "P1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = store.FindOrdersByPartner(ctx, "P1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_ReadModelReflectsCommittedState(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	for _, tc := range []struct {
		id      string
		minutes int
	}{
		{"O3", 200},
		{"O1", 75},
		{"O2", 610},
	} {
		due, err := kernel.NewDeliveryTime(tc.minutes)
		require.NoError(t, err)
		o, err := order.NewOrder(tc.id, due)
		require.NoError(t, err)
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	p, err := partner.NewPartner("P1")
	require.NoError(t, err)
	p.AssignOrder()
	p.AssignOrder()
	require.NoError(t, uow.PartnerRepository().Add(ctx, p))
	require.NoError(t, uow.AssignmentRepository().Assign(ctx, "O2", "P1"))
	require.NoError(t, uow.AssignmentRepository().Assign(ctx, "O1", "P1"))
	require.NoError(t, uow.Commit(ctx))

	ids, err := store.ListOrderIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"O1", "O2", "O3"}, ids)

	orders, err := store.FindOrdersByPartner(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "O1", orders[0].ID())
	assert.Equal(t, "O2", orders[1].ID())

	found, err := store.FindPartner(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 2, found.NumberOfOrders())

	summary, err := store.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Orders)
	assert.Equal(t, 1, summary.Partners)
	assert.Equal(t, 2, summary.AssignedOrders)
	assert.Equal(t, 1, summary.UnassignedOrders())
}

func TestStore_ReturnedAggregatesAreCopies(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	p, err := partner.NewPartner("P1")
	require.NoError(t, err)
	require.NoError(t, uow.PartnerRepository().Add(ctx, p))
	require.NoError(t, uow.Commit(ctx))

	p.AssignOrder()

	found, err := store.FindPartner(ctx, "P1")
	require.NoError(t, err)
	assert.Zero(t, found.NumberOfOrders())
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	store := memory.NewStore()

	_, err := store.FindOrder(ctx, "O1")
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.ListOrderIDs(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.Summarize(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
