package commands_test

import (
	"context"
	"testing"

	"tracker/internal/adapters/out/memory"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/partner"

	"github.com/stretchr/testify/require"
)

type storeUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storeUoWFactory) Create() commands.UoW { return f.factory.Create() }

type storeOrderUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storeOrderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

type storePartnerUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storePartnerUoWFactory) Create() commands.PartnerUoW { return f.factory.Create() }

// tracker bundles a store with every command handler bound to it.
type tracker struct {
	store         *memory.Store
	addOrder      commands.AddOrderCommandHandler
	addPartner    commands.AddPartnerCommandHandler
	assignOrder   commands.AssignOrderCommandHandler
	deletePartner commands.DeletePartnerCommandHandler
	deleteOrder   commands.DeleteOrderCommandHandler
}

func newTracker() *tracker {
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)

	return &tracker{
		store:         store,
		addOrder:      commands.NewAddOrderCommandHandler(storeOrderUoWFactory{factory}),
		addPartner:    commands.NewAddPartnerCommandHandler(storePartnerUoWFactory{factory}),
		assignOrder:   commands.NewAssignOrderCommandHandler(storeUoWFactory{factory}),
		deletePartner: commands.NewDeletePartnerCommandHandler(storePartnerUoWFactory{factory}),
		deleteOrder:   commands.NewDeleteOrderCommandHandler(storeUoWFactory{factory}),
	}
}

func (tr *tracker) mustAddOrder(t *testing.T, id, deliveryTime string) {
	t.Helper()
	cmd, err := commands.NewAddOrderCommand(id, deliveryTime)
	require.NoError(t, err)
	require.NoError(t, tr.addOrder.Handle(t.Context(), cmd))
}

func (tr *tracker) mustAddPartner(t *testing.T, id string) {
	t.Helper()
	cmd, err := commands.NewAddPartnerCommand(id)
	require.NoError(t, err)
	require.NoError(t, tr.addPartner.Handle(t.Context(), cmd))
}

func (tr *tracker) assign(t *testing.T, orderID, partnerID string) error {
	t.Helper()
	cmd, err := commands.NewAssignOrderCommand(orderID, partnerID)
	require.NoError(t, err)
	return tr.assignOrder.Handle(t.Context(), cmd)
}

func (tr *tracker) partner(t *testing.T, id string) *partner.Partner {
	t.Helper()
	p, err := tr.store.FindPartner(context.Background(), id)
	require.NoError(t, err)
	return p
}

// orderIDs returns the ids of the orders assigned to partnerID.
func (tr *tracker) orderIDs(t *testing.T, partnerID string) []string {
	t.Helper()
	orders, err := tr.store.FindOrdersByPartner(context.Background(), partnerID)
	require.NoError(t, err)
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}
