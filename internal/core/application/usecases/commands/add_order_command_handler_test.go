package commands_test

import (
	"context"
	"errors"
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestAddOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderCommand("O1", "01:15")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == "O1" && o.DeliveryTime().Minutes() == 75
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewAddOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAddOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderCommand("O1", "01:15")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderCommand("O1", "01:15")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderCommand("O1", "01:15")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderCommandHandler_Handle_OverwritesAndKeepsAssignment(t *testing.T) {
	tr := newTracker()
	tr.mustAddOrder(t, "O1", "01:15")
	tr.mustAddPartner(t, "P1")
	require.NoError(t, tr.assign(t, "O1", "P1"))

	tr.mustAddOrder(t, "O1", "23:59")

	o, err := tr.store.FindOrder(t.Context(), "O1")
	require.NoError(t, err)
	assert.Equal(t, "23:59", o.DeliveryTime().String())
	assert.Equal(t, []string{"O1"}, tr.orderIDs(t, "P1"))
	assert.Equal(t, 1, tr.partner(t, "P1").NumberOfOrders())
}
