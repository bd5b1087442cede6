package commands_test

import (
	"errors"
	"testing"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/commands"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outForDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.ChangeStatus(order.StatusOutForDelivery, "", order.PolicyPermissive))
	return o
}

func TestSendDeliveryRemindersCommandHandler_Handle_RemindsEveryOrder(t *testing.T) {
	ctx := t.Context()
	first := outForDeliveryOrder(t)
	second := outForDeliveryOrder(t)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.StatusOutForDelivery).
			Return([]*order.Order{first, second}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		notifier.On("OrderDueForDelivery", ctx, first).
			Return([]ports.NotificationResult{}).Once(),
		notifier.On("OrderDueForDelivery", ctx, second).
			Return([]ports.NotificationResult{}).Once(),
	)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendDeliveryRemindersCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.NewSendDeliveryRemindersCommand())
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSendDeliveryRemindersCommandHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.StatusOutForDelivery).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendDeliveryRemindersCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.NewSendDeliveryRemindersCommand())
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "OrderDueForDelivery", mock.Anything, mock.Anything)
}

func TestSendDeliveryRemindersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllInStatus", mock.Anything, order.StatusOutForDelivery).
			Return(nil, errors.New("query error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendDeliveryRemindersCommandHandler(factory, notifier)
	err := h.Handle(ctx, commands.NewSendDeliveryRemindersCommand())
	require.Error(t, err)
	notifier.AssertNotCalled(t, "OrderDueForDelivery", mock.Anything, mock.Anything)
}
