package commands_test

import (
	"testing"

	"pressflow/internal/core/application/usecases/commands"
	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReserveRollCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrderInPlanning(t)
	targetRoll := fixtureRoll(t, 5000)
	cmd, err := commands.NewReserveRollCommand(aggregate.ID(), targetRoll.ID(), meterage(t, 1200))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rollRepo := new(MockRollRepository)
	stockRepo := new(MockStockMovementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		rollRepo.On("Get", mock.Anything, targetRoll.ID()).Return(targetRoll, nil).Once(),
		rollRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *roll.Roll) bool {
			return r.Reservation() != nil && r.CurrentLength().Cmp(meterage(t, 3800)) == 0
		})).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			rolls := o.MaterialPlan().ReservedRolls()
			return len(rolls) == 1 && rolls[0].RollBarcode == targetRoll.Barcode()
		})).Return(nil).Once(),
		uow.On("StockMovementRepository").Return(stockRepo).Once(),
		stockRepo.On("Append", mock.Anything, mock.MatchedBy(func(m stock.Movement) bool {
			return m.Type() == stock.Reservation && m.Quantity().Cmp(meterage(t, 1200)) == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveRollCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	rollRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReserveRollCommandHandler_Handle_AlreadyReserved(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrderInPlanning(t)
	targetRoll := fixtureRoll(t, 5000)
	require.NoError(t, targetRoll.Reserve(kernel.NewUUID(), "2026-0999", meterage(t, 500)))
	cmd, err := commands.NewReserveRollCommand(aggregate.ID(), targetRoll.ID(), meterage(t, 1200))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rollRepo := new(MockRollRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		rollRepo.On("Get", mock.Anything, targetRoll.ID()).Return(targetRoll, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveRollCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roll.ErrRollAlreadyReserved)
	rollRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReserveRollCommandHandler_Handle_RacingWriterLosesOnConditionalUpdate(t *testing.T) {
	// The repository's conditional write is the arbiter under true
	// concurrency: the loser observes AlreadyReserved from Update even though
	// its in-memory snapshot looked free.
	ctx := t.Context()
	aggregate := fixtureOrderInPlanning(t)
	targetRoll := fixtureRoll(t, 5000)
	cmd, err := commands.NewReserveRollCommand(aggregate.ID(), targetRoll.ID(), meterage(t, 1200))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rollRepo := new(MockRollRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		rollRepo.On("Get", mock.Anything, targetRoll.ID()).Return(targetRoll, nil).Once(),
		rollRepo.On("Update", mock.Anything, mock.Anything).Return(roll.ErrRollAlreadyReserved).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveRollCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roll.ErrRollAlreadyReserved)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReserveRollCommandHandler_Handle_InsufficientLength(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrderInPlanning(t)
	targetRoll := fixtureRoll(t, 1000)
	cmd, err := commands.NewReserveRollCommand(aggregate.ID(), targetRoll.ID(), meterage(t, 1200))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rollRepo := new(MockRollRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		rollRepo.On("Get", mock.Anything, targetRoll.ID()).Return(targetRoll, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveRollCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roll.ErrInsufficientLength)
	uow.AssertNotCalled(t, "Commit", ctx)
}
