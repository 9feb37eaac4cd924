package commands_test

import (
	"testing"
	"time"

	"pressflow/internal/core/application/usecases/commands"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseRollReservationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrderInPlanning(t)
	reservedRoll := fixtureRoll(t, 5000)
	require.NoError(t, reservedRoll.Reserve(aggregate.ID(), aggregate.OrderNumber(), meterage(t, 1200)))
	require.NoError(t, aggregate.AddReservation(order.ReservationRef{
		RollID:      reservedRoll.ID(),
		RollBarcode: reservedRoll.Barcode(),
		Length:      meterage(t, 1200),
		ReservedAt:  time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
	}))
	cmd, err := commands.NewReleaseRollReservationCommand(reservedRoll.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rollRepo := new(MockRollRepository)
	stockRepo := new(MockStockMovementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		rollRepo.On("Get", mock.Anything, reservedRoll.ID()).Return(reservedRoll, nil).Once(),
		rollRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *roll.Roll) bool {
			return r.Reservation() == nil && r.CurrentLength().Cmp(meterage(t, 5000)) == 0
		})).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			_, stillReserved := o.FirstReservedRoll()
			return !stillReserved
		})).Return(nil).Once(),
		uow.On("StockMovementRepository").Return(stockRepo).Once(),
		stockRepo.On("Append", mock.Anything, mock.MatchedBy(func(m stock.Movement) bool {
			return m.Type() == stock.Consumption &&
				m.Quantity().IsZero() &&
				m.ReturnedQuantity().Cmp(meterage(t, 1200)) == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseRollReservationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	rollRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseRollReservationCommandHandler_Handle_OrphanedReservation(t *testing.T) {
	// The reserving order is gone; the release still succeeds and credits
	// the roll. This is the path the reconciliation job exercises.
	ctx := t.Context()
	aggregate := fixtureOrderInPlanning(t)
	reservedRoll := fixtureRoll(t, 5000)
	require.NoError(t, reservedRoll.Reserve(aggregate.ID(), aggregate.OrderNumber(), meterage(t, 1200)))
	cmd, err := commands.NewReleaseRollReservationCommand(reservedRoll.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	rollRepo := new(MockRollRepository)
	stockRepo := new(MockStockMovementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		rollRepo.On("Get", mock.Anything, reservedRoll.ID()).Return(reservedRoll, nil).Once(),
		rollRepo.On("Update", mock.Anything, mock.AnythingOfType("*roll.Roll")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID().String())).Once(),
		uow.On("StockMovementRepository").Return(stockRepo).Once(),
		stockRepo.On("Append", mock.Anything, mock.AnythingOfType("stock.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseRollReservationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseRollReservationCommandHandler_Handle_NoActiveReservation(t *testing.T) {
	ctx := t.Context()
	freeRoll := fixtureRoll(t, 5000)
	cmd, err := commands.NewReleaseRollReservationCommand(freeRoll.ID())
	require.NoError(t, err)

	rollRepo := new(MockRollRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		rollRepo.On("Get", mock.Anything, freeRoll.ID()).Return(freeRoll, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseRollReservationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roll.ErrNoActiveReservation)
	assert.Nil(t, freeRoll.Reservation())
	uow.AssertNotCalled(t, "Commit", ctx)
}
