package commands_test

import (
	"testing"

	"pressflow/internal/core/application/usecases/commands"
	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sliceCommand(t *testing.T, rollID kernel.UUID, cuts []roll.Cut) commands.SliceRollCommand {
	t.Helper()
	cmd, err := commands.NewSliceRollCommand(rollID, cuts)
	require.NoError(t, err)
	return cmd
}

func TestSliceRollCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	parent := fixtureJumboRoll(t, 5000)
	cmd := sliceCommand(t, parent.ID(), []roll.Cut{{WidthCm: 60}, {WidthCm: 60}})

	rollRepo := new(MockRollRepository)
	stockRepo := new(MockStockMovementRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		rollRepo.On("Get", mock.Anything, parent.ID()).Return(parent, nil).Once(),
		rollRepo.On("GetAllByParentBarcode", mock.Anything, "PF-PPW-0001").
			Return([]*roll.Roll{}, nil).Once(),
		rollRepo.On("GetBarcodesByPrefix", mock.Anything, "PF-PPW").
			Return([]string{"PF-PPW-0001"}, nil).Once(),
		rollRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *roll.Roll) bool {
			return r.IsSliced() && r.CurrentLength().IsZero()
		})).Return(nil).Once(),
		uow.On("StockMovementRepository").Return(stockRepo).Once(),
		rollRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *roll.Roll) bool {
			return r.Barcode() == "PF-PPW-0002" && r.ParentBarcode() == "PF-PPW-0001" &&
				r.CurrentLength().Cmp(meterage(t, 5000)) == 0
		})).Return(nil).Once(),
		stockRepo.On("Append", mock.Anything, mock.MatchedBy(func(m stock.Movement) bool {
			return m.Type() == stock.Intake && m.RollBarcode() == "PF-PPW-0002"
		})).Return(nil).Once(),
		rollRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *roll.Roll) bool {
			return r.Barcode() == "PF-PPW-0003"
		})).Return(nil).Once(),
		stockRepo.On("Append", mock.Anything, mock.MatchedBy(func(m stock.Movement) bool {
			return m.RollBarcode() == "PF-PPW-0003"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSliceRollCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	rollRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSliceRollCommandHandler_Handle_AlreadySliced(t *testing.T) {
	ctx := t.Context()
	parent := fixtureJumboRoll(t, 5000)
	existingChild := fixtureRoll(t, 2000)
	cmd := sliceCommand(t, parent.ID(), []roll.Cut{{WidthCm: 60}})

	rollRepo := new(MockRollRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		rollRepo.On("Get", mock.Anything, parent.ID()).Return(parent, nil).Once(),
		rollRepo.On("GetAllByParentBarcode", mock.Anything, "PF-PPW-0001").
			Return([]*roll.Roll{existingChild}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSliceRollCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRollHasChildren)
	rollRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSliceRollCommandHandler_Handle_WidthExceeded(t *testing.T) {
	ctx := t.Context()
	parent := fixtureJumboRoll(t, 5000) // 130 cm wide
	cmd := sliceCommand(t, parent.ID(), []roll.Cut{{WidthCm: 80}, {WidthCm: 80}})

	rollRepo := new(MockRollRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RollRepository").Return(rollRepo).Once(),
		rollRepo.On("Get", mock.Anything, parent.ID()).Return(parent, nil).Once(),
		rollRepo.On("GetAllByParentBarcode", mock.Anything, "PF-PPW-0001").
			Return([]*roll.Roll{}, nil).Once(),
		rollRepo.On("GetBarcodesByPrefix", mock.Anything, "PF-PPW").
			Return([]string{"PF-PPW-0001"}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSliceRollCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, roll.ErrWidthExceeded)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewSliceRollCommand(t *testing.T) {
	t.Run("should require at least one cut", func(t *testing.T) {
		_, err := commands.NewSliceRollCommand(kernel.NewUUID(), nil)
		require.ErrorIs(t, err, commands.ErrCutsAreRequired)
	})

	t.Run("should reject non-positive cut widths", func(t *testing.T) {
		_, err := commands.NewSliceRollCommand(kernel.NewUUID(), []roll.Cut{{WidthCm: -5}})
		require.Error(t, err)
	})
}
