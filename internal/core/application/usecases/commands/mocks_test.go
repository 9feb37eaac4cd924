package commands_test

import (
	"context"

	"pressflow/internal/core/application/usecases/commands"
	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithReservations(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRollRepository struct{ mock.Mock }

func (m *MockRollRepository) Add(ctx context.Context, r *roll.Roll) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRollRepository) Update(ctx context.Context, r *roll.Roll) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRollRepository) Get(ctx context.Context, id kernel.UUID) (*roll.Roll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roll.Roll), args.Error(1)
}

func (m *MockRollRepository) GetByBarcode(ctx context.Context, barcode string) (*roll.Roll, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roll.Roll), args.Error(1)
}

func (m *MockRollRepository) GetAllByMaterial(ctx context.Context, materialName string) ([]*roll.Roll, error) {
	args := m.Called(ctx, materialName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roll.Roll), args.Error(1)
}

func (m *MockRollRepository) GetAllByParentBarcode(ctx context.Context, parentBarcode string) ([]*roll.Roll, error) {
	args := m.Called(ctx, parentBarcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roll.Roll), args.Error(1)
}

func (m *MockRollRepository) GetAllReserved(ctx context.Context) ([]*roll.Roll, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roll.Roll), args.Error(1)
}

func (m *MockRollRepository) GetBarcodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockStockMovementRepository struct{ mock.Mock }

func (m *MockStockMovementRepository) Append(ctx context.Context, movement stock.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) List(ctx context.Context, filter stock.Filter) ([]stock.Movement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stock.Movement), args.Error(1)
}

// MockUoW satisfies OrderUoW, StockUoW and the full UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RollRepository() ports.RollRepository {
	args := m.Called()
	return args.Get(0).(ports.RollRepository)
}

func (m *MockUoW) StockMovementRepository() ports.StockMovementRepository {
	args := m.Called()
	return args.Get(0).(ports.StockMovementRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
