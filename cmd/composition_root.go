package cmd

import (
	"pressflow/internal/adapters/out/gemini"
	"pressflow/internal/adapters/out/postgres"
	"pressflow/internal/core/application/usecases/commands"
	"pressflow/internal/core/application/usecases/queries"
	"pressflow/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		config:     config,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitGraphicsSpecCommandHandler() commands.SubmitGraphicsSpecCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitGraphicsSpecCommandHandler(f)
}

func (c *CompositionRoot) CreateSetMaterialStatusCommandHandler() commands.SetMaterialStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetMaterialStatusCommandHandler(f)
}

func (c *CompositionRoot) CreatePlanOrderCommandHandler() commands.PlanOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetShipmentStatusCommandHandler() commands.SetShipmentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateIntakeRollCommandHandler() commands.IntakeRollCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIntakeRollCommandHandler(f)
}

func (c *CompositionRoot) CreateSliceRollCommandHandler() commands.SliceRollCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSliceRollCommandHandler(f)
}

func (c *CompositionRoot) CreateReserveRollCommandHandler() commands.ReserveRollCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReserveRollCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseRollReservationCommandHandler() commands.ReleaseRollReservationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseRollReservationCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitStationRecordCommandHandler() commands.SubmitStationRecordCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitStationRecordCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileReservationsCommandHandler() commands.ReconcileReservationsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileReservationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRollsByMaterialQueryHandler() queries.GetRollsByMaterialQueryHandler {
	return queries.NewGetRollsByMaterialQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockMovementsQueryHandler() queries.GetStockMovementsQueryHandler {
	return queries.NewGetStockMovementsQueryHandler(c.gormDB)
}

// CreateDurationAdvisor returns the planning estimate advisor, or nil when no
// API key is configured. The advisor is optional by contract.
func (c *CompositionRoot) CreateDurationAdvisor() ports.DurationAdvisor {
	if c.config.GeminiAPIKey == "" {
		return nil
	}

	advisor, err := gemini.NewDurationAdvisor(c.config.GeminiAPIKey)
	if err != nil {
		return nil
	}
	return advisor
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
