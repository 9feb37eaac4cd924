package stockrepo_test

import (
	"context"
	"testing"
	"time"

	"pressflow/internal/adapters/out/postgres/stockrepo"
	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/stock"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StockMovementRepositoryIntegrationTestSuite provides integration tests for
// the append-only stock journal using PostgreSQL containers.
type StockMovementRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *stockrepo.GormStockMovementRepository
}

func (suite *StockMovementRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&stockrepo.MovementDTO{}))
}

func (suite *StockMovementRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_movements").Error)

	suite.repository = stockrepo.NewGormStockMovementRepository(suite.db)
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestAppend_ValidMovement_Persists() {
	ctx := context.Background()

	movement := suite.createMovement(
		stock.Intake, "PF-PPW-0001", "PP White", 5000, 0, nil, "",
		"jumbo intake", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))

	err := suite.repository.Append(ctx, movement)
	suite.Require().NoError(err)

	movements, err := suite.repository.List(ctx, stock.Filter{})
	suite.Require().NoError(err)
	suite.Require().Len(movements, 1)

	persisted := movements[0]
	suite.Equal(movement.ID(), persisted.ID())
	suite.Equal(stock.Intake, persisted.Type())
	suite.Equal("PF-PPW-0001", persisted.RollBarcode())
	suite.Equal("PP White", persisted.MaterialName())
	suite.True(persisted.Quantity().Cmp(suite.meterage(5000)) == 0)
	suite.True(persisted.ReturnedQuantity().IsZero())
	suite.Nil(persisted.OrderID())
	suite.Equal("jumbo intake", persisted.Description())
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestAppend_ConsumptionWithOrderReference_RoundTrips() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	movement := suite.createMovement(
		stock.Consumption, "PF-PPW-0002", "PP White", 1000, 200, &orderID, "2026-0412",
		"consumed at primary press", time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC))

	err := suite.repository.Append(ctx, movement)
	suite.Require().NoError(err)

	movements, err := suite.repository.List(ctx, stock.Filter{OrderNumber: "2026-0412"})
	suite.Require().NoError(err)
	suite.Require().Len(movements, 1)
	suite.Require().NotNil(movements[0].OrderID())
	suite.Equal(orderID, *movements[0].OrderID())
	suite.True(movements[0].ReturnedQuantity().Cmp(suite.meterage(200)) == 0)
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestList_Filters_NarrowTheJournal() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	entries := []stock.Movement{
		suite.createMovement(stock.Intake, "PF-PPW-0001", "PP White", 5000, 0, nil, "",
			"jumbo intake", base),
		suite.createMovement(stock.Reservation, "PF-PPW-0001", "PP White", 1200, 0, &orderID, "2026-0412",
			"reserved for production", base.Add(time.Hour)),
		suite.createMovement(stock.Consumption, "PF-PPW-0001", "PP White", 1000, 200, &orderID, "2026-0412",
			"consumed at primary press", base.Add(2*time.Hour)),
		suite.createMovement(stock.Intake, "PF-KUS-0001", "Kuse Parlak", 2000, 0, nil, "",
			"sheet intake", base.Add(3*time.Hour)),
	}
	for _, entry := range entries {
		suite.Require().NoError(suite.repository.Append(ctx, entry))
	}

	suite.Run("by type", func() {
		movements, err := suite.repository.List(ctx, stock.Filter{Type: stock.Intake})
		suite.Require().NoError(err)
		suite.Require().Len(movements, 2)
		for _, m := range movements {
			suite.Equal(stock.Intake, m.Type())
		}
	})

	suite.Run("by roll barcode", func() {
		movements, err := suite.repository.List(ctx, stock.Filter{RollBarcode: "PF-KUS-0001"})
		suite.Require().NoError(err)
		suite.Require().Len(movements, 1)
		suite.Equal("Kuse Parlak", movements[0].MaterialName())
	})

	suite.Run("by material", func() {
		movements, err := suite.repository.List(ctx, stock.Filter{MaterialName: "PP White"})
		suite.Require().NoError(err)
		suite.Len(movements, 3)
	})

	suite.Run("by order number", func() {
		movements, err := suite.repository.List(ctx, stock.Filter{OrderNumber: "2026-0412"})
		suite.Require().NoError(err)
		suite.Len(movements, 2)
	})

	suite.Run("combined filters", func() {
		movements, err := suite.repository.List(ctx, stock.Filter{
			Type:        stock.Consumption,
			OrderNumber: "2026-0412",
		})
		suite.Require().NoError(err)
		suite.Require().Len(movements, 1)
		suite.True(movements[0].Quantity().Cmp(suite.meterage(1000)) == 0)
	})
}

func (suite *StockMovementRepositoryIntegrationTestSuite) TestList_OrdersNewestFirst() {
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	oldest := suite.createMovement(stock.Intake, "PF-PPW-0001", "PP White", 5000, 0, nil, "",
		"first intake", base)
	newest := suite.createMovement(stock.Intake, "PF-PPW-0002", "PP White", 4000, 0, nil, "",
		"second intake", base.Add(time.Hour))

	suite.Require().NoError(suite.repository.Append(ctx, oldest))
	suite.Require().NoError(suite.repository.Append(ctx, newest))

	movements, err := suite.repository.List(ctx, stock.Filter{})
	suite.Require().NoError(err)
	suite.Require().Len(movements, 2)
	suite.Equal(newest.ID(), movements[0].ID())
	suite.Equal(oldest.ID(), movements[1].ID())
}

func (suite *StockMovementRepositoryIntegrationTestSuite) meterage(meters float64) kernel.Meterage {
	m, err := kernel.NewMeterage(meters)
	suite.Require().NoError(err)
	return m
}

func (suite *StockMovementRepositoryIntegrationTestSuite) createMovement(
	movementType stock.MovementType,
	rollBarcode string,
	materialName string,
	quantityMeters float64,
	returnedMeters float64,
	orderID *kernel.UUID,
	orderNumber string,
	description string,
	occurredAt time.Time,
) stock.Movement {
	movement, err := stock.NewMovement(
		kernel.NewUUID(), movementType, rollBarcode, materialName,
		suite.meterage(quantityMeters), suite.meterage(returnedMeters),
		orderID, orderNumber, description, occurredAt)
	suite.Require().NoError(err)
	return movement
}

func TestStockMovementRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockMovementRepositoryIntegrationTestSuite))
}
