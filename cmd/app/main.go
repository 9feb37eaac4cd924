package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pressflow/cmd"
	pressflowhttp "pressflow/internal/adapters/in/http"
	"pressflow/internal/adapters/out/postgres/orderrepo"
	"pressflow/internal/adapters/out/postgres/rollrepo"
	"pressflow/internal/adapters/out/postgres/stockrepo"
	"pressflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&rollrepo.RollDTO{},
		&stockrepo.MovementDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReconcileReservationsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := pressflowhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateSubmitGraphicsSpecCommandHandler(),
		app.CreateSetMaterialStatusCommandHandler(),
		app.CreatePlanOrderCommandHandler(),
		app.CreateSubmitStationRecordCommandHandler(),
		app.CreateSetShipmentStatusCommandHandler(),
		app.CreateIntakeRollCommandHandler(),
		app.CreateSliceRollCommandHandler(),
		app.CreateReserveRollCommandHandler(),
		app.CreateReleaseRollReservationCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetRollsByMaterialQueryHandler(),
		app.CreateGetStockMovementsQueryHandler(),
		app.CreateDurationAdvisor(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
