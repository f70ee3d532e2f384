package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	dispatchapp "github.com/shreyasbagave/warehouse/application/dispatch"
	reportapp "github.com/shreyasbagave/warehouse/application/report"
	storageapp "github.com/shreyasbagave/warehouse/application/storage"
	transferapp "github.com/shreyasbagave/warehouse/application/transfer"
	userapp "github.com/shreyasbagave/warehouse/application/user"
	warehouseapp "github.com/shreyasbagave/warehouse/application/warehouse"
	"github.com/shreyasbagave/warehouse/catalog"
	"github.com/shreyasbagave/warehouse/cmd/config"
	redisclient "github.com/shreyasbagave/warehouse/cmd/redis"
	_ "github.com/shreyasbagave/warehouse/docs"
	dispatchRepo "github.com/shreyasbagave/warehouse/repository/dispatch"
	inventoryRepo "github.com/shreyasbagave/warehouse/repository/inventory"
	redisRepo "github.com/shreyasbagave/warehouse/repository/redis"
	"github.com/shreyasbagave/warehouse/repository/sequence"
	storageRepo "github.com/shreyasbagave/warehouse/repository/storage"
	transferRepo "github.com/shreyasbagave/warehouse/repository/transfer"
	tripRepo "github.com/shreyasbagave/warehouse/repository/trip"
	userRepo "github.com/shreyasbagave/warehouse/repository/user"
	warehouseRepo "github.com/shreyasbagave/warehouse/repository/warehouse"
	"github.com/shreyasbagave/warehouse/seed"
	"github.com/shreyasbagave/warehouse/thirdparty/rabbitmq"
	"github.com/shreyasbagave/warehouse/transport"
	"github.com/shreyasbagave/warehouse/utils/logger"
	"go.uber.org/zap"
)

// @title FWMS CONSOLE API
// @version 1.0
// @description Farmer/warehouse logistics console API documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Initialize Redis client when configured; sessions degrade to pure JWT
	// without it
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Optional trip-event publisher
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Generate the warehouse catalog. Seed 0 means a fresh roster every start.
	catalogSeed := cfg.Catalog.Seed
	if catalogSeed == 0 {
		catalogSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(catalogSeed))
	roster := catalog.Generate(rng, cfg.Catalog.Size)
	logger.Info("Warehouse catalog generated", zap.Int("size", len(roster)), zap.Int64("seed", catalogSeed))

	// Initialize repositories over one shared ID sequence
	seq := sequence.New(0)
	StorageRepo := storageRepo.NewStorageRepository(seq)
	InventoryRepo := inventoryRepo.NewInventoryRepository(seq)
	TransferRepo := transferRepo.NewTransferRepository(seq)
	TripRepo := tripRepo.NewTripRepository(seq)
	DispatchRepo := dispatchRepo.NewDispatchRepository(seq)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(roster)
	UserRepo := userRepo.NewUserRepository(seq)
	RedisRepo := redisRepo.NewRepository()

	// Install demo records
	if err := seed.Demo(context.Background(), seed.Repos{
		Storage:   StorageRepo,
		Inventory: InventoryRepo,
		Transfer:  TransferRepo,
		Trip:      TripRepo,
		Dispatch:  DispatchRepo,
	}); err != nil {
		logger.Fatal("err seed demo data", zap.Error(err))
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	StorageApp := storageapp.NewStorageApp(StorageRepo, InventoryRepo)
	TransferApp := transferapp.NewTransferApp(TransferRepo, TripRepo, InventoryRepo, publisher)
	DispatchApp := dispatchapp.NewDispatchApp(DispatchRepo)
	WarehouseApp := warehouseapp.NewWarehouseApp(WarehouseRepo)
	ReportApp := reportapp.NewReportApp(StorageRepo, InventoryRepo, TransferRepo, TripRepo, DispatchRepo, WarehouseRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		StorageApp:   StorageApp,
		TransferApp:  TransferApp,
		DispatchApp:  DispatchApp,
		WarehouseApp: WarehouseApp,
		ReportApp:    ReportApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
