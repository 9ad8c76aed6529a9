package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	checkAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_availability"
	completeRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/complete_rental"
	createRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_rental"
	getPlanHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_plan"
	getRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_rental"
	getRenterRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_renter_rentals"
	listPlansHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_plans"
	previewReturnHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/preview_return"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	fleetServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/fleetservice"
	renterServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/renterservice"
	"github.com/m04kA/SMC-RentalService/internal/jobs"
	"github.com/m04kA/SMC-RentalService/internal/scheduler"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	completeRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/complete_rental"
	createRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	path := configPath
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from %s", path)

	// Метрики. При выключенных метриках collector остаётся nil, его методы ничего не делают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем интеграционных клиентов
	renterClient := renterServiceClient.NewClient(
		cfg.RenterService.URL,
		time.Duration(cfg.RenterService.Timeout)*time.Second,
		log,
	)
	fleetClient := fleetServiceClient.NewClient(
		cfg.FleetService.URL,
		time.Duration(cfg.FleetService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (RenterService=%s timeout=%ds, FleetService=%s timeout=%ds)",
		cfg.RenterService.URL, cfg.RenterService.Timeout, cfg.FleetService.URL, cfg.FleetService.Timeout)

	// Репозитории и менеджер транзакций
	rentalRepository := rentalRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	rentalSvc := rentalsService.NewService(rentalRepository, log)

	// Инициализируем use cases
	createRentalUseCase := createRentalUC.NewUseCase(
		rentalRepository,
		renterClient,
		fleetClient,
		txMgr,
		metricsCollector,
		log,
	)
	completeRentalUseCase := completeRentalUC.NewUseCase(
		rentalRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listPlans := listPlansHandler.NewHandler(rentalSvc, log)
	getPlan := getPlanHandler.NewHandler(rentalSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(rentalSvc, log)
	createRental := createRentalHandler.NewHandler(createRentalUseCase, log)
	getRental := getRentalHandler.NewHandler(rentalSvc, log)
	getRenterRentals := getRenterRentalsHandler.NewHandler(rentalSvc, log)
	previewReturn := previewReturnHandler.NewHandler(rentalSvc, log)
	completeRental := completeRentalHandler.NewHandler(completeRentalUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Тарифы ---
	api.HandleFunc("/plans", listPlans.Handle).Methods(http.MethodGet)
	api.HandleFunc("/plans/{days}", getPlan.Handle).Methods(http.MethodGet)

	// --- Транспорт ---
	api.HandleFunc("/assets/{assetId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Аренды ---
	api.HandleFunc("/rentals", createRental.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{rentalId}/calculate-return", previewReturn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{rentalId}/complete", completeRental.Handle).Methods(http.MethodPost)

	// История аренд арендатора
	api.HandleFunc("/renters/{renterId}/rentals", getRenterRentals.Handle).Methods(http.MethodGet)

	// Фоновые задачи
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		runner := jobs.NewRunner(rentalRepository, metricsCollector, log)
		sched, err = scheduler.NewScheduler(log, scheduler.Job{
			Name: "OverdueReport",
			Spec: cfg.Scheduler.OverdueReportSpec,
			Run:  runner.OverdueReport,
		})
		if err != nil {
			log.Fatal("Failed to initialize scheduler: %v", err)
		}
		sched.Start()
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
