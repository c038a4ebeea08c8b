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
	_ "time/tzdata"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBooking/internal/api"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getOpeningHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_opening_hours"
	getServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_services"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

// appointmentStore все операции хранилища, нужные сервисам и use cases
type appointmentStore interface {
	createAppointmentUC.AppointmentRepository
	appointmentsService.AppointmentRepository
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting salon booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Собираем расписание и каталог
	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}
	hours, err := cfg.OpeningHours()
	if err != nil {
		log.Fatal("Invalid opening hours: %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		log.Fatal("Invalid service catalog: %v", err)
	}
	sched := scheduler.New(hours, cfg.Schedule.SlotStepMinutes, location)
	log.Info("Schedule ready: timezone=%s, step=%dm, %d working days, %d services",
		location, cfg.Schedule.SlotStepMinutes, len(hours.Windows()), len(catalog.List()))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		store  appointmentStore
		txMgr  txManager
		pinger healthHandler.Pinger
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		store = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		pinger = wrappedDB

	case config.StorageDriverMemory:
		store = memory.NewRepository()
		txMgr = txmanager.NewLocalManager()
		log.Warn("Using in-memory storage: appointments are lost on restart")
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalog, hours)
	appointmentsSvc := appointmentsService.NewService(store, sched, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, catalog, sched, metricsCollector, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(store, catalog, sched, txMgr, metricsCollector, log)

	// Настраиваем роутер
	router := api.NewRouter(api.Handlers{
		Health:            healthHandler.NewHandler(pinger, log),
		GetServices:       getServicesHandler.NewHandler(catalogSvc),
		GetOpeningHours:   getOpeningHoursHandler.NewHandler(catalogSvc),
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		CreateAppointment: createAppointmentHandler.NewHandler(createAppointmentUseCase, log),
		GetAppointment:    getAppointmentHandler.NewHandler(appointmentsSvc, log),
		ListAppointments:  listAppointmentsHandler.NewHandler(appointmentsSvc, log),
	}, api.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		AccessLog:   log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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
