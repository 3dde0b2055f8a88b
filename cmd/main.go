package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createEventHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_event"
	createUserHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_user"
	getCommonSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_common_slots"
	getEventHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_event"
	getUserHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_user"
	getUserSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_user_slots"
	listUsersHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_users"
	setAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/set_availability"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	eventRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	eventsService "github.com/m04kA/SMC-SchedulingService/internal/service/events"
	usersService "github.com/m04kA/SMC-SchedulingService/internal/service/users"
	createEventUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_event"
	getCommonSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_common_slots"
	getUserSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_user_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository         *userRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		eventRepository        *eventRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		eventRepository = eventRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		eventRepository = eventRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	usersSvc := usersService.NewService(
		userRepository,
		availabilityRepository,
		eventRepository,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		userRepository,
		log,
	)
	eventsSvc := eventsService.NewService(
		eventRepository,
		log,
	)

	// Инициализируем use cases
	getUserSlotsUseCase := getUserSlotsUC.NewUseCase(
		availabilityRepository,
		eventRepository,
		log,
	)
	getCommonSlotsUseCase := getCommonSlotsUC.NewUseCase(
		availabilityRepository,
		eventRepository,
		log,
	)
	createEventUseCase := createEventUC.NewUseCase(
		eventRepository,
		userRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createUser := createUserHandler.NewHandler(usersSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	getUser := getUserHandler.NewHandler(usersSvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getUserSlots := getUserSlotsHandler.NewHandler(getUserSlotsUseCase, log)
	createEvent := createEventHandler.NewHandler(createEventUseCase, log)
	getEvent := getEventHandler.NewHandler(eventsSvc, log)
	getCommonSlots := getCommonSlotsHandler.NewHandler(getCommonSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Пользователи
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)

	// Свободные слоты пользователя на дату
	api.HandleFunc("/users/{userId}/availability", getUserSlots.Handle).Methods(http.MethodGet)

	// Общие свободные слоты двух пользователей
	api.HandleFunc("/common-availability", getCommonSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Объявление недельного окна доступности
	protected.HandleFunc("/users/{userId}/availability", setAvailability.Handle).Methods(http.MethodPost)

	// События
	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
