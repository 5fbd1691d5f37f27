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

	assignMasterHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/assign_master"
	getAvailableMastersHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_masters"
	getDayManagementHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_management"
	getWeekOverviewHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_week_overview"
	unassignMasterHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/unassign_master"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	salonServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/salonservice"
	assignmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/assignments"
	assignMasterUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/assign_master"
	getDayManagementUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_management"
	getWeekOverviewUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_overview"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-ScheduleService...")
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

	// Инициализируем интеграционного клиента
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (SalonService=%s timeout=%ds)",
		cfg.SalonService.URL, cfg.SalonService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		assignmentRepository *assignmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	assignmentsSvc := assignmentsService.NewService(
		assignmentRepository,
		salonClient,
		log,
	)

	// Инициализируем use cases
	getWeekOverviewUseCase := getWeekOverviewUC.NewUseCase(
		bookingRepository,
		salonClient,
		log,
	)

	getDayManagementUseCase := getDayManagementUC.NewUseCase(
		bookingRepository,
		assignmentRepository,
		salonClient,
		log,
	)

	assignMasterUseCase := assignMasterUC.NewUseCase(
		assignmentRepository,
		salonClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getWeekOverview := getWeekOverviewHandler.NewHandler(getWeekOverviewUseCase, log)
	getDayManagement := getDayManagementHandler.NewHandler(getDayManagementUseCase, log)
	assignMaster := assignMasterHandler.NewHandler(assignMasterUseCase, log)
	unassignMaster := unassignMasterHandler.NewHandler(assignmentsSvc, log)
	getAvailableMasters := getAvailableMastersHandler.NewHandler(assignmentsSvc, log)

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

	// Недельный обзор загрузки салона
	api.HandleFunc("/salons/{salonId}/schedule/week",
		getWeekOverview.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Операторская сетка ---
	// Дневная сетка управления местами
	protected.HandleFunc("/salons/{salonId}/schedule/day",
		getDayManagement.Handle).Methods(http.MethodGet)

	// --- Закрепления мастеров ---
	// Закрепление мастера за местом на дату
	protected.HandleFunc("/salons/{salonId}/places/{placeId}/assignment",
		assignMaster.Handle).Methods(http.MethodPut)

	// Снятие закрепления
	protected.HandleFunc("/salons/{salonId}/places/{placeId}/assignment",
		unassignMaster.Handle).Methods(http.MethodDelete)

	// Мастера, доступные для закрепления за местом
	protected.HandleFunc("/salons/{salonId}/places/{placeId}/available-masters",
		getAvailableMasters.Handle).Methods(http.MethodGet)

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
