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

	applyMaskHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/apply_mask"
	calculateTotalsHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/calculate_totals"
	catalogHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/catalog"
	completeScheduleHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/complete_schedule"
	customersHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/customers"
	employeesHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/employees"
	formatMaskHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/format_mask"
	schedulesHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/schedules"
	storesHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/stores"
	upsertScheduleHandler "github.com/m04kA/SMC-StoreAdmin/internal/api/handlers/upsert_schedule"
	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-StoreAdmin/internal/config"
	"github.com/m04kA/SMC-StoreAdmin/internal/infra/migrations"
	customerRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/customer"
	employeeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/service"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	catalogService "github.com/m04kA/SMC-StoreAdmin/internal/service/catalog"
	customersService "github.com/m04kA/SMC-StoreAdmin/internal/service/customers"
	employeesService "github.com/m04kA/SMC-StoreAdmin/internal/service/employees"
	schedulesService "github.com/m04kA/SMC-StoreAdmin/internal/service/schedules"
	storesService "github.com/m04kA/SMC-StoreAdmin/internal/service/stores"
	calculateTotalsUC "github.com/m04kA/SMC-StoreAdmin/internal/usecase/calculate_totals"
	completeScheduleUC "github.com/m04kA/SMC-StoreAdmin/internal/usecase/complete_schedule"
	upsertScheduleUC "github.com/m04kA/SMC-StoreAdmin/internal/usecase/upsert_schedule"
	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-StoreAdmin/pkg/logger"
	"github.com/m04kA/SMC-StoreAdmin/pkg/metrics"
	"github.com/m04kA/SMC-StoreAdmin/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
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

	log.Info("Starting SMC-StoreAdmin...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если выключены - nil, все методы безопасны)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	if cfg.Database.ApplyMigrations {
		if err := migrations.Apply(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка над БД: метрики запросов и транзакция в контексте
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	storeRepository := storeRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	storeSvc := storesService.NewService(storeRepository, log)
	customerSvc := customersService.NewService(customerRepository, storeRepository, log)
	employeeSvc := employeesService.NewService(employeeRepository, storeRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, storeRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, storeRepository, log)

	// Инициализируем use cases
	upsertScheduleUseCase := upsertScheduleUC.NewUseCase(
		scheduleRepository,
		storeRepository,
		customerRepository,
		employeeRepository,
		serviceRepository,
		txMgr,
		metricsCollector,
		log,
	)
	calculateTotalsUseCase := calculateTotalsUC.NewUseCase(storeRepository, serviceRepository, log)
	completeScheduleUseCase := completeScheduleUC.NewUseCase(
		scheduleRepository,
		storeRepository,
		txMgr,
		completeScheduleUC.RealTimeProvider{},
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	applyMask := applyMaskHandler.NewHandler(metricsCollector, log)
	formatMask := formatMaskHandler.NewHandler(metricsCollector, log)
	stores := storesHandler.NewHandler(storeSvc, log)
	customers := customersHandler.NewHandler(customerSvc, log)
	employees := employeesHandler.NewHandler(employeeSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	schedules := schedulesHandler.NewHandler(scheduleSvc, log)
	upsertSchedule := upsertScheduleHandler.NewHandler(upsertScheduleUseCase, log)
	calculateTotals := calculateTotalsHandler.NewHandler(calculateTotalsUseCase, log)
	completeSchedule := completeScheduleHandler.NewHandler(completeScheduleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Маски вызываются на каждое нажатие клавиши - ограничиваем частоту
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
	limiter.StartCleanup(time.Duration(cfg.RateLimit.CleanupInterval)*time.Second, stopCh)

	masks := api.PathPrefix("/masks").Subrouter()
	masks.Use(limiter.Handler)
	masks.HandleFunc("/apply", applyMask.Handle).Methods(http.MethodPost)
	masks.HandleFunc("/format", formatMask.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Магазины ---
	protected.HandleFunc("/stores", stores.List).Methods(http.MethodGet)
	protected.HandleFunc("/stores", stores.Create).Methods(http.MethodPost)
	protected.HandleFunc("/stores/slug-availability", stores.CheckSlug).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}", stores.Get).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}", stores.Update).Methods(http.MethodPut)

	// --- Клиенты ---
	protected.HandleFunc("/stores/{storeId}/customers", customers.List).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}/customers", customers.Create).Methods(http.MethodPost)
	protected.HandleFunc("/stores/{storeId}/customers/{customerId}", customers.Update).Methods(http.MethodPut)
	protected.HandleFunc("/stores/{storeId}/customers/{customerId}", customers.Delete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	protected.HandleFunc("/stores/{storeId}/employees", employees.List).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}/employees", employees.Create).Methods(http.MethodPost)
	protected.HandleFunc("/stores/{storeId}/employees/{employeeId}", employees.Update).Methods(http.MethodPut)
	protected.HandleFunc("/stores/{storeId}/employees/{employeeId}", employees.Delete).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	protected.HandleFunc("/stores/{storeId}/services", catalog.List).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}/services", catalog.Create).Methods(http.MethodPost)
	protected.HandleFunc("/stores/{storeId}/services/{serviceId}", catalog.Update).Methods(http.MethodPut)
	protected.HandleFunc("/stores/{storeId}/services/{serviceId}", catalog.Delete).Methods(http.MethodDelete)

	// --- Записи ---
	// /totals регистрируется раньше /{scheduleId}
	protected.HandleFunc("/stores/{storeId}/schedules/totals", calculateTotals.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stores/{storeId}/schedules", schedules.List).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}/schedules", upsertSchedule.Create).Methods(http.MethodPost)
	protected.HandleFunc("/stores/{storeId}/schedules/{scheduleId}", schedules.Get).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}/schedules/{scheduleId}", upsertSchedule.Update).Methods(http.MethodPut)
	protected.HandleFunc("/stores/{storeId}/schedules/{scheduleId}", schedules.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/stores/{storeId}/schedules/{scheduleId}/complete", completeSchedule.Handle).Methods(http.MethodPatch)

	// CORS оборачивает весь роутер: preflight не совпадает ни с одним маршрутом
	handler := middleware.NewCORS(cfg.CORS.AllowedOrigins).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые горутины (статистика пула, очистка rate limiter)
	close(stopCh)

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
