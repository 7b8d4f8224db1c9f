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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bootstrapTenantHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/bootstrap_tenant"
	createAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_appointment"
	getTenantHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_tenant"
	getWeekAvailabilityHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_week_availability"
	healthHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_appointments"
	manageCustomersHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/manage_customers"
	manageServicesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/manage_services"
	tenantSettingsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/tenant_settings"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	"github.com/m04kA/SMC-AgendaService/internal/infra/cache/availability"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/customer"
	tenantRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tenant"
	appointmentsService "github.com/m04kA/SMC-AgendaService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-AgendaService/internal/service/catalog"
	customersService "github.com/m04kA/SMC-AgendaService/internal/service/customers"
	tenantsService "github.com/m04kA/SMC-AgendaService/internal/service/tenants"
	createAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	getWeekAvailabilityUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_week_availability"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

// availabilityCache объединяет интерфейсы кэша, которые ждут use cases и сервисы.
// Пока Redis выключен, переменная остается nil-интерфейсом.
type availabilityCache interface {
	Get(ctx context.Context, tenantID string, day time.Time) ([]byte, bool, error)
	Set(ctx context.Context, tenantID string, day time.Time, payload []byte) error
	Invalidate(ctx context.Context, tenantID string) error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithRotation(cfg.Logs.File, cfg.Logs.Level, logger.Rotation{
		MaxSizeMB:  cfg.Logs.MaxSizeMB,
		MaxBackups: cfg.Logs.MaxBackups,
		MaxAgeDays: cfg.Logs.MaxAgeDays,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// С выключенными метриками обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	readiness := map[string]healthHandler.Pinger{"postgres": wrappedDB}

	// Кэш недельной доступности (опционально)
	var cache availabilityCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: при ошибках Redis use case читает из БД
			log.Warn("Redis is unavailable at %s, availability cache will fall back to database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
		cancel()

		cache = availability.NewCache(rdb, time.Duration(cfg.Redis.AvailabilityTTLSeconds)*time.Second, metricsCollector)
		readiness["redis"] = healthHandler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		log.Info("Availability cache enabled (ttl=%ds)", cfg.Redis.AvailabilityTTLSeconds)
	}

	// Инициализируем репозитории
	tenantRepository := tenantRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		catalogRepository,
		customerRepository,
		appointmentRepository,
		txMgr,
		cache,
		metricsCollector,
		log,
	)

	getWeekAvailabilityUseCase := getWeekAvailabilityUC.NewUseCase(
		tenantRepository,
		appointmentRepository,
		catalogRepository,
		cache,
		cfg.Tenancy.BaseDomain,
		log,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		customerRepository,
		catalogRepository,
		txMgr,
		log,
	)
	tenantsSvc := tenantsService.NewService(
		tenantRepository,
		txMgr,
		cache,
		cfg.Tenancy.BaseDomain,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		txMgr,
		cache,
		log,
	)
	customersSvc := customersService.NewService(
		customerRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getWeekAvailability := getWeekAvailabilityHandler.NewHandler(getWeekAvailabilityUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getTenant := getTenantHandler.NewHandler(tenantsSvc)
	bootstrapTenant := bootstrapTenantHandler.NewHandler(tenantsSvc, log)
	tenantSettings := tenantSettingsHandler.NewHandler(tenantsSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	manageCustomers := manageCustomersHandler.NewHandler(customersSvc, log)
	health := healthHandler.NewHandler(readiness, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (тенант не определяется middleware)
	// ============================================================

	r.HandleFunc("/health", health.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ready", health.HandleReady).Methods(http.MethodGet)

	// Недельная доступность для публичной страницы записи
	r.HandleFunc("/availability/week", getWeekAvailability.Handle).Methods(http.MethodGet)

	// Создание тенанта
	r.HandleFunc("/admin/bootstrap/create-tenant", bootstrapTenant.Handle).Methods(http.MethodPost)

	// ============================================================
	// TENANT ROUTES (тенант из ?tenant= или поддомена)
	// ============================================================

	tenantScoped := r.PathPrefix("").Subrouter()
	tenantScoped.Use(middleware.Tenant(tenantRepository, log))

	// --- Тенант ---
	tenantScoped.HandleFunc("/tenants/me", getTenant.Handle).Methods(http.MethodGet)
	tenantScoped.HandleFunc("/admin/settings", tenantSettings.HandleGet).Methods(http.MethodGet)
	tenantScoped.HandleFunc("/admin/settings", tenantSettings.HandleUpdate).Methods(http.MethodPut)

	// --- Записи ---
	tenantScoped.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	tenantScoped.HandleFunc("/appointments/day", listAppointments.HandleDay).Methods(http.MethodGet)
	tenantScoped.HandleFunc("/appointments/week", listAppointments.HandleWeek).Methods(http.MethodGet)
	tenantScoped.HandleFunc("/appointments/month", listAppointments.HandleMonth).Methods(http.MethodGet)

	// --- Услуги ---
	tenantScoped.HandleFunc("/services", manageServices.HandleList).Methods(http.MethodGet)
	tenantScoped.HandleFunc("/services", manageServices.HandleCreate).Methods(http.MethodPost)
	tenantScoped.HandleFunc("/services/{id:[0-9]+}", manageServices.HandleUpdate).Methods(http.MethodPut)
	tenantScoped.HandleFunc("/services/{id:[0-9]+}", manageServices.HandleDelete).Methods(http.MethodDelete)

	// --- Клиенты ---
	tenantScoped.HandleFunc("/customers/check", manageCustomers.HandleCheck).Methods(http.MethodPost)
	tenantScoped.HandleFunc("/customers/create", manageCustomers.HandleCreate).Methods(http.MethodPost)

	// CORS для браузерного фронтенда
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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
