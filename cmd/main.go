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

	addBookingNoteHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/add_booking_note"
	cancelBookingHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/create_booking"
	createExceptionHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/create_exception"
	createRuleHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/create_rule"
	createServiceHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/create_service"
	deleteExceptionHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/delete_exception"
	deleteRuleHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/delete_rule"
	deleteServiceHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/delete_service"
	exportBookingsHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/get_dashboard"
	getMeHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/get_me"
	getPublicBookingHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/get_public_booking"
	getServiceHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/get_service"
	healthHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/list_bookings"
	listExceptionsHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/list_exceptions"
	listRulesHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/list_rules"
	listServicesHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/login"
	updateBookingHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/update_booking"
	updateRuleHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/update_rule"
	updateServiceHandler "github.com/m04kA/BookEasy-Service/internal/api/handlers/update_service"
	"github.com/m04kA/BookEasy-Service/internal/api/middleware"
	"github.com/m04kA/BookEasy-Service/internal/config"
	adminRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/booking"
	exceptionRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/exception"
	ruleRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/rule"
	serviceRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/service"
	"github.com/m04kA/BookEasy-Service/internal/integrations/notifier"
	authService "github.com/m04kA/BookEasy-Service/internal/service/auth"
	availabilityService "github.com/m04kA/BookEasy-Service/internal/service/availability"
	bookingsService "github.com/m04kA/BookEasy-Service/internal/service/bookings"
	catalogService "github.com/m04kA/BookEasy-Service/internal/service/catalog"
	reportsService "github.com/m04kA/BookEasy-Service/internal/service/reports"
	createBookingUC "github.com/m04kA/BookEasy-Service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/BookEasy-Service/internal/usecase/get_available_slots"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
	"github.com/m04kA/BookEasy-Service/pkg/metrics"
	"github.com/m04kA/BookEasy-Service/pkg/txmanager"
)

// cancellationNotifier уведомитель с необязательным Close
type cancellationNotifier interface {
	bookingsService.Notifier
	Close() error
}

type nopCloser struct {
	bookingsService.Notifier
}

func (nopCloser) Close() error { return nil }

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithOptions(cfg.Logs.File, cfg.Logs.Level, logger.Options{
		Format:  cfg.Logs.Format,
		Service: cfg.Metrics.ServiceName,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BookEasy-Service...")

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.App.Timezone, err)
	}
	log.Info("Business timezone: %s", location)

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка просто проксирует вызовы
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Plain(db)
	}

	txManager := txmanager.NewTransactionManager(wrappedDB, cfg.Database.TxMaxRetries)
	timeProvider := &createBookingUC.RealTimeProvider{Location: location}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	ruleRepository := ruleRepo.NewRepository(wrappedDB)
	exceptionRepository := exceptionRepo.NewRepository(wrappedDB, location)
	adminRepository := adminRepo.NewRepository(wrappedDB)

	// Уведомления об отмене
	cancelNotifier, err := newNotifier(cfg.Notifier, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to initialize notifier: %v", err)
	}
	log.Info("Cancellation notifier: backend=%s", cfg.Notifier.Backend)

	// Сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txManager,
		cancelNotifier,
		location,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	availabilitySvc := availabilityService.NewService(ruleRepository, exceptionRepository, location, log)
	catalogSvc := catalogService.NewService(serviceRepository, txManager, log)
	reportsSvc := reportsService.NewService(bookingRepository, txManager, timeProvider, log)
	authSvc := authService.NewService(adminRepository, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), timeProvider, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		ruleRepository,
		exceptionRepository,
		txManager,
		timeProvider,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		ruleRepository,
		exceptionRepository,
		timeProvider,
		log,
	)

	// Handlers
	health := healthHandler.NewHandler(db, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getPublicBooking := getPublicBookingHandler.NewHandler(bookingSvc, log)
	login := loginHandler.NewHandler(authSvc, log)

	getMe := getMeHandler.NewHandler(authSvc, log)
	getDashboard := getDashboardHandler.NewHandler(reportsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	addBookingNote := addBookingNoteHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(reportsSvc, timeProvider, log)
	listAllServices := listServicesHandler.NewAdminHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listRules := listRulesHandler.NewHandler(availabilitySvc, log)
	createRule := createRuleHandler.NewHandler(availabilitySvc, log)
	updateRule := updateRuleHandler.NewHandler(availabilitySvc, log)
	deleteRule := deleteRuleHandler.NewHandler(availabilitySvc, log)
	listExceptions := listExceptionsHandler.NewHandler(availabilitySvc, log)
	createException := createExceptionHandler.NewHandler(availabilitySvc, log)
	deleteException := deleteExceptionHandler.NewHandler(availabilitySvc, log)

	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/public/{id}", getPublicBooking.Handle).Methods(http.MethodGet)
	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	authMw := middleware.Auth(authSvc)

	api.Handle("/auth/me", authMw(http.HandlerFunc(getMe.Handle))).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMw)

	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}/notes", addBookingNote.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/export/bookings.csv", exportBookings.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", getService.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/availability-rules", listRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules", createRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability-rules/{id}", updateRule.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/availability-rules/{id}", deleteRule.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/availability-exceptions", listExceptions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-exceptions", createException.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability-exceptions/{id}", deleteException.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся уведомлений, запущенных до остановки сервера
	bookingSvc.Wait()
	if err := cancelNotifier.Close(); err != nil {
		log.Error("Failed to close notifier: %v", err)
	}

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}

// newNotifier выбирает способ доставки уведомлений по конфигурации
func newNotifier(cfg config.NotifierConfig, m *metrics.Metrics, log *logger.Logger) (cancellationNotifier, error) {
	switch cfg.Backend {
	case notifier.BackendWebhook:
		return nopCloser{notifier.NewWebhookNotifier(cfg.WebhookURL, time.Duration(cfg.Timeout)*time.Second, m, log)}, nil
	case notifier.BackendKafka:
		writer := notifier.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		return notifier.NewKafkaNotifier(writer, m, log), nil
	case notifier.BackendLog, "":
		return nopCloser{notifier.NewLogNotifier(m, log)}, nil
	default:
		return nil, fmt.Errorf("unknown notifier backend %q", cfg.Backend)
	}
}
