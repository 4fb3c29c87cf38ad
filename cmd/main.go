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

	createBookingHandler "github.com/m04kA/KDR-BookingService/internal/api/handlers/create_booking"
	exportBackupHandler "github.com/m04kA/KDR-BookingService/internal/api/handlers/export_backup"
	getStatsHandler "github.com/m04kA/KDR-BookingService/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/m04kA/KDR-BookingService/internal/api/handlers/list_bookings"
	submitContactHandler "github.com/m04kA/KDR-BookingService/internal/api/handlers/submit_contact"
	updateStatusHandler "github.com/m04kA/KDR-BookingService/internal/api/handlers/update_status"
	"github.com/m04kA/KDR-BookingService/internal/api/middleware"
	"github.com/m04kA/KDR-BookingService/internal/config"
	backupSink "github.com/m04kA/KDR-BookingService/internal/infra/backup"
	bookingRepo "github.com/m04kA/KDR-BookingService/internal/infra/storage/booking"
	contactRepo "github.com/m04kA/KDR-BookingService/internal/infra/storage/contact"
	bookingsService "github.com/m04kA/KDR-BookingService/internal/service/bookings"
	contactsService "github.com/m04kA/KDR-BookingService/internal/service/contacts"
	createBookingUC "github.com/m04kA/KDR-BookingService/internal/usecase/create_booking"
	exportBackupUC "github.com/m04kA/KDR-BookingService/internal/usecase/export_backup"
	getStatsUC "github.com/m04kA/KDR-BookingService/internal/usecase/get_stats"
	"github.com/m04kA/KDR-BookingService/pkg/bookingid"
	"github.com/m04kA/KDR-BookingService/pkg/dbmetrics"
	"github.com/m04kA/KDR-BookingService/pkg/logger"
	"github.com/m04kA/KDR-BookingService/pkg/metrics"
	"github.com/m04kA/KDR-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/KDR-BookingService/pkg/txmanager"
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

	log.Info("Starting KDR-BookingService...")
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
		bookingRepository *bookingRepo.Repository
		contactRepository *contactRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	contactSvc := contactsService.NewService(contactRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		bookingid.NewGenerator(),
		txMgr,
		log,
	)

	getStatsUseCase := getStatsUC.NewUseCase(bookingRepository, log)

	exportBackupUseCase := exportBackupUC.NewUseCase(
		bookingRepository,
		contactRepository,
		backupSink.NewFileSink(cfg.Backup.Dir),
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(getStatsUseCase, log)
	submitContact := submitContactHandler.NewHandler(contactSvc, log)
	exportBackup := exportBackupHandler.NewHandler(exportBackupUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check (проверяет доступность базы)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			log.Error("Health check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", updateStatus.Handle).Methods(http.MethodPut)

	// --- Админ-панель ---
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/backup", exportBackup.Handle).Methods(http.MethodGet)

	// --- Обратная связь ---
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)

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
