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

	addClosedDateHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/add_closed_date"
	checkClosedDateHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/check_closed_date"
	getAvailabilityHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/get_availability"
	getAvailabilityRangeHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/get_availability_range"
	getAvailabilitySummaryHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/get_availability_summary"
	getBusinessHoursHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/get_business_hours"
	getClosedDatesHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/get_closed_dates"
	removeClosedDateHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/remove_closed_date"
	updateBusinessHoursHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/update_business_hours"
	updateClosedDatesBulkHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/update_closed_dates_bulk"
	updateDayHoursHandler "github.com/bookhive/BHS-AvailabilityService/internal/api/handlers/update_day_hours"
	"github.com/bookhive/BHS-AvailabilityService/internal/api/middleware"
	"github.com/bookhive/BHS-AvailabilityService/internal/config"
	appointmentsRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/appointments"
	closedDatesRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/closeddates"
	hoursRepo "github.com/bookhive/BHS-AvailabilityService/internal/infra/storage/hours"
	closedDatesService "github.com/bookhive/BHS-AvailabilityService/internal/service/closeddates"
	scheduleService "github.com/bookhive/BHS-AvailabilityService/internal/service/schedule"
	getAvailabilityUC "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability"
	getAvailabilityRangeUC "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability_range"
	getAvailabilitySummaryUC "github.com/bookhive/BHS-AvailabilityService/internal/usecase/get_availability_summary"
	"github.com/bookhive/BHS-AvailabilityService/pkg/dbmetrics"
	"github.com/bookhive/BHS-AvailabilityService/pkg/logger"
	"github.com/bookhive/BHS-AvailabilityService/pkg/metrics"
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

	log.Info("Starting BHS-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

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

	// Репозитории работают через DBExecutor: с метриками или напрямую
	var dbExec dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExec = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	hoursRepository := hoursRepo.NewRepository(dbExec)
	closedDatesRepository := closedDatesRepo.NewRepository(dbExec)
	appointmentsRepository := appointmentsRepo.NewRepository(dbExec)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(hoursRepository, log)
	closedDatesSvc := closedDatesService.NewService(closedDatesRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		hoursRepository,
		closedDatesRepository,
		appointmentsRepository,
		log,
	)
	getAvailabilityRangeUseCase := getAvailabilityRangeUC.NewUseCase(
		hoursRepository,
		closedDatesRepository,
		appointmentsRepository,
		log,
	)
	getAvailabilitySummaryUseCase := getAvailabilitySummaryUC.NewUseCase(
		hoursRepository,
		closedDatesRepository,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAvailabilityRange := getAvailabilityRangeHandler.NewHandler(getAvailabilityRangeUseCase, log)
	getAvailabilitySummary := getAvailabilitySummaryHandler.NewHandler(getAvailabilitySummaryUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	updateDayHours := updateDayHoursHandler.NewHandler(scheduleSvc, log)
	getClosedDates := getClosedDatesHandler.NewHandler(closedDatesSvc, log)
	addClosedDate := addClosedDateHandler.NewHandler(closedDatesSvc, log)
	removeClosedDate := removeClosedDateHandler.NewHandler(closedDatesSvc, log)
	updateClosedDatesBulk := updateClosedDatesBulkHandler.NewHandler(closedDatesSvc, log)
	checkClosedDate := checkClosedDateHandler.NewHandler(closedDatesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/businesses/{businessId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/availability/range",
		getAvailabilityRange.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/availability/summary",
		getAvailabilitySummary.Handle).Methods(http.MethodGet)

	// --- Рабочие часы ---
	api.HandleFunc("/businesses/{businessId}/hours",
		getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/hours",
		updateBusinessHours.Handle).Methods(http.MethodPut)
	api.HandleFunc("/businesses/{businessId}/hours/{day}",
		updateDayHours.Handle).Methods(http.MethodPut)

	// --- Закрытые даты ---
	// bulk регистрируется раньше {date}, чтобы роутер не принял "bulk" за дату
	api.HandleFunc("/businesses/{businessId}/closed-dates",
		getClosedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/closed-dates",
		addClosedDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/businesses/{businessId}/closed-dates/bulk",
		updateClosedDatesBulk.Handle).Methods(http.MethodPut)
	api.HandleFunc("/businesses/{businessId}/closed-dates/{date}",
		removeClosedDate.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/businesses/{businessId}/closed-dates/{date}",
		checkClosedDate.Handle).Methods(http.MethodGet)

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
