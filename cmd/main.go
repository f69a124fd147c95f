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

	activateTermHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/activate_term"
	archiveScheduleHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/archive_schedule"
	createTermHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/create_term"
	deleteScheduleHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/delete_schedule"
	generatePeriodsHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/generate_periods"
	getScheduleHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/get_schedule"
	listPeriodsHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/list_periods"
	listSchedulesHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/list_schedules"
	listTermsHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/list_terms"
	saveScheduleHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/save_schedule"
	toggleTermLockHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/toggle_term_lock"
	undoScheduleHandler "github.com/m04kA/SMC-TimetableService/internal/api/handlers/undo_schedule"
	"github.com/m04kA/SMC-TimetableService/internal/api/middleware"
	"github.com/m04kA/SMC-TimetableService/internal/config"
	"github.com/m04kA/SMC-TimetableService/internal/infra/storage"
	auditRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/audit"
	catalogRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/catalog"
	notificationRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/notification"
	periodRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/period"
	scheduleRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/schedule"
	termRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/term"
	versionRepo "github.com/m04kA/SMC-TimetableService/internal/infra/storage/version"
	conflictsService "github.com/m04kA/SMC-TimetableService/internal/service/conflicts"
	"github.com/m04kA/SMC-TimetableService/internal/service/dispatch"
	periodsService "github.com/m04kA/SMC-TimetableService/internal/service/periods"
	schedulesService "github.com/m04kA/SMC-TimetableService/internal/service/schedules"
	termsService "github.com/m04kA/SMC-TimetableService/internal/service/terms"
	validationService "github.com/m04kA/SMC-TimetableService/internal/service/validation"
	archiveScheduleUC "github.com/m04kA/SMC-TimetableService/internal/usecase/archive_schedule"
	saveScheduleUC "github.com/m04kA/SMC-TimetableService/internal/usecase/save_schedule"
	undoScheduleUC "github.com/m04kA/SMC-TimetableService/internal/usecase/undo_schedule"
	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimetableService/pkg/logger"
	"github.com/m04kA/SMC-TimetableService/pkg/metrics"
	"github.com/m04kA/SMC-TimetableService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TimetableService/pkg/txmanager"
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

	log.Info("Starting SMC-TimetableService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled for service: %s", cfg.Metrics.ServiceName)
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

	// Применяем миграции схемы
	if err := storage.RunMigrations(db, log); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository     *scheduleRepo.Repository
		periodRepository       *periodRepo.Repository
		termRepository         *termRepo.Repository
		catalogRepository      *catalogRepo.Repository
		auditRepository        *auditRepo.Repository
		versionRepository      *versionRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		periodRepository = periodRepo.NewRepository(wrappedDB)
		termRepository = termRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		versionRepository = versionRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		periodRepository = periodRepo.NewRepository(db)
		termRepository = termRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		versionRepository = versionRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Диспетчер фоновых задач: записи аудита и уведомления уходят из запроса асинхронно
	dispatcher := dispatch.NewDispatcher(auditRepository, notificationRepository, catalogRepository, log)
	defer dispatcher.Close()

	// Инициализируем сервисы
	termsSvc := termsService.NewService(termRepository, dispatcher, log)
	periodsSvc := periodsService.NewService(periodRepository, scheduleRepository, dispatcher, log)
	validationSvc := validationService.NewService(termRepository, catalogRepository, log)
	conflictsSvc := conflictsService.NewService(periodsSvc, scheduleRepository, log)
	schedulesSvc := schedulesService.NewService(scheduleRepository, termsSvc, dispatcher, log)

	// Инициализируем use cases
	saveScheduleUseCase := saveScheduleUC.NewUseCase(
		scheduleRepository,
		versionRepository,
		termsSvc,
		validationSvc,
		conflictsSvc,
		periodsSvc,
		dispatcher,
		txMgr,
		log,
	)

	archiveScheduleUseCase := archiveScheduleUC.NewUseCase(
		scheduleRepository,
		versionRepository,
		termsSvc,
		dispatcher,
		txMgr,
		log,
	)

	undoScheduleUseCase := undoScheduleUC.NewUseCase(
		auditRepository,
		versionRepository,
		scheduleRepository,
		termsSvc,
		validationSvc,
		conflictsSvc,
		periodsSvc,
		dispatcher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	saveSchedule := saveScheduleHandler.NewHandler(saveScheduleUseCase, log)
	archiveSchedule := archiveScheduleHandler.NewHandler(archiveScheduleUseCase, log)
	undoSchedule := undoScheduleHandler.NewHandler(undoScheduleUseCase, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(schedulesSvc, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(schedulesSvc, log)
	listPeriods := listPeriodsHandler.NewHandler(periodsSvc, log)
	generatePeriods := generatePeriodsHandler.NewHandler(periodsSvc, log)
	listTerms := listTermsHandler.NewHandler(termsSvc, log)
	createTerm := createTermHandler.NewHandler(termsSvc, log)
	activateTerm := activateTermHandler.NewHandler(termsSvc, log)
	toggleTermLock := toggleTermLockHandler.NewHandler(termsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют заголовки идентификации)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Сохранение расписания (создание, обновление, публикация)
	protected.HandleFunc("/schedules", saveSchedule.Handle).Methods(http.MethodPost)

	// Откат расписания к предыдущей версии по записи аудита
	protected.HandleFunc("/schedules/undo", undoSchedule.Handle).Methods(http.MethodPost)

	// Список расписаний отделения
	protected.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)

	// Получение расписания по ID
	protected.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// Архивация опубликованного расписания
	protected.HandleFunc("/schedules/{scheduleId}/archive", archiveSchedule.Handle).Methods(http.MethodPost)

	// Удаление черновика
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// Сетка пар в порядке следования
	protected.HandleFunc("/periods", listPeriods.Handle).Methods(http.MethodGet)

	// Список учебных семестров
	protected.HandleFunc("/terms", listTerms.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют роль ADMIN)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Генерация сетки пар
	admin.HandleFunc("/periods/generate", generatePeriods.Handle).Methods(http.MethodPost)

	// Создание учебного семестра
	admin.HandleFunc("/terms", createTerm.Handle).Methods(http.MethodPost)

	// Активация семестра (деактивирует остальные)
	admin.HandleFunc("/terms/{termId}/activate", activateTerm.Handle).Methods(http.MethodPost)

	// Блокировка/разблокировка активного семестра
	admin.HandleFunc("/terms/{termId}/lock", toggleTermLock.Handle).Methods(http.MethodPost)

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
