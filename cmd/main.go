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

	cancelBookingHandler "github.com/fieldmax/booking-service/internal/api/handlers/cancel_booking"
	closeFieldHandler "github.com/fieldmax/booking-service/internal/api/handlers/close_field"
	completeBookingHandler "github.com/fieldmax/booking-service/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/fieldmax/booking-service/internal/api/handlers/create_booking"
	createScheduleOverrideHandler "github.com/fieldmax/booking-service/internal/api/handlers/create_schedule_override"
	getAvailableSlotsHandler "github.com/fieldmax/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/fieldmax/booking-service/internal/api/handlers/get_booking"
	getRevenueHandler "github.com/fieldmax/booking-service/internal/api/handlers/get_revenue"
	getScheduleHandler "github.com/fieldmax/booking-service/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/fieldmax/booking-service/internal/api/handlers/get_user_bookings"
	getVenueBookingsHandler "github.com/fieldmax/booking-service/internal/api/handlers/get_venue_bookings"
	listPendingVenuesHandler "github.com/fieldmax/booking-service/internal/api/handlers/list_pending_venues"
	moderateVenueHandler "github.com/fieldmax/booking-service/internal/api/handlers/moderate_venue"
	paymentNotificationHandler "github.com/fieldmax/booking-service/internal/api/handlers/payment_notification"
	submitVenueHandler "github.com/fieldmax/booking-service/internal/api/handlers/submit_venue"
	updateScheduleHandler "github.com/fieldmax/booking-service/internal/api/handlers/update_schedule"
	"github.com/fieldmax/booking-service/internal/api/middleware"
	"github.com/fieldmax/booking-service/internal/config"
	bookingRepo "github.com/fieldmax/booking-service/internal/infra/storage/booking"
	fieldRepo "github.com/fieldmax/booking-service/internal/infra/storage/field"
	paymentRepo "github.com/fieldmax/booking-service/internal/infra/storage/payment"
	scheduleRepo "github.com/fieldmax/booking-service/internal/infra/storage/schedule"
	venueRepo "github.com/fieldmax/booking-service/internal/infra/storage/venue"
	"github.com/fieldmax/booking-service/internal/integrations/paymentgw"
	bookingsService "github.com/fieldmax/booking-service/internal/service/bookings"
	dashboardService "github.com/fieldmax/booking-service/internal/service/dashboard"
	venuesService "github.com/fieldmax/booking-service/internal/service/venues"
	createBookingUC "github.com/fieldmax/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/fieldmax/booking-service/internal/usecase/get_available_slots"
	paymentCallbackUC "github.com/fieldmax/booking-service/internal/usecase/payment_callback"
	"github.com/fieldmax/booking-service/pkg/dbmetrics"
	"github.com/fieldmax/booking-service/pkg/logger"
	"github.com/fieldmax/booking-service/pkg/metrics"
	"github.com/fieldmax/booking-service/pkg/simpletxmanager"
	"github.com/fieldmax/booking-service/pkg/txmanager"
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

	log.Info("Starting FieldMax booking service...")
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

	// Инициализируем клиент платёжного шлюза
	gatewayClient := paymentgw.NewClient(
		cfg.PaymentGateway.BaseURL,
		cfg.PaymentGateway.ServerKey,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.PaymentGateway.BaseURL, cfg.PaymentGateway.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		paymentRepository  *paymentRepo.Repository
		fieldRepository    *fieldRepo.Repository
		venueRepository    *venueRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		fieldRepository = fieldRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		fieldRepository = fieldRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		fieldRepository,
		venueRepository,
		log,
	)
	venueSvc := venuesService.NewService(
		venueRepository,
		fieldRepository,
		scheduleRepository,
		log,
	)
	dashboardSvc := dashboardService.NewService(
		bookingRepository,
		venueRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		fieldRepository,
		venueRepository,
		scheduleRepository,
		gatewayClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		fieldRepository,
		venueRepository,
		scheduleRepository,
		bookingRepository,
		log,
	)

	paymentCallbackUseCase := paymentCallbackUC.NewUseCase(
		paymentRepository,
		bookingRepository,
		gatewayClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	paymentNotification := paymentNotificationHandler.NewHandler(paymentCallbackUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	getRevenue := getRevenueHandler.NewHandler(dashboardSvc, log)
	submitVenue := submitVenueHandler.NewHandler(venueSvc, log)
	moderateVenue := moderateVenueHandler.NewHandler(venueSvc, log)
	listPendingVenues := listPendingVenuesHandler.NewHandler(venueSvc, log)
	getSchedule := getScheduleHandler.NewHandler(venueSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(venueSvc, log)
	createScheduleOverride := createScheduleOverrideHandler.NewHandler(venueSvc, log)
	closeField := closeFieldHandler.NewHandler(venueSvc, log)

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

	// Доступные слоты площадки на дату
	api.HandleFunc("/fields/{fieldId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание комплекса
	api.HandleFunc("/venues/{venueId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Webhook платёжного шлюза (аутентифицируется подписью в теле)
	api.HandleFunc("/payments/notification", paymentNotification.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение бронирования владельцем
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// --- Управление комплексом (для владельцев) ---
	// Список бронирований комплекса
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// Отправка комплекса на модерацию
	protected.HandleFunc("/venues/{venueId}/submit", submitVenue.Handle).Methods(http.MethodPost)

	// Изменение недельного расписания
	protected.HandleFunc("/venues/{venueId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Исключение из расписания на дату
	protected.HandleFunc("/venues/{venueId}/schedule/overrides", createScheduleOverride.Handle).Methods(http.MethodPost)

	// Временное закрытие площадки
	protected.HandleFunc("/fields/{fieldId}/close", closeField.Handle).Methods(http.MethodPatch)

	// Дашборд выручки
	protected.HandleFunc("/dashboard/revenue", getRevenue.Handle).Methods(http.MethodGet)

	// --- Модерация (только для администраторов) ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/venues/pending", listPendingVenues.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/venues/{venueId}/moderate", moderateVenue.Handle).Methods(http.MethodPatch)

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
