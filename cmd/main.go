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

	createBookingHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/create_booking"
	getBookingHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/get_my_bookings"
	getPaymentMethodsHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/get_payment_methods"
	listBookingsHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/list_bookings"
	quoteBookingHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/quote_booking"
	setBookingTotalHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/set_booking_total"
	transitionBookingHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/transition_booking"
	updatePaymentStatusHandler "github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers/update_payment_status"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/middleware"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/config"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/broker"
	bookingRepo "github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/storage/booking"
	catalogRepo "github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/storage/catalog"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	bookingsService "github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
	draftsService "github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
	createBookingUC "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/create_booking"
	quoteBookingUC "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/quote_booking"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/dbmetrics"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/logger"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/metrics"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/txmanager"
)

// eventPublisher публикатор событий, который нужно закрыть при остановке
type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

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

	log.Info("Starting hotel bookings service...")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Метрики и обёртка БД. Без метрик обёртка прозрачна, но транзакции идут тем же путём.
	stopMetricsCh := make(chan struct{})

	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
		settleMetrics    payment.Metrics
		bookingMetrics   bookingsService.Metrics
	)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		settleMetrics = metricsCollector
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Брокер событий
	var publisher eventPublisher = broker.NoopPublisher{}
	if cfg.Broker.Enabled {
		p, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to broker: %v", err)
		}
		publisher = p
		log.Info("Booking events are published to exchange %s", cfg.Broker.Exchange)
	}
	defer publisher.Close()

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	// Оплата
	registry := payment.NewRegistry()
	simulator := payment.NewSimulator(registry, payment.SimulatorConfig{
		Delay:   cfg.Payment.Delay(),
		Timeout: cfg.Payment.Timeout(),
	}, settleMetrics, log)
	log.Info("Payment simulator: delay=%s, timeout=%s, strict_invariants=%t",
		cfg.Payment.Delay(), cfg.Payment.Timeout(), cfg.Payment.StrictInvariants)

	// Сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		publisher,
		bookingMetrics,
		log,
		cfg.Payment.StrictInvariants,
	)
	draftSvc := draftsService.NewService(catalogRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(draftSvc, simulator, bookingSvc, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(draftSvc, registry, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	getPaymentMethods := getPaymentMethodsHandler.NewHandler(registry, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(bookingSvc, log)
	setBookingTotal := setBookingTotalHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.IdentityMiddleware)

	// ============================================================
	// PUBLIC ROUTES (форма бронирования)
	// ============================================================

	api.HandleFunc("/payment-methods", getPaymentMethods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes/{resourceType}", quoteBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// GUEST ROUTES (требуют X-User-Email header)
	// ============================================================

	guest := api.PathPrefix("").Subrouter()
	guest.Use(middleware.Auth)

	guest.HandleFunc("/bookings/{resourceType}", createBooking.Handle).Methods(http.MethodPost)
	guest.HandleFunc("/bookings/{resourceType}/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	guest.HandleFunc("/me/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (X-User-Role: staff или admin)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/bookings/{resourceType}", listBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{resourceType}/{bookingId}", transitionBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{resourceType}/{bookingId}/payment", updatePaymentStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{resourceType}/{bookingId}/total", setBookingTotal.Handle).Methods(http.MethodPut)

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

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// Незавершённые оформления получают отмену контекста и не создают бронирований
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
