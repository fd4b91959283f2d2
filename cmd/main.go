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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/noshecambridge/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/noshecambridge/booking-service/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/noshecambridge/booking-service/internal/api/handlers/export_bookings"
	getAvailabilityHandler "github.com/noshecambridge/booking-service/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/noshecambridge/booking-service/internal/api/handlers/get_bookings"
	getWeeklyBookingsHandler "github.com/noshecambridge/booking-service/internal/api/handlers/get_weekly_bookings"
	updateBookingHandler "github.com/noshecambridge/booking-service/internal/api/handlers/update_booking"
	"github.com/noshecambridge/booking-service/internal/api/middleware"
	"github.com/noshecambridge/booking-service/internal/capacity"
	"github.com/noshecambridge/booking-service/internal/config"
	"github.com/noshecambridge/booking-service/internal/infra/mail"
	bookingRepo "github.com/noshecambridge/booking-service/internal/infra/storage/booking"
	bookingsService "github.com/noshecambridge/booking-service/internal/service/bookings"
	createBookingUC "github.com/noshecambridge/booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/noshecambridge/booking-service/internal/usecase/get_availability"
	updateBookingUC "github.com/noshecambridge/booking-service/internal/usecase/update_booking"
	"github.com/noshecambridge/booking-service/pkg/dbmetrics"
	"github.com/noshecambridge/booking-service/pkg/logger"
	"github.com/noshecambridge/booking-service/pkg/metrics"
	"github.com/noshecambridge/booking-service/pkg/simpletxmanager"
	"github.com/noshecambridge/booking-service/pkg/txmanager"
)

func main() {
	// Secrets come from the environment; .env is optional for local runs
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Noshe Cambridge booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Outbound mailer for confirmation emails
	mailClient := mail.NewClient(mail.Config{
		Host:            cfg.SMTP.Host,
		Port:            cfg.SMTP.Port,
		User:            cfg.SMTP.User,
		Password:        cfg.SMTP.Password,
		From:            cfg.SMTP.From,
		Timeout:         time.Duration(cfg.SMTP.Timeout) * time.Second,
		RestaurantName:  cfg.Restaurant.Name,
		RestaurantPhone: cfg.Restaurant.Phone,
		ManagerEmail:    cfg.Restaurant.ManagerEmail,
	}, log)
	log.Info("Mail client initialized (host=%s, port=%d, manager=%s)",
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.Restaurant.ManagerEmail)

	// Transaction manager interface shared by the use cases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository *bookingRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	calculator := capacity.NewCalculator(log)

	bookingSvc := bookingsService.NewService(bookingRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		calculator,
		mailClient,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		calculator,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		calculator,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getWeeklyBookings := getWeeklyBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// All endpoints are JSON over POST, matching the booking widget and
	// the admin dashboard clients
	api := r.PathPrefix("/api/v1").Subrouter()

	// Guest-facing
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/update", updateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Admin dashboard
	api.HandleFunc("/bookings/list", getBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/weekly", getWeeklyBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
