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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blockedSlotsHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/blocked_slots"
	cancelBookingHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/create_booking"
	createSportHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/create_sport"
	getAvailabilityHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/get_booking"
	getSportHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/get_sport"
	getSportBookingsHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/get_sport_bookings"
	getSportsHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/get_sports"
	getUserBookingsHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/get_user_bookings"
	pricingRulesHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/pricing_rules"
	rescheduleBookingHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/reschedule_booking"
	updateSportHandler "github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers/update_sport"
	"github.com/m04kA/SMC-ArenaBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ArenaBookingService/internal/config"
	sportCache "github.com/m04kA/SMC-ArenaBookingService/internal/infra/cache/sport"
	blockedSlotRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/blockedslot"
	bookingRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/booking"
	pricingRuleRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/pricingrule"
	sportRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/sport"
	"github.com/m04kA/SMC-ArenaBookingService/internal/integrations/events"
	blockingService "github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking"
	bookingsService "github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings"
	pricingService "github.com/m04kA/SMC-ArenaBookingService/internal/service/pricing"
	sportsService "github.com/m04kA/SMC-ArenaBookingService/internal/service/sports"
	createBookingUC "github.com/m04kA/SMC-ArenaBookingService/internal/usecase/create_booking"
	resolveAvailabilityUC "github.com/m04kA/SMC-ArenaBookingService/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-ArenaBookingService/internal/worker/pendingexpiry"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/logger"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/metrics"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/mq"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/txmanager"
)

// eventPublisher объединяет события всех потребителей (events.Client или events.Noop)
type eventPublisher interface {
	createBookingUC.EventPublisher
	bookingsService.EventPublisher
	pendingexpiry.EventPublisher
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

	log.Info("Starting SMC-ArenaBookingService...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

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

	// Обертка над БД: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.NewPlain(db)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	sportRepository := sportRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	blockedSlotRepository := blockedSlotRepo.NewRepository(wrappedDB)
	pricingRuleRepository := pricingRuleRepo.NewRepository(wrappedDB)

	// Кэш площадок в Redis (если включен)
	var (
		sportSource      resolveAvailabilityUC.SportRepository = sportRepository
		sportInvalidator sportsService.SportCache             = sportCache.Noop{}
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable, sport cache will fall back to database: %v", err)
		}
		cancel()

		cache := sportCache.NewCache(redisClient, sportRepository, cfg.Redis.TTL(), log)
		sportSource = cache
		sportInvalidator = cache
		log.Info("Sport cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}

	// Публикация событий в RabbitMQ (если включена)
	var eventsClient eventPublisher = events.Noop{}
	if cfg.Events.Enabled {
		publisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()

		eventsClient = events.NewClient(publisher, time.Duration(cfg.Events.PublishTimeout)*time.Second, log)
		log.Info("Booking events enabled (exchange=%s)", cfg.Events.Exchange)
	}

	// Инициализируем use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(
		sportSource,
		bookingRepository,
		blockedSlotRepository,
		pricingRuleRepository,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		resolveAvailabilityUseCase,
		bookingRepository,
		txMgr,
		eventsClient,
		&createBookingUC.RealTimeProvider{Location: location},
		cfg.Booking.AdvanceBookingDays,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, createBookingUseCase, txMgr, eventsClient, log)
	sportSvc := sportsService.NewService(sportRepository, sportInvalidator, log)
	pricingSvc := pricingService.NewService(pricingRuleRepository, sportRepository, log)
	blockingSvc := blockingService.NewService(blockedSlotRepository, sportRepository, log)

	// Фоновая отмена просроченных неподтвержденных бронирований
	expiryWorker := pendingexpiry.NewWorker(
		bookingRepository,
		eventsClient,
		metricsCollector,
		cfg.Booking.PendingTTL(),
		cfg.Booking.ExpirySchedule,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSportBookings := getSportBookingsHandler.NewHandler(bookingSvc, log)
	getSports := getSportsHandler.NewHandler(sportSvc, log)
	getSport := getSportHandler.NewHandler(sportSvc, log)
	createSport := createSportHandler.NewHandler(sportSvc, log)
	updateSport := updateSportHandler.NewHandler(sportSvc, log)
	pricingRules := pricingRulesHandler.NewHandler(pricingSvc, log)
	blockedSlots := blockedSlotsHandler.NewHandler(blockingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/sports", getSports.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sports/{sportId}", getSport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sports/{sportId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-ID + X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// --- Площадки ---
	admin.HandleFunc("/sports", createSport.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/sports/{sportId}", updateSport.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/sports/{sportId}/bookings", getSportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// --- Правила цен ---
	admin.HandleFunc("/sports/{sportId}/pricing-rules", pricingRules.Create).Methods(http.MethodPost)
	admin.HandleFunc("/sports/{sportId}/pricing-rules", pricingRules.List).Methods(http.MethodGet)
	admin.HandleFunc("/pricing-rules/{ruleId}/active", pricingRules.SetActive).Methods(http.MethodPatch)
	admin.HandleFunc("/pricing-rules/{ruleId}", pricingRules.Delete).Methods(http.MethodDelete)

	// --- Блокировки ---
	admin.HandleFunc("/sports/{sportId}/blocked-slots", blockedSlots.Create).Methods(http.MethodPost)
	admin.HandleFunc("/sports/{sportId}/blocked-slots", blockedSlots.List).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots/{blockedSlotId}", blockedSlots.Delete).Methods(http.MethodDelete)

	// Запускаем фоновые задачи
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if err := expiryWorker.Start(workerCtx); err != nil {
		log.Fatal("Failed to start pending expiry worker: %v", err)
	}

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

	stopWorkers()
	expiryWorker.Stop()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
