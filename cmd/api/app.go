package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
	"surfcast/internal/config"
	"surfcast/internal/database"
	"surfcast/internal/events"
	"surfcast/internal/forecast"
	"surfcast/internal/location"
	"surfcast/internal/lock"
	"surfcast/internal/providers/httpclient"
	"surfcast/internal/providers/openstreetmap"

	_ "surfcast/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	server          *http.Server
	logger          *slog.Logger
	cfg             *config.Config
	locationService location.Service
	forecastService forecast.Service
	bookingService  booking.Service

	// closers release connections in reverse order on shutdown
	closers []func() error
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{logger: logger, cfg: cfg}

	// Upstream HTTP clients: the geocoder only retries transport errors,
	// Open-Meteo also retries 429 and 5xx
	geocoderHTTP := httpclient.New(
		httpclient.TransportPolicy(cfg.Geocoder.Timeout, cfg.Geocoder.Retries, cfg.Geocoder.RetryDelay),
		cfg.Geocoder.UserAgent,
		logger,
	)
	openMeteoHTTP := httpclient.New(
		httpclient.UpstreamPolicy(cfg.OpenMeteo.Timeout, cfg.OpenMeteo.Retries, cfg.OpenMeteo.Backoff),
		cfg.Geocoder.UserAgent,
		logger,
	)

	app.locationService = location.NewLocationService(
		openstreetmap.NewClient(cfg.Geocoder.URL, geocoderHTTP, logger),
		logger,
	)

	forecastSvc, err := forecast.NewForecastService(cfg, openMeteoHTTP, app.locationService, logger)
	if err != nil {
		return nil, err
	}
	app.forecastService = forecastSvc

	bookingSvc, err := app.initBooking(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.bookingService = bookingSvc

	app.router = newRouter(cfg, logger)
	app.registerRoutes()
	app.server = newServer(cfg.GetServerAddr(), app.router)

	logger.Info("application initialized")
	return app, nil
}

// newAppWithServices builds the HTTP layer over ready-made services
func newAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	locationService location.Service,
	forecastService forecast.Service,
	bookingService booking.Service,
) *App {
	app := &App{
		router:          newRouter(cfg, logger),
		logger:          logger,
		cfg:             cfg,
		locationService: locationService,
		forecastService: forecastService,
		bookingService:  bookingService,
	}
	app.registerRoutes()
	app.server = newServer(cfg.GetServerAddr(), app.router)
	return app
}

func newRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))
	return router
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// initBooking opens the database and picks the lock and event backends
func (app *App) initBooking(ctx context.Context) (booking.Service, error) {
	db, err := database.Open(app.cfg.Database, app.logger)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, func() error { return database.Close(db) })

	if err := booking.Migrate(db); err != nil {
		return nil, err
	}

	var locker lock.Locker = lock.NewLocalLocker()
	if app.cfg.Redis.URL != "" {
		client, err := lock.Connect(ctx, app.cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, client.Close)
		locker = lock.NewRedisLocker(client, app.cfg.Redis.LockTimeout, app.logger)
		app.logger.Info("using redis schedule lock")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(app.cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(app.cfg.Kafka.Brokers, app.cfg.Kafka.Topic, app.logger)
		app.closers = append(app.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
		app.logger.Info("publishing booking events", "brokers", app.cfg.Kafka.Brokers, "topic", app.cfg.Kafka.Topic)
	}

	return booking.NewBookingService(booking.NewUnitOfWork(db), locker, publisher, app.logger), nil
}

// Run starts the HTTP server and blocks until it stops
func (app *App) Run() error {
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (app *App) Shutdown(ctx context.Context) error {
	return app.server.Shutdown(ctx)
}

// Close releases the database, redis and kafka connections
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close resources: %w", err)
	}
	return nil
}
