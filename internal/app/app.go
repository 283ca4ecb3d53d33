package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/matifood/catalog-service/config"
	"github.com/matifood/catalog-service/internal/controller"
	circuitbreaker "github.com/matifood/catalog-service/internal/infrastructure/circuit-breaker"
	"github.com/matifood/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/matifood/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/matifood/catalog-service/internal/infrastructure/recaptcha"
	"github.com/matifood/catalog-service/internal/infrastructure/tracing"
	appmiddleware "github.com/matifood/catalog-service/internal/middleware"
	"github.com/matifood/catalog-service/internal/repository"
	"github.com/matifood/catalog-service/internal/repository/memory"
	"github.com/matifood/catalog-service/internal/seed"
	"github.com/matifood/catalog-service/internal/service"
	"github.com/matifood/catalog-service/pkg/validator"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const startupTimeout = 30 * time.Second

type App struct {
	Config *config.Config
	DB     *mongo.Database
	Store  repository.Store
	Server *echo.Echo

	Analytics service.AnalyticsService

	publisher     service.EventPublisher
	traceProvider *sdktrace.TracerProvider
	scheduler     gocron.Scheduler
	kafkaWriter   *kafkago.Writer
	kafkaReader   *kafkago.Reader
	cancel        context.CancelFunc
}

// Setup connects the store, seeds it and builds the HTTP server without
// listening. Start calls it when it has not been run yet.
func (app *App) Setup() error {
	logger := configureLogger(app.Config.LogConfig)

	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))
	app.cancel = cancel

	if err := app.setupStore(ctx); err != nil {
		return err
	}

	if app.Config.SeedOnStartup {
		seedCtx, seedCancel := context.WithTimeout(ctx, startupTimeout)
		err := seed.Seed(seedCtx, app.Store)
		seedCancel()
		if err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, app.Config.ServiceName)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}
	app.traceProvider = traceProvider

	publisher := app.setupEvents(ctx)
	app.publisher = publisher

	aggregator := service.CreateRatingAggregator(app.Store.Products, app.Store.Reviews, publisher)
	productSvc := service.CreateProductService(app.Store.Products)
	reviewSvc := service.CreateReviewService(app.Store.Reviews, aggregator, publisher)
	contactSvc := service.CreateContactService(app.Store.Contacts, app.Store.Newsletter, app.recaptchaVerifier(), service.CreateContactNotifier(app.Config.SMTPConfig), publisher)
	app.Analytics = service.CreateAnalyticsService(app.Store, publisher)
	healthSvc := service.CreateHealthService(app.Store.Health)

	if app.kafkaReader != nil {
		consumer := service.CreateEventConsumer(app.kafkaReader, aggregator)
		go consumer.ConsumeEvent(ctx)
	}

	if err := app.setupScheduler(ctx); err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: app.Config.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	if app.traceProvider != nil {
		tracer := app.traceProvider.Tracer(app.Config.ServiceName)
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()), trace.WithSpanKind(trace.SpanKindServer))
				defer span.End()

				c.SetRequest(c.Request().WithContext(ctx))

				err := next(c)
				if err != nil {
					span.RecordError(err)
				}
				return err
			}
		})
	}

	// Empty subsystem so metric names match across services.
	e.Use(echoprometheus.NewMiddleware(""))

	g := e.Group("/api")
	g.Use(appmiddleware.Logger)

	controller.CreateHealthController(g, healthSvc)
	controller.CreateProductController(g, productSvc)
	controller.CreateReviewController(g, reviewSvc)
	controller.CreateContactController(g, contactSvc)
	controller.CreateAnalyticsController(g, app.Analytics)

	app.Server = e

	return nil
}

// Start runs Setup if needed, then serves the API and the metrics endpoint
// until StopServer is called.
func (app *App) Start() error {
	if app.Server == nil {
		if err := app.Setup(); err != nil {
			return err
		}
	}

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	log.Info().Str("port", app.Config.ServicePort).Str("store", app.Config.StoreDriver).Msg("Starting server")

	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error

	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}

	if app.cancel != nil {
		app.cancel()
	}

	if app.scheduler != nil {
		errList = append(errList, app.scheduler.Shutdown())
	}

	if drainer, ok := app.publisher.(service.EventDrainer); ok {
		errList = append(errList, drainer.Drain(ctx))
	}

	if app.kafkaReader != nil {
		errList = append(errList, app.kafkaReader.Close())
	}

	if app.kafkaWriter != nil {
		errList = append(errList, app.kafkaWriter.Close())
	}

	if app.traceProvider != nil {
		errList = append(errList, app.traceProvider.Shutdown(ctx))
	}

	if app.DB != nil {
		errList = append(errList, app.DB.Client().Disconnect(ctx))
	}

	return errors.Join(errList...)
}

func (app *App) setupStore(ctx context.Context) error {
	if app.Config.StoreDriver == config.StoreDriverMemory {
		app.Store = memory.CreateMemoryStore().Repositories()
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if app.DB == nil {
		db, err := mongodb.ConnectToMongoDB(ctx, app.Config.MongoDBConfig.URI, app.Config.MongoDBConfig.DBName)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %w", err)
		}
		app.DB = db
	}

	if err := mongodb.EnsureIndexes(ctx, app.DB); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}

	app.Store = repository.CreateMongoDBStore(app.DB)

	return nil
}

func (app *App) setupEvents(ctx context.Context) service.EventPublisher {
	if !app.Config.KafkaConfig.Enabled() {
		log.Ctx(ctx).Info().Msg("No broker configured, domain events are disabled")
		return service.CreateNoopEventPublisher()
	}

	app.kafkaWriter = kafka.CreateKafkaWriter(app.Config)
	app.kafkaReader = kafka.CreateKafkaReader(app.Config)

	return service.CreateAsyncEventPublisher(service.CreateKafkaEventPublisher(app.kafkaWriter))
}

func (app *App) recaptchaVerifier() service.RecaptchaVerifier {
	if app.Config.RecaptchaConfig.Secret == "" {
		return nil
	}

	cb := circuitbreaker.CreateCircuitBreaker("recaptcha")

	return recaptcha.CreateVerifier(app.Config.RecaptchaConfig.Secret, app.Config.RecaptchaConfig.VerifyURL, cb)
}

func (app *App) setupScheduler(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(app.Config.AnalyticsConfig.StatsRefreshInterval),
		gocron.NewTask(func() {
			if err := app.Analytics.RefreshStats(ctx); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "RefreshStats").Msg("")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("scheduling stats refresh: %w", err)
	}

	scheduler.Start()
	app.scheduler = scheduler

	return nil
}

func configureLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	return logger
}
