package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/chauffeur/internal/pkg/config"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/health"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/nats"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/internal/pkg/server"
	"github.com/piresc/chauffeur/internal/pkg/websocket"
	bookinggw "github.com/piresc/chauffeur/services/bookings/gateway"
	bookinghttp "github.com/piresc/chauffeur/services/bookings/handler/http"
	bookingrepo "github.com/piresc/chauffeur/services/bookings/repository"
	bookinguc "github.com/piresc/chauffeur/services/bookings/usecase"
	dispatchhttp "github.com/piresc/chauffeur/services/dispatch/handler/http"
	dispatchnats "github.com/piresc/chauffeur/services/dispatch/handler/nats"
	dispatchrepo "github.com/piresc/chauffeur/services/dispatch/repository"
	dispatchuc "github.com/piresc/chauffeur/services/dispatch/usecase"
	driverhttp "github.com/piresc/chauffeur/services/drivers/handler/http"
	driverrepo "github.com/piresc/chauffeur/services/drivers/repository"
	driveruc "github.com/piresc/chauffeur/services/drivers/usecase"
	messaginggw "github.com/piresc/chauffeur/services/messaging/gateway"
	messaginghttp "github.com/piresc/chauffeur/services/messaging/handler/http"
	messagingrepo "github.com/piresc/chauffeur/services/messaging/repository"
	messaginguc "github.com/piresc/chauffeur/services/messaging/usecase"
	paymentgw "github.com/piresc/chauffeur/services/payments/gateway"
	paymenthttp "github.com/piresc/chauffeur/services/payments/handler/http"
	paymentrepo "github.com/piresc/chauffeur/services/payments/repository"
	paymentuc "github.com/piresc/chauffeur/services/payments/usecase"
	pricinghttp "github.com/piresc/chauffeur/services/pricing/handler/http"
	pricingrepo "github.com/piresc/chauffeur/services/pricing/repository"
	pricinguc "github.com/piresc/chauffeur/services/pricing/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	m := metrics.NewMetrics("chauffeur")
	db := postgresClient.GetDB()

	// Repositories
	rateRepo := pricingrepo.NewRateRepository(configs, db, redisClient)
	driverRepo := driverrepo.NewDriverRepository(db)
	bookingRepo := bookingrepo.NewBookingRepository(db)
	messageRepo := messagingrepo.NewMessageLogRepository(db)
	dispatchRepo := dispatchrepo.NewDispatchRepository(db)
	paymentRepo := paymentrepo.NewPaymentRepository(db)

	// Gateways
	eventGW := bookinggw.NewBookingGW(natsClient)
	twilioGW := messaginggw.NewTwilioGW(configs.Twilio, m)
	stripeGW := paymentgw.NewStripeGW(configs.Stripe, m)

	// Use cases
	pricingUC := pricinguc.NewPricingUC(rateRepo, m)
	driverUC := driveruc.NewDriverUC(configs, driverRepo)
	bookingUC := bookinguc.NewBookingUC(configs, bookingRepo, driverRepo, eventGW, pricingUC)
	messagingUC := messaginguc.NewMessagingUC(messageRepo, twilioGW, m)
	dispatchUC := dispatchuc.NewDispatchUC(configs, dispatchRepo, messagingUC, eventGW, m)
	paymentUC := paymentuc.NewPaymentUC(configs, paymentRepo, stripeGW, eventGW, pricingUC, m)

	// Dispatcher live feed
	wsManager := websocket.NewManager(configs.JWT)
	feed := dispatchnats.NewFeedHandler(natsClient, wsManager)
	if err := feed.Start(); err != nil {
		zapLogger.Fatal("Failed to start dispatcher feed", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Panic recovery first, then tracing so the request logger sees the transaction
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker("nats", health.ConnectionChecker("nats", natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	public := e.Group("/v1/public", middleware.IPRateLimiter(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Limit:       configs.RateLimit.Limit,
		Period:      configs.RateLimit.Period,
	}))
	api := e.Group("/v1", middleware.JWTAuthMiddleware(configs.JWT))
	webhooks := e.Group("/v1/webhooks")
	e.GET("/v1/ws", wsManager.HandleConnection)

	pricinghttp.NewPricingHandler(pricingUC).RegisterRoutes(public)
	driverhttp.NewDriverHandler(driverUC).RegisterRoutes(api)
	bookinghttp.NewBookingHandler(bookingUC).RegisterRoutes(api, public)
	dispatchhttp.NewDispatchHandler(dispatchUC).RegisterRoutes(api)
	messaginghttp.NewMessageHandler(messagingUC).RegisterRoutes(api)
	paymenthttp.NewPaymentHandler(paymentUC).RegisterRoutes(api, public)
	dispatchhttp.NewWebhookHandler(configs, dispatchUC, redisClient, m).RegisterRoutes(webhooks)
	paymenthttp.NewWebhookHandler(configs, paymentUC, redisClient, m).RegisterRoutes(webhooks)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown("dispatcher feed", func(context.Context) error {
		feed.Stop()
		return nil
	})
	srv.OnShutdown("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown("redis", func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown("postgres", func(context.Context) error { return postgresClient.Close() })
	if nrApp != nil {
		srv.OnShutdown("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	zapLogger.Info("Serving", logger.String("app", appName))
	if err := srv.Run(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
