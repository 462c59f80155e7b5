package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/dokanbaki/internal/pkg/config"
	"github.com/piresc/dokanbaki/internal/pkg/database"
	"github.com/piresc/dokanbaki/internal/pkg/health"
	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	jwtpkg "github.com/piresc/dokanbaki/internal/pkg/jwt"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	nrpkg "github.com/piresc/dokanbaki/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/dokanbaki/internal/pkg/nsq"
	"github.com/piresc/dokanbaki/internal/pkg/presence"
	"github.com/piresc/dokanbaki/internal/pkg/server"
	billingHandler "github.com/piresc/dokanbaki/services/billing/handler"
	billingHTTP "github.com/piresc/dokanbaki/services/billing/handler/http"
	billingRepo "github.com/piresc/dokanbaki/services/billing/repository"
	billingUC "github.com/piresc/dokanbaki/services/billing/usecase"
	ledgerHandler "github.com/piresc/dokanbaki/services/ledger/handler"
	ledgerHTTP "github.com/piresc/dokanbaki/services/ledger/handler/http"
	ledgerRepo "github.com/piresc/dokanbaki/services/ledger/repository"
	ledgerUC "github.com/piresc/dokanbaki/services/ledger/usecase"
	"github.com/piresc/dokanbaki/services/notifications"
	notifGateway "github.com/piresc/dokanbaki/services/notifications/gateway"
	notifHandler "github.com/piresc/dokanbaki/services/notifications/handler"
	notifHTTP "github.com/piresc/dokanbaki/services/notifications/handler/http"
	notifRepo "github.com/piresc/dokanbaki/services/notifications/repository"
	notifUC "github.com/piresc/dokanbaki/services/notifications/usecase"
	"github.com/piresc/dokanbaki/services/shops"
	shopsHandler "github.com/piresc/dokanbaki/services/shops/handler"
	shopsHTTP "github.com/piresc/dokanbaki/services/shops/handler/http"
	shopsRepo "github.com/piresc/dokanbaki/services/shops/repository"
	shopsUC "github.com/piresc/dokanbaki/services/shops/usecase"
	usersHandler "github.com/piresc/dokanbaki/services/users/handler"
	usersHTTP "github.com/piresc/dokanbaki/services/users/handler/http"
	usersRepo "github.com/piresc/dokanbaki/services/users/repository"
	usersUC "github.com/piresc/dokanbaki/services/users/usecase"
	"go.uber.org/zap"
)

const (
	authRateLimit   = 20
	authRatePeriod  = time.Minute
	presenceKey     = "dokanbaki:presence"
	defaultEnvFile  = "config/khata.env"
	overdueJobName  = "overdue-check"
	overdueJobLimit = 5 * time.Minute
)

func main() {
	appName := "dokan-baki"
	configs := config.InitConfig(defaultEnvFile)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("store", configs.Store.Driver),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	plans, err := config.LoadPlanCatalog(configs.Plans.File)
	if err != nil {
		zapLogger.Fatal("Failed to load plan catalog", zap.Error(err))
	}

	checkers := map[string]health.Checker{}
	var cleanups []func(context.Context) error

	// Initialize record store
	store, closeStore, err := openStore(configs)
	if err != nil {
		zapLogger.Fatal("Failed to open record store", zap.Error(err))
	}
	checkers["store"] = store
	cleanups = append(cleanups, closeStore)

	// Initialize Redis, optional
	var tracker presence.Tracker = presence.NewMemoryTracker()
	var authLimiter []echo.MiddlewareFunc
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		tracker = presence.NewRedisTracker(redisClient.Client, presenceKey)
		authLimiter = append(authLimiter, middleware.IPRateLimiter(authRateLimit, authRatePeriod, redisClient.Client))
		checkers["redis"] = redisClient
		cleanups = append(cleanups, func(context.Context) error { return redisClient.Close() })
	}

	// Initialize messaging
	sender := notifGateway.NewBreakerSender(notifGateway.NewLogSender())
	direct := notifGateway.NewDirectDispatcher(sender)
	var dispatcher notifications.Dispatcher = direct
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to create NSQ producer", zap.Error(err))
		}
		consumer, err := nsqpkg.NewConsumer(configs.NSQ.Topic, configs.NSQ.Channel, configs.NSQ.Address,
			notifGateway.MessageHandler(sender))
		if err != nil {
			zapLogger.Fatal("Failed to start NSQ consumer", zap.Error(err))
		}
		dispatcher = notifGateway.NewQueueDispatcher(producer, configs.NSQ.Topic, direct)
		cleanups = append(cleanups, func(context.Context) error {
			producer.Stop()
			consumer.Stop()
			return nil
		})
	}
	cleanups = append(cleanups, direct.Wait)

	// Initialize repositories
	userRepository := usersRepo.NewUserRepo(store)
	otpRepository := usersRepo.NewOTPRepo(store)
	shopRepository := shopsRepo.NewShopRepo(store)
	transactionRepository := ledgerRepo.NewTransactionRepo(store)
	paymentRepository := billingRepo.NewPaymentRepo(store)
	notificationRepository := notifRepo.NewNotificationRepo(store)

	// Initialize usecases
	userUC := usersUC.NewUserUC(userRepository, otpRepository, sender, configs)
	shopUC := shopsUC.NewShopUC(shopRepository, userRepository, shops.QuotaFromConfig(configs.Quota))
	ledgerUsecase := ledgerUC.NewLedgerUC(transactionRepository, dispatcher)
	reviewMu := &sync.Mutex{}
	billingUsecase := billingUC.NewBillingUC(paymentRepository, userRepository, plans, reviewMu)
	adminUsecase := billingUC.NewAdminUC(paymentRepository, userRepository, shopRepository,
		transactionRepository, tracker, plans, configs, reviewMu)
	notificationUC := notifUC.NewNotificationUC(notificationRepository, notificationRepository, sender)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, checkers)

	auth := chain(middleware.JWTAuthMiddleware(configs.JWT), middleware.PresenceMiddleware(tracker))
	shopScoped := []echo.MiddlewareFunc{auth, shopsHTTP.ShopContext(shopUC)}
	admin := []echo.MiddlewareFunc{middleware.JWTAuthMiddleware(configs.JWT), middleware.RequireRole(jwtpkg.RoleAdmin)}

	usersHandler.NewHandler(usersHTTP.NewAuthHandler(userUC), usersHTTP.NewUserHandler(userUC)).
		RegisterRoutes(e, auth, authLimiter...)
	shopsHandler.NewHandler(shopsHTTP.NewShopHandler(shopUC)).
		RegisterRoutes(e, auth)
	ledgerHandler.NewHandler(ledgerHTTP.NewLedgerHandler(ledgerUsecase)).
		RegisterRoutes(e, shopScoped...)
	billingHandler.NewHandler(billingHTTP.NewBillingHandler(billingUsecase), billingHTTP.NewAdminHandler(adminUsecase)).
		RegisterRoutes(e, auth, authLimiter...)
	notifHandler.NewHandler(notifHTTP.NewNotificationHandler(notificationUC)).
		RegisterRoutes(e, shopScoped, admin)

	// Start background jobs
	jobCtx, stopJobs := context.WithCancel(context.Background())
	if configs.Jobs.OverdueInterval > 0 {
		interval := time.Duration(configs.Jobs.OverdueInterval) * time.Minute
		go runOverdueJob(jobCtx, nrApp, notificationUC, interval)
		zapLogger.Info("Overdue reminders scheduled", zap.Duration("interval", interval))
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		stopJobs()
		return nil
	})
	// release in reverse order of acquisition
	for i := len(cleanups) - 1; i >= 0; i-- {
		srv.OnShutdown(cleanups[i])
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

// openStore builds the record store selected by STORE_DRIVER
func openStore(configs *models.Config) (jsondb.Store, func(context.Context) error, error) {
	if configs.Store.Driver == "postgres" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return nil, nil, err
		}
		store := jsondb.NewPostgresStore(postgresClient.GetDB())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Migrate(ctx); err != nil {
			_ = postgresClient.Close()
			return nil, nil, err
		}
		return store, func(context.Context) error { return postgresClient.Close() }, nil
	}

	store, err := jsondb.NewFileStore(configs.Store.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, func(context.Context) error { return nil }, nil
}

// chain composes middlewares into one, outermost first
func chain(mws ...echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

func runOverdueJob(ctx context.Context, nrApp *newrelic.Application, uc notifications.NotificationUC, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, end := nrpkg.StartBackgroundTransaction(ctx, nrApp, overdueJobName)
			runCtx, cancel := context.WithTimeout(runCtx, overdueJobLimit)
			if _, err := uc.CheckOverdue(runCtx, ""); err != nil {
				logger.ErrorCtx(runCtx, "Overdue check failed", logger.Err(err))
			}
			cancel()
			end()
		}
	}
}
