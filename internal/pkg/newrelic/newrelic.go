package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration.
// Returns nil when disabled; every helper here accepts a nil application.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", appName))
	return nrApp
}

// EchoMiddleware starts one web transaction per request and stores it in the request context
func EchoMiddleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if nrApp == nil {
			return next
		}
		return func(c echo.Context) error {
			name := c.Request().Method + " " + c.Path()
			txn := nrApp.StartTransaction(name)
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			c.SetRequest(c.Request().WithContext(newrelic.NewContext(c.Request().Context(), txn)))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}

// WithSegment runs fn inside a segment of the transaction carried by ctx, if any
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// WithSegmentAndReturn is WithSegment for functions returning a value
func WithSegmentAndReturn[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// StartBackgroundTransaction starts a non-web transaction for queue consumers and jobs.
// The returned end func is safe to call when New Relic is disabled.
func StartBackgroundTransaction(ctx context.Context, nrApp *newrelic.Application, name string) (context.Context, func()) {
	if nrApp == nil {
		return ctx, func() {}
	}
	txn := nrApp.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}
