package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/laundrylady/order-intake/internal/api/router"
	appconfig "github.com/laundrylady/order-intake/internal/config"
	"github.com/laundrylady/order-intake/internal/notify"
	"github.com/laundrylady/order-intake/internal/observability/metrics"
	"github.com/laundrylady/order-intake/internal/orders"
	"github.com/laundrylady/order-intake/internal/pricing"
	"github.com/laundrylady/order-intake/internal/schedule"
	"github.com/laundrylady/order-intake/pkg/logging"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting laundry order intake server",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_provider", cfg.EmailProvider,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	sender := buildEmailSender(cfg, logger)
	orderMetrics := metrics.NewOrderMetrics(nil)

	rates := pricing.Pricing{
		PricePerPound:   cfg.PricePerPound,
		PressingPerItem: cfg.PressingPerItem,
	}
	window := schedule.Window{
		StartHour:   cfg.PickupStartHour,
		EndHour:     cfg.PickupEndHour,
		StepMinutes: cfg.PickupStepMinutes,
	}

	dispatcher := notify.NewDispatcher(sender, notify.BusinessRecipient{
		Email: cfg.BusinessEmail,
		Name:  cfg.BusinessName,
	}, rates, orderMetrics, logger.Component("notify"))

	ordersHandler := orders.NewHandler(dispatcher, rates, window, orderMetrics, logger.Component("orders"))

	r := router.New(&router.Config{
		Logger:             logger,
		OrdersHandler:      ordersHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the configured provider. Falling back to the stub
// keeps local development working without credentials.
func buildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger.Component("notify"))
		if sender == nil {
			logger.Warn("sendgrid selected but not configured, using stub sender")
			return notify.NewStubEmailSender(logger)
		}
		return sender
	case "ses":
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			logger.Warn("failed to load AWS config, using stub sender", "error", err)
			return notify.NewStubEmailSender(logger)
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger.Component("notify"))
		if sender == nil {
			return notify.NewStubEmailSender(logger)
		}
		return sender
	default:
		return notify.NewStubEmailSender(logger)
	}
}
