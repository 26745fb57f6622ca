package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/resend/resend-go/v2"

	"github.com/rajuvisuals/payments-backend/api/controllers"
	webhookcontrollers "github.com/rajuvisuals/payments-backend/api/controllers/webhooks"
	"github.com/rajuvisuals/payments-backend/api/routes"
	"github.com/rajuvisuals/payments-backend/internal/email"
	"github.com/rajuvisuals/payments-backend/internal/purchases"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	"github.com/rajuvisuals/payments-backend/pkg/firestore"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
	"github.com/rajuvisuals/payments-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "payments-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "payments-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.Razorpay.WebhookSecret == "" {
		logg.Warn(context.Background(), "razorpay webhook secret not set, all deliveries will be rejected")
	}

	// The service keeps answering health checks and acknowledging non-purchase
	// events even when the store is unreachable, so a Firestore bootstrap
	// failure is a warning rather than a fatal error.
	var store *firestore.Client
	var purchaseService webhookcontrollers.PurchaseRecorder
	if cfg.Firestore.ProjectID == "" {
		logg.Warn(context.Background(), "gcp project id not set, running without a document store")
	} else {
		store, err = firestore.New(context.Background(), cfg.Firestore, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap firestore, running without a document store", err)
			store = nil
		}
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing firestore", err)
		}
	}()

	if store != nil {
		svc, err := purchases.NewService(purchases.ServiceParams{
			Store:  store,
			Config: cfg.Firestore,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to create purchase service", err)
			os.Exit(1)
		}
		purchaseService = svc
	}

	var receiptMailer webhookcontrollers.ReceiptMailer
	var contactMailer controllers.ContactMailer
	if cfg.Resend.Enabled() {
		mailer, err := email.NewService(email.ServiceParams{
			Sender: resend.NewClient(cfg.Resend.APIKey).Emails,
			Config: cfg.Resend,
			Logger: logg,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to create email service", err)
			os.Exit(1)
		}
		receiptMailer = mailer
		contactMailer = mailer
	} else {
		logg.Warn(context.Background(), "resend api key not set, outbound email disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	webhookMetrics := metrics.NewWebhookMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting payments api server")

	var pinger firestore.Pinger
	if store != nil {
		pinger = store
	}
	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, pinger, purchaseService, receiptMailer, contactMailer, webhookMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "payments api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
