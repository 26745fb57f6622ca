package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rajuvisuals/payments-backend/api/controllers"
	webhookcontrollers "github.com/rajuvisuals/payments-backend/api/controllers/webhooks"
	"github.com/rajuvisuals/payments-backend/api/middleware"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	"github.com/rajuvisuals/payments-backend/pkg/firestore"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
	"github.com/rajuvisuals/payments-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store firestore.Pinger,
	purchaseService webhookcontrollers.PurchaseRecorder,
	receiptMailer webhookcontrollers.ReceiptMailer,
	contactMailer controllers.ContactMailer,
	webhookMetrics *metrics.WebhookMetrics,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Get("/", controllers.Health(cfg, store))

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/razorpay", webhookcontrollers.RazorpayWebhook(purchaseService, cfg.Razorpay, receiptMailer, webhookMetrics, logg))
	})

	r.Post("/api/contact", controllers.Contact(contactMailer, logg))

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}
