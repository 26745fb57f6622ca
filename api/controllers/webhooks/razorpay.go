package webhooks

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rajuvisuals/payments-backend/api/responses"
	"github.com/rajuvisuals/payments-backend/internal/purchases"
	"github.com/rajuvisuals/payments-backend/internal/webhooks/razorpay"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	pkgerrors "github.com/rajuvisuals/payments-backend/pkg/errors"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
	"github.com/rajuvisuals/payments-backend/pkg/metrics"
)

const signatureHeader = "X-Razorpay-Signature"

type PurchaseRecorder interface {
	Record(ctx context.Context, payment *razorpay.PaymentEntity) (*purchases.PurchaseRecord, error)
}

type ReceiptMailer interface {
	SendPurchaseReceipt(ctx context.Context, record *purchases.PurchaseRecord) error
}

// RazorpayWebhook handles payment gateway deliveries. Only payment.captured
// touches the store; every other verified event is acknowledged so the
// gateway stops redelivering it.
func RazorpayWebhook(svc PurchaseRecorder, cfg config.RazorpayConfig, mailer ReceiptMailer, m *metrics.WebhookMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			m.ObserveEvent("unknown", "error")
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request body"))
			return
		}

		signature := r.Header.Get(signatureHeader)
		if signature == "" {
			m.ObserveEvent("unknown", "rejected")
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Signature missing"))
			return
		}

		if !razorpay.VerifySignature(payload, signature, cfg.WebhookSecret) {
			m.ObserveEvent("unknown", "rejected")
			if logg != nil {
				ctx = logg.WithField(ctx, "signature_prefix", truncate(signature, 8))
			}
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeSignature, "signature verification failed"))
			return
		}

		event, err := razorpay.ParseEvent(payload, cfg.DefaultCurrency)
		if err != nil {
			m.ObserveEvent("unknown", "rejected")
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithEventType(ctx, event.Name)
		}
		defer func() { m.ObserveDuration(event.Name, time.Since(start)) }()

		if event.Payment == nil {
			m.ObserveEvent(event.Name, "acknowledged")
			if logg != nil {
				logg.Info(ctx, "webhook.acknowledged")
			}
			responses.WriteJSON(w, http.StatusOK, map[string]string{"message": "Event received"})
			return
		}

		if logg != nil {
			ctx = logg.WithPaymentID(ctx, event.Payment.ID)
		}

		if svc == nil {
			m.ObserveEvent(event.Name, "error")
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDependency, "document store unavailable"))
			return
		}

		record, err := svc.Record(ctx, event.Payment)
		if err != nil {
			m.ObserveEvent(event.Name, outcomeForError(err))
			responses.WriteError(ctx, logg, w, err)
			return
		}

		m.ObserveEvent(event.Name, "accepted")
		m.IncPurchase()
		if logg != nil {
			ctx = logg.WithReceiptID(ctx, record.ReceiptID)
			logg.Info(ctx, "webhook.purchase_recorded")
		}

		if mailer != nil {
			if err := mailer.SendPurchaseReceipt(ctx, record); err != nil && logg != nil {
				logg.Warn(logg.WithField(ctx, "email_error", err.Error()), "webhook.receipt_email_failed")
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"receiptId": record.ReceiptID,
			"message":   "Purchase recorded successfully",
		})
	}
}

func outcomeForError(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeValidation, pkgerrors.CodeNotFound:
			return "rejected"
		}
	}
	return "error"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
