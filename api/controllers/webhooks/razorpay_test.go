package webhooks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rajuvisuals/payments-backend/internal/purchases"
	"github.com/rajuvisuals/payments-backend/internal/webhooks/razorpay"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	pkgerrors "github.com/rajuvisuals/payments-backend/pkg/errors"
)

const testSecret = "whsec_test"

func testRazorpayConfig() config.RazorpayConfig {
	return config.RazorpayConfig{WebhookSecret: testSecret, DefaultCurrency: "INR"}
}

func buildCapturedEvent(t *testing.T, assetID string) []byte {
	t.Helper()
	body := map[string]any{
		"event": "payment.captured",
		"payload": map[string]any{
			"payment": map[string]any{
				"entity": map[string]any{
					"id":       "pay_test1",
					"amount":   50000,
					"currency": "INR",
					"email":    "buyer@example.com",
					"notes":    map[string]string{"asset_id": assetID},
				},
			},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return payload
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(handler http.HandlerFunc, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/razorpay", bytes.NewReader(payload))
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

type fakeRecorder struct {
	calls  int
	err    error
	record *purchases.PurchaseRecord
}

func (f *fakeRecorder) Record(ctx context.Context, payment *razorpay.PaymentEntity) (*purchases.PurchaseRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.record != nil {
		return f.record, nil
	}
	return &purchases.PurchaseRecord{ReceiptID: "RCP-68B0C000-A1B2C3", AssetID: payment.AssetID()}, nil
}

type fakeMailer struct {
	calls int
	err   error
}

func (f *fakeMailer) SendPurchaseReceipt(ctx context.Context, record *purchases.PurchaseRecord) error {
	f.calls++
	return f.err
}

func TestRazorpayWebhook_CapturedPayment(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	svc := &fakeRecorder{}
	mailer := &fakeMailer{}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), mailer, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body)
	}
	if body["receiptId"] != "RCP-68B0C000-A1B2C3" {
		t.Fatalf("unexpected receiptId: %v", body["receiptId"])
	}
	if body["message"] != "Purchase recorded successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if svc.calls != 1 {
		t.Fatalf("expected one record call, got %d", svc.calls)
	}
	if mailer.calls != 1 {
		t.Fatalf("expected one receipt email, got %d", mailer.calls)
	}
}

func TestRazorpayWebhook_MissingSignature(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	svc := &fakeRecorder{}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Signature missing" {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.calls != 0 {
		t.Fatalf("service should not run without signature")
	}
}

func TestRazorpayWebhook_InvalidSignature(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	svc := &fakeRecorder{}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, "wrong-secret"))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid signature" {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.calls != 0 {
		t.Fatalf("service should not run on invalid signature")
	}
}

func TestRazorpayWebhook_EmptySecretFailsClosed(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	handler := RazorpayWebhook(&fakeRecorder{}, config.RazorpayConfig{DefaultCurrency: "INR"}, nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with empty secret, got %d", rec.Code)
	}
}

func TestRazorpayWebhook_OtherEventsAcknowledged(t *testing.T) {
	payload := []byte(`{"event":"payment.failed","payload":{}}`)
	svc := &fakeRecorder{}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Event received" {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.calls != 0 {
		t.Fatalf("non-captured events must not hit the store")
	}
}

func TestRazorpayWebhook_MissingAssetID(t *testing.T) {
	payload := buildCapturedEvent(t, "")
	svc := &fakeRecorder{}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Asset ID missing" {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.calls != 0 {
		t.Fatalf("service should not run without an asset id")
	}
}

func TestRazorpayWebhook_AssetNotFound(t *testing.T) {
	payload := buildCapturedEvent(t, "ghost")
	svc := &fakeRecorder{err: pkgerrors.New(pkgerrors.CodeNotFound, "Asset not found")}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Asset not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRazorpayWebhook_StoreUnavailable(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	handler := RazorpayWebhook(nil, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Database not available" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRazorpayWebhook_StoreWriteFailure(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	svc := &fakeRecorder{err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("rpc unavailable"), "write purchase record")}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Database not available" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRazorpayWebhook_ReceiptEmailFailureDoesNotBreakResponse(t *testing.T) {
	payload := buildCapturedEvent(t, "asset_42")
	svc := &fakeRecorder{}
	mailer := &fakeMailer{err: errors.New("resend unavailable")}
	handler := RazorpayWebhook(svc, testRazorpayConfig(), mailer, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite email failure, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRazorpayWebhook_MalformedPayload(t *testing.T) {
	payload := []byte(`{"event":`)
	handler := RazorpayWebhook(&fakeRecorder{}, testRazorpayConfig(), nil, nil, nil)

	rec := postWebhook(handler, payload, sign(payload, testSecret))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Malformed payload" {
		t.Fatalf("unexpected body: %v", body)
	}
}
