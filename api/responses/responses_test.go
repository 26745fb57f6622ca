package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	pkgerrors "github.com/rajuvisuals/payments-backend/pkg/errors"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.InfoLevel, Output: io.Discard})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteErrorStatusAndBody(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation surfaces typed message",
			err:        pkgerrors.New(pkgerrors.CodeValidation, "Signature missing"),
			wantStatus: 400,
			wantBody:   "Signature missing",
		},
		{
			name:       "signature message is fixed",
			err:        pkgerrors.New(pkgerrors.CodeSignature, "hmac mismatch for payment pay_1"),
			wantStatus: 403,
			wantBody:   "Invalid signature",
		},
		{
			name:       "not found surfaces typed message",
			err:        pkgerrors.New(pkgerrors.CodeNotFound, "Asset not found"),
			wantStatus: 404,
			wantBody:   "Asset not found",
		},
		{
			name:       "dependency hides internals",
			err:        pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("rpc unavailable"), "load asset"),
			wantStatus: 500,
			wantBody:   "Database not available",
		},
		{
			name:       "untyped error becomes internal",
			err:        errors.New("boom"),
			wantStatus: 500,
			wantBody:   "Internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), testLogger(), rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			body := decodeBody(t, rec)
			if body["error"] != tc.wantBody {
				t.Fatalf("error = %q, want %q", body["error"], tc.wantBody)
			}
		})
	}
}

func TestWriteJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, map[string]any{"message": "Event received"})

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Event received" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWriteErrorNilLogger(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeValidation, "Asset ID missing"))
	if rec.Code != 400 {
		t.Fatalf("status = %d", rec.Code)
	}
}
