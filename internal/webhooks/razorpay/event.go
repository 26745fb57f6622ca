package razorpay

import (
	"encoding/json"
	"strings"

	pkgerrors "github.com/rajuvisuals/payments-backend/pkg/errors"
)

// EventPaymentCaptured is the only event name that triggers a purchase write;
// everything else is acknowledged and dropped.
const EventPaymentCaptured = "payment.captured"

const noteAssetID = "asset_id"

// PaymentEntity is the payment object nested inside a Razorpay webhook
// delivery. Amount is in the smallest currency unit (paise for INR).
type PaymentEntity struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Email    string            `json:"email"`
	Notes    map[string]string `json:"notes"`
}

// AssetID returns the purchased asset reference from the payment notes.
func (p *PaymentEntity) AssetID() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Notes[noteAssetID])
}

// Event is the decoded envelope of one webhook delivery. Payment is populated
// only for payment.captured.
type Event struct {
	Name    string
	Payment *PaymentEntity
}

type wireEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity *PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseEvent decodes a verified webhook body into a typed Event. A body that
// is not JSON, lacks the event name, or carries a captured payment without
// its entity is rejected as malformed rather than silently defaulting.
func ParseEvent(payload []byte, defaultCurrency string) (*Event, error) {
	var wire wireEvent
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Malformed payload")
	}

	name := strings.TrimSpace(wire.Event)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Malformed payload")
	}

	if name != EventPaymentCaptured {
		return &Event{Name: name}, nil
	}

	entity := wire.Payload.Payment.Entity
	if entity == nil || entity.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Malformed payload")
	}
	if entity.AssetID() == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Asset ID missing")
	}
	if entity.Currency == "" {
		entity.Currency = defaultCurrency
	}

	return &Event{Name: name, Payment: entity}, nil
}
