package purchases

import (
	"context"
	"errors"
	"time"

	"github.com/rajuvisuals/payments-backend/internal/webhooks/razorpay"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	pkgerrors "github.com/rajuvisuals/payments-backend/pkg/errors"
	pkgfirestore "github.com/rajuvisuals/payments-backend/pkg/firestore"
)

// DocumentStore is the narrow store surface the purchase workflow depends
// on: one document read, one document write.
type DocumentStore interface {
	GetDocument(ctx context.Context, collection, id string) (map[string]any, error)
	SetDocument(ctx context.Context, collection, id string, fields map[string]any) error
}

type ServiceParams struct {
	Store        DocumentStore
	Config       config.FirestoreConfig
	Now          func() time.Time
	NewReceiptID func() string
}

// Service turns a verified captured payment into exactly one purchase
// record. Redelivery of the same gateway event produces a second record with
// a fresh receipt id; there is deliberately no dedup key on the payment id.
type Service struct {
	store        DocumentStore
	assets       string
	purchases    string
	now          func() time.Time
	newReceiptID func() string
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "document store required")
	}
	assets := params.Config.AssetsCollection
	if assets == "" {
		assets = "assets"
	}
	purchases := params.Config.PurchasesCollection
	if purchases == "" {
		purchases = "purchases"
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	newID := params.NewReceiptID
	if newID == nil {
		newID = NewReceiptID
	}
	return &Service{
		store:        params.Store,
		assets:       assets,
		purchases:    purchases,
		now:          now,
		newReceiptID: newID,
	}, nil
}

// Record looks up the purchased asset, mints a receipt id, and persists one
// purchase record keyed by it. The write is a single document put; on
// failure nothing was committed and the gateway's redelivery is the retry.
func (s *Service) Record(ctx context.Context, payment *razorpay.PaymentEntity) (*PurchaseRecord, error) {
	if payment == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Malformed payload")
	}

	assetID := payment.AssetID()
	if assetID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Asset ID missing")
	}

	fields, err := s.store.GetDocument(ctx, s.assets, assetID)
	if err != nil {
		if errors.Is(err, pkgfirestore.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Asset not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load asset")
	}
	asset := assetFromDocument(fields)

	record := &PurchaseRecord{
		ReceiptID:         s.newReceiptID(),
		AssetID:           assetID,
		AssetName:         asset.Title,
		Price:             asset.Price,
		DownloadLink:      asset.DownloadLink,
		PurchaseDate:      s.now().UTC().Format(time.RFC3339),
		BuyerEmail:        payment.Email,
		RazorpayPaymentID: payment.ID,
		RazorpayAmount:    payment.Amount,
		RazorpayCurrency:  payment.Currency,
		Verified:          true,
	}

	if err := s.store.SetDocument(ctx, s.purchases, record.ReceiptID, record.Fields()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write purchase record")
	}

	return record, nil
}
