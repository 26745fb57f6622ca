package purchases

import (
	pkgfirestore "github.com/rajuvisuals/payments-backend/pkg/firestore"
)

// Asset is the read-only view of a purchasable item looked up by the
// asset_id carried in the payment notes.
type Asset struct {
	Title        string
	Price        any
	DownloadLink string
}

func assetFromDocument(fields map[string]any) Asset {
	asset := Asset{
		Title: "Unknown Asset",
		Price: "N/A",
	}
	if title, ok := fields["title"].(string); ok && title != "" {
		asset.Title = title
	}
	if price, ok := fields["price"]; ok && price != nil {
		asset.Price = price
	}
	if link, ok := fields["downloadLink"].(string); ok {
		asset.DownloadLink = link
	}
	return asset
}

// PurchaseRecord is the durable artifact written for each verified captured
// payment. Asset fields are copied at creation time; later edits to the
// asset must not rewrite historical receipts.
type PurchaseRecord struct {
	ReceiptID         string
	AssetID           string
	AssetName         string
	Price             any
	DownloadLink      string
	PurchaseDate      string
	BuyerEmail        string
	RazorpayPaymentID string
	RazorpayAmount    int64
	RazorpayCurrency  string
	Verified          bool
}

// Fields renders the record as a document-store field map. createdAt is a
// server-assigned timestamp stamped by the store at write time.
func (r *PurchaseRecord) Fields() map[string]any {
	return map[string]any{
		"receiptId":         r.ReceiptID,
		"assetId":           r.AssetID,
		"assetName":         r.AssetName,
		"price":             r.Price,
		"downloadLink":      r.DownloadLink,
		"purchaseDate":      r.PurchaseDate,
		"buyerEmail":        r.BuyerEmail,
		"razorpayPaymentId": r.RazorpayPaymentID,
		"razorpayAmount":    r.RazorpayAmount,
		"razorpayCurrency":  r.RazorpayCurrency,
		"verified":          r.Verified,
		"createdAt":         pkgfirestore.ServerTimestamp,
	}
}
