package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrNotFound = errors.New("document not found")

	errProjectIDRequired    = errors.New("gcp project id is required")
	errCollectionRequired   = errors.New("collection name is required")
	errDocumentIDRequired   = errors.New("document id is required")
	errClientNotInitialized = errors.New("firestore client not initialized")
)

// ServerTimestamp marks a field to be stamped by Firestore at write time.
var ServerTimestamp any = gcfirestore.ServerTimestamp

// Client is the narrow document-store surface the purchase workflow needs:
// read one document, write one document.
type Client struct {
	raw *gcfirestore.Client
	cfg config.FirestoreConfig
}

type Pinger interface {
	Ping(context.Context) error
}

// New creates a Firestore client for the configured project.
func New(ctx context.Context, cfg config.FirestoreConfig, logg *logger.Logger) (*Client, error) {
	projectID := strings.TrimSpace(cfg.ProjectID)
	if projectID == "" {
		return nil, errProjectIDRequired
	}

	raw, err := gcfirestore.NewClient(ctx, projectID, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "firestore client initialized")
	}

	return &Client{raw: raw, cfg: cfg}, nil
}

func clientOptions(cfg config.FirestoreConfig) []option.ClientOption {
	if json := strings.TrimSpace(cfg.CredentialsJSON); json != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(json))}
	}
	if file := strings.TrimSpace(cfg.ApplicationCredentials); file != "" {
		return []option.ClientOption{option.WithCredentialsFile(file)}
	}
	return nil
}

// GetDocument reads a single document and returns its fields. Returns
// ErrNotFound when the document does not exist.
func (c *Client) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	if c == nil || c.raw == nil {
		return nil, errClientNotInitialized
	}
	if collection == "" {
		return nil, errCollectionRequired
	}
	if id == "" {
		return nil, errDocumentIDRequired
	}

	snap, err := c.raw.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return snap.Data(), nil
}

// SetDocument writes the fields as a single document put keyed by id.
func (c *Client) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if c == nil || c.raw == nil {
		return errClientNotInitialized
	}
	if collection == "" {
		return errCollectionRequired
	}
	if id == "" {
		return errDocumentIDRequired
	}

	if _, err := c.raw.Collection(collection).Doc(id).Set(ctx, fields); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Ping probes connectivity by reading a sentinel document; an absent document
// still proves the store answered.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.raw == nil {
		return errClientNotInitialized
	}
	_, err := c.raw.Collection(c.assetsCollection()).Doc("__ping__").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("ping firestore: %w", err)
	}
	return nil
}

func (c *Client) assetsCollection() string {
	if col := strings.TrimSpace(c.cfg.AssetsCollection); col != "" {
		return col
	}
	return "assets"
}

// Close releases the underlying client.
func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}
