package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Razorpay  RazorpayConfig
	Firestore FirestoreConfig
	Resend    ResendConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RAJUVISUALS_APP_ENV" required:"true"`
	Port         string `envconfig:"RAJUVISUALS_APP_PORT" required:"true"`
	ServiceName  string `envconfig:"RAJUVISUALS_SERVICE_NAME" default:"Razorpay Webhook Handler"`
	LogLevel     string `envconfig:"RAJUVISUALS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RAJUVISUALS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RazorpayConfig struct {
	// WebhookSecret is the shared secret from the Razorpay dashboard. An
	// empty secret makes every signature check fail closed; startup logs a
	// warning rather than refusing to boot so the health endpoint stays up.
	WebhookSecret   string `envconfig:"RAJUVISUALS_RAZORPAY_WEBHOOK_SECRET"`
	DefaultCurrency string `envconfig:"RAJUVISUALS_RAZORPAY_DEFAULT_CURRENCY" default:"INR"`
}

type FirestoreConfig struct {
	ProjectID              string `envconfig:"RAJUVISUALS_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"RAJUVISUALS_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"RAJUVISUALS_GOOGLE_APPLICATION_CREDENTIALS"`
	AssetsCollection       string `envconfig:"RAJUVISUALS_FIRESTORE_ASSETS_COLLECTION" default:"assets"`
	PurchasesCollection    string `envconfig:"RAJUVISUALS_FIRESTORE_PURCHASES_COLLECTION" default:"purchases"`
}

type ResendConfig struct {
	APIKey           string `envconfig:"RAJUVISUALS_RESEND_API_KEY"`
	FromAddress      string `envconfig:"RAJUVISUALS_RESEND_FROM" default:"Raju Visuals <reply@rajuvisuals.com>"`
	ContactRecipient string `envconfig:"RAJUVISUALS_CONTACT_RECIPIENT" default:"contact@rajuvisuals.com"`
}

// Enabled reports whether outbound email can be sent at all.
func (r ResendConfig) Enabled() bool {
	return strings.TrimSpace(r.APIKey) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"RAJUVISUALS_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000,https://rajuvisuals.com,https://www.rajuvisuals.com,https://rajuvisuals.in,https://www.rajuvisuals.in"`
}
