package config

const (
	EnvPrefix = "RAJUVISUALS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv              = "RAJUVISUALS_APP_ENV"
	EnvPort                = "RAJUVISUALS_APP_PORT"
	EnvServiceName         = "RAJUVISUALS_SERVICE_NAME"
	EnvLogLevel            = "RAJUVISUALS_LOG_LEVEL"
	EnvWebhookSecret       = "RAJUVISUALS_RAZORPAY_WEBHOOK_SECRET"
	EnvDefaultCurrency     = "RAJUVISUALS_RAZORPAY_DEFAULT_CURRENCY"
	EnvGCPProjectID        = "RAJUVISUALS_GCP_PROJECT_ID"
	EnvGCPCredentialsJSON  = "RAJUVISUALS_GCP_CREDENTIALS_JSON"
	EnvGCPCredentialsFile  = "RAJUVISUALS_GOOGLE_APPLICATION_CREDENTIALS"
	EnvAssetsCollection    = "RAJUVISUALS_FIRESTORE_ASSETS_COLLECTION"
	EnvPurchasesCollection = "RAJUVISUALS_FIRESTORE_PURCHASES_COLLECTION"
	EnvResendAPIKey        = "RAJUVISUALS_RESEND_API_KEY"
	EnvResendFrom          = "RAJUVISUALS_RESEND_FROM"
	EnvContactRecipient    = "RAJUVISUALS_CONTACT_RECIPIENT"
	EnvCORSAllowedOrigins  = "RAJUVISUALS_CORS_ALLOWED_ORIGINS"
)
