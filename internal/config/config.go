// Package config loads the service configuration from SWAPWATCH_* environment
// variables.
package config

import (
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/swapwatch/internal/pkg/validator"
)

// envPrefix is prepended to every variable name, e.g. SWAPWATCH_LOG_LEVEL.
const envPrefix = "swapwatch"

// Registry backends.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds every runtime setting.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFile          string `envconfig:"LOG_FILE"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"swapwatch" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	HTTPAddr         string `envconfig:"HTTP_ADDR" default:"0.0.0.0:5000" validate:"required,hostname_port"`
	WebhookPath      string `envconfig:"WEBHOOK_PATH" default:"/helius-webhook" validate:"required,startswith=/"`
	WebhookAuthToken string `envconfig:"WEBHOOK_AUTH_TOKEN"`

	RPCEndpoint     string `envconfig:"RPC_ENDPOINT" default:"https://mainnet.helius-rpc.com" validate:"required,url"`
	HeliusAPIKey    string `envconfig:"HELIUS_API_KEY" validate:"required"`
	HeliusAPIURL    string `envconfig:"HELIUS_API_URL" default:"https://api.helius.xyz" validate:"required,url"`
	HeliusWebhookID string `envconfig:"HELIUS_WEBHOOK_ID" validate:"required"`

	TokenListURL string `envconfig:"TOKEN_LIST_URL" default:"https://api.github.com/repos/solana-labs/token-list/contents/assets/mainnet" validate:"required,url"`
	IPFSGateway  string `envconfig:"IPFS_GATEWAY" default:"https://ipfs.io/ipfs/" validate:"required,url"`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s" validate:"gt=0"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"min=0"`

	RegistryBackend string `envconfig:"REGISTRY_BACKEND" default:"redis" validate:"oneof=redis postgres"`
	RedisAddr       string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required_if=RegistryBackend redis"`
	RedisUsername   string `envconfig:"REDIS_USERNAME"`
	RedisPassword   string `envconfig:"REDIS_PASSWORD"`
	RedisDB         int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
	PostgresDSN     string `envconfig:"POSTGRES_DSN" validate:"required_if=RegistryBackend postgres"`

	IngestWorkers    int           `envconfig:"INGEST_WORKERS" default:"4" validate:"min=1"`
	IngestQueueSize  int           `envconfig:"INGEST_QUEUE_SIZE" default:"64" validate:"min=0"`
	DeliveryAttempts uint          `envconfig:"DELIVERY_ATTEMPTS" default:"3" validate:"min=1"`
	ClaimTTL         time.Duration `envconfig:"CLAIM_TTL" default:"1h" validate:"gt=0"`
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	validator.Init()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RPCURL returns the RPC endpoint authenticated with the Helius API key,
// unless the endpoint already carries one.
func (c Config) RPCURL() string {
	u, err := url.Parse(c.RPCEndpoint)
	if err != nil {
		return c.RPCEndpoint
	}

	q := u.Query()
	if q.Get("api-key") != "" {
		return c.RPCEndpoint
	}

	q.Set("api-key", c.HeliusAPIKey)
	u.RawQuery = q.Encode()
	return u.String()
}
