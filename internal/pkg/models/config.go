package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Pricing   PricingConfig
	Dispatch  DispatchConfig
	Twilio    TwilioConfig
	Stripe    StripeConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// PricingConfig controls price validation and the rate config cache
type PricingConfig struct {
	ToleranceMinor int64
	CacheTTL       time.Duration
}

// DispatchConfig controls the WhatsApp dispatch flow
type DispatchConfig struct {
	SessionTTL         time.Duration
	DefaultCountryCode string
	WebhookDedupTTL    time.Duration
}

// TwilioConfig contains the WhatsApp provider credentials
type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	FromNumber     string
	BaseURL        string
	WebhookURL     string
	VerifyWebhooks bool
	Timeout        time.Duration
}

// StripeConfig contains the payment provider credentials
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	BaseURL       string
	SuccessURL    string
	CancelURL     string
	Timeout       time.Duration
}

// RateLimitConfig throttles public endpoints per client IP
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}
