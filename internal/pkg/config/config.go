package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/spf13/viper"
)

var env = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// InitConfig loads configPath into the environment when running locally and
// builds the application config from environment variables
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "dispatch-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "dev")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "chauffeur")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "chauffeur")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/dispatch.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	// Pricing config
	configs.Pricing.ToleranceMinor = GetEnvAsInt64("PRICING_TOLERANCE_MINOR", 100)
	configs.Pricing.CacheTTL = GetEnvAsDuration("PRICING_CACHE_TTL", 5*time.Minute)

	// Dispatch config
	configs.Dispatch.SessionTTL = GetEnvAsDuration("DISPATCH_SESSION_TTL", 24*time.Hour)
	configs.Dispatch.DefaultCountryCode = GetEnv("DISPATCH_DEFAULT_COUNTRY_CODE", "44")
	configs.Dispatch.WebhookDedupTTL = GetEnvAsDuration("WEBHOOK_DEDUP_TTL", 24*time.Hour)

	// Twilio config
	configs.Twilio.AccountSID = GetEnv("TWILIO_ACCOUNT_SID", "")
	configs.Twilio.AuthToken = GetEnv("TWILIO_AUTH_TOKEN", "")
	configs.Twilio.FromNumber = GetEnv("TWILIO_FROM_NUMBER", "")
	configs.Twilio.BaseURL = GetEnv("TWILIO_BASE_URL", "https://api.twilio.com")
	configs.Twilio.WebhookURL = GetEnv("TWILIO_WEBHOOK_URL", "")
	configs.Twilio.VerifyWebhooks = GetEnvAsBool("TWILIO_VERIFY_WEBHOOKS", true)
	configs.Twilio.Timeout = GetEnvAsDuration("TWILIO_TIMEOUT", 10*time.Second)

	// Stripe config
	configs.Stripe.SecretKey = GetEnv("STRIPE_SECRET_KEY", "")
	configs.Stripe.WebhookSecret = GetEnv("STRIPE_WEBHOOK_SECRET", "")
	configs.Stripe.BaseURL = GetEnv("STRIPE_BASE_URL", "https://api.stripe.com")
	configs.Stripe.SuccessURL = GetEnv("STRIPE_SUCCESS_URL", "")
	configs.Stripe.CancelURL = GetEnv("STRIPE_CANCEL_URL", "")
	configs.Stripe.Timeout = GetEnvAsDuration("STRIPE_TIMEOUT", 15*time.Second)

	// Rate limit config
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_LIMIT", 60)
	configs.RateLimit.Period = GetEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute)

	return configs
}

func lookup(key string) (string, bool) {
	if !env.IsSet(key) {
		return "", false
	}
	value := strings.TrimSpace(env.GetString(key))
	return value, value != ""
}

// GetEnv returns the environment value of key or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(raw) {
	case "1", "t", "true", "yes", "y", "on":
		return true
	case "0", "f", "false", "no", "n", "off":
		return false
	}
	log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
	return defaultValue
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go duration strings such as "24h" or "500ms"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}
