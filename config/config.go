package config

import (
	"strings"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Database Configuration
	Postgres PostgresConfig

	// Credential storage
	Encrypter EncrypterConfig

	// Pipeline Configuration
	Sync      SyncConfig
	Sentiment SentimentConfig
	Notifier  NotifierConfig

	// Outbound provider defaults (per-company keys override these)
	Resend ResendConfig
	Twilio TwilioConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level    string
	Mode     string
	Encoding string
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// EncrypterConfig is the configuration for credential encryption at rest.
type EncrypterConfig struct {
	Key string
}

// SyncConfig is the configuration for the ingestion pipeline.
type SyncConfig struct {
	FetchLimit        int
	SampleCount       int
	SuccessRateWindow int // days
	FetchTimeout      time.Duration
}

// SentimentConfig is the configuration for the sentiment provider chain.
type SentimentConfig struct {
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

// NotifierConfig is the configuration for notification dispatch.
type NotifierConfig struct {
	Window            time.Duration
	NegativeThreshold float64
}

// ResendConfig is the configuration for the Resend email provider.
type ResendConfig struct {
	APIKey string
	From   string
}

// TwilioConfig is the configuration for the Twilio SMS/WhatsApp provider.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("repupulse-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/repupulse/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "read config file")
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// HTTP server
	cfg.HTTPServer.Host = viper.GetString("server.host")
	cfg.HTTPServer.Port = viper.GetInt("server.port")
	cfg.HTTPServer.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Sync
	cfg.Sync.FetchLimit = viper.GetInt("sync.fetch_limit")
	cfg.Sync.SampleCount = viper.GetInt("sync.sample_count")
	cfg.Sync.SuccessRateWindow = viper.GetInt("sync.success_rate_window")
	cfg.Sync.FetchTimeout = viper.GetDuration("sync.fetch_timeout")

	// Sentiment
	cfg.Sentiment.OpenAIAPIKey = viper.GetString("sentiment.openai_api_key")
	cfg.Sentiment.OpenAIModel = viper.GetString("sentiment.openai_model")
	cfg.Sentiment.GeminiAPIKey = viper.GetString("sentiment.gemini_api_key")
	cfg.Sentiment.GeminiModel = viper.GetString("sentiment.gemini_model")
	cfg.Sentiment.Timeout = viper.GetDuration("sentiment.timeout")

	// Notifier
	cfg.Notifier.Window = viper.GetDuration("notifier.window")
	cfg.Notifier.NegativeThreshold = viper.GetFloat64("notifier.negative_threshold")

	// Resend
	cfg.Resend.APIKey = viper.GetString("resend.api_key")
	cfg.Resend.From = viper.GetString("resend.from")

	// Twilio
	cfg.Twilio.AccountSID = viper.GetString("twilio.account_sid")
	cfg.Twilio.AuthToken = viper.GetString("twilio.auth_token")
	cfg.Twilio.FromNumber = viper.GetString("twilio.from_number")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "repupulse")
	viper.SetDefault("postgres.sslmode", "disable")

	// Sync
	viper.SetDefault("sync.fetch_limit", 20)
	viper.SetDefault("sync.sample_count", 20)
	viper.SetDefault("sync.success_rate_window", 30)
	viper.SetDefault("sync.fetch_timeout", 30*time.Second)

	// Sentiment
	viper.SetDefault("sentiment.openai_model", "gpt-3.5-turbo")
	viper.SetDefault("sentiment.gemini_model", "gemini-1.5-flash")
	viper.SetDefault("sentiment.timeout", 20*time.Second)

	// Notifier
	viper.SetDefault("notifier.window", 30*time.Minute)
	viper.SetDefault("notifier.negative_threshold", 3.0)

	// Resend
	viper.SetDefault("resend.from", "noreply@repupulse.com")
}

func validate(cfg *Config) error {
	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return errors.New("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return errors.New("postgres.dbname is required")
	}

	// Validate Encrypter (AES key lengths only)
	if l := len(cfg.Encrypter.Key); l != 0 && l != 16 && l != 24 && l != 32 {
		return errors.New("encrypter.key must be 16, 24, or 32 bytes")
	}

	// Validate Sync
	if cfg.Sync.FetchLimit <= 0 {
		return errors.New("sync.fetch_limit must be positive")
	}

	// Validate Notifier
	if cfg.Notifier.Window <= 0 {
		return errors.New("notifier.window must be positive")
	}

	return nil
}
