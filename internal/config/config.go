package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	AusPost AusPost `validate:"required"`

	Store Store `validate:"required"`

	Options Options `validate:"required"`

	Kafka Kafka

	Postgres Postgres

	Cache Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

// AusPost configures the carrier API client.
type AusPost struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"required,url"`

	Timeout time.Duration `validate:"gt=0"`

	// ServiceTimeout bounds all carrier calls of one postage service.
	ServiceTimeout time.Duration `validate:"gte=0"`
}

// Store is the shipper's own address; every quote originates here.
type Store struct {
	Postcode    int    `validate:"required,gt=0"`
	CountryCode string `validate:"required,len=2"`
}

// Options mirrors the merchant-facing plugin settings.
type Options struct {
	// EnabledServices holds catalog keys; empty enables everything.
	EnabledServices []string

	// Package type labels per destination; empty enables all built-ins.
	DomesticPackageTypes      []string
	InternationalPackageTypes []string

	Insurance           bool
	InsurancePercentage float64 `validate:"gte=0,lte=100"`
	InsuranceLimit      bool

	RateMultiplier float64 `validate:"gte=0.1"`
	Rounding       string  `validate:"oneof=half-up half-down half-even half-odd"`

	LogRequests  bool
	LogResponses bool
}

type Kafka struct {
	Enabled bool

	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Enabled bool

	Host     string `validate:"required_if=Enabled true"`
	Port     int    `validate:"gte=0,lte=65535"`
	DBName   string `validate:"required_if=Enabled true"`
	User     string `validate:"required_if=Enabled true"`
	Password string

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		AusPost: AusPost{
			APIKey:         env("AUSPOST_API_KEY", ""),
			BaseURL:        env("AUSPOST_BASE_URL", "https://digitalapi.auspost.com.au"),
			Timeout:        envDuration("AUSPOST_TIMEOUT", 10*time.Second),
			ServiceTimeout: envDuration("AUSPOST_SERVICE_TIMEOUT", 30*time.Second),
		},

		Store: Store{
			Postcode:    envInt("STORE_POSTCODE", 0),
			CountryCode: env("STORE_COUNTRY_CODE", "AU"),
		},

		Options: Options{
			EnabledServices:           envList("ENABLED_SERVICES"),
			DomesticPackageTypes:      envList("DOMESTIC_PACKAGE_TYPES"),
			InternationalPackageTypes: envList("INTERNATIONAL_PACKAGE_TYPES"),

			Insurance:           envBool("INSURANCE_ENABLED", false),
			InsurancePercentage: envFloat("INSURANCE_PERCENTAGE", 1),
			InsuranceLimit:      envBool("INSURANCE_LIMIT", true),

			RateMultiplier: envFloat("RATE_MULTIPLIER", 1.0),
			Rounding:       env("PRICE_ROUNDING", "half-up"),

			LogRequests:  envBool("LOG_CARRIER_REQUESTS", false),
			LogResponses: envBool("LOG_CARRIER_RESPONSES", false),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),

			GroupID: env("KAFKA_GROUP_ID", "auspost-rate-service"),
			Topic:   env("KAFKA_TOPIC", "shipments"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Enabled: envBool("POSTGRES_ENABLED", false),

			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "auspost_rates"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("QUOTE_CACHE_CAPACITY", 1000),
			TTL:      envDuration("QUOTE_CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
