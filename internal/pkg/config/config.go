package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection,
//   secrets) or that must never ship with a baked-in default
// - default: values common across all environments (business hours, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Business BusinessConfig
	Payment  PaymentConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// BusinessConfig describes delivery hours for the single local timezone the
// shop operates in. All slot math interprets hours on the local wall clock.
type BusinessConfig struct {
	OpenHour        int           `envconfig:"BUSINESS_OPEN_HOUR" default:"8"`
	CloseHour       int           `envconfig:"BUSINESS_CLOSE_HOUR" default:"20"`
	BufferHours     int           `envconfig:"BUSINESS_BUFFER_HOURS" default:"2"`
	SlotGranularity time.Duration `envconfig:"BUSINESS_SLOT_GRANULARITY" default:"30m"`
}

type PaymentConfig struct {
	BaseURL          string        `envconfig:"PAYMENT_BASE_URL" default:"https://api.stripe.com/v1"`
	SecretKey        string        `envconfig:"PAYMENT_SECRET_KEY" required:"true"`
	WebhookSecret    string        `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
	RequestTimeout   time.Duration `envconfig:"PAYMENT_REQUEST_TIMEOUT" default:"10s"`
	WebhookTolerance time.Duration `envconfig:"PAYMENT_WEBHOOK_TOLERANCE" default:"5m"`
}

type NotifyConfig struct {
	OrderWebhookURL string        `envconfig:"NOTIFY_ORDER_WEBHOOK_URL" default:""`
	RequestTimeout  time.Duration `envconfig:"NOTIFY_REQUEST_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Business.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (b BusinessConfig) Validate() error {
	if b.OpenHour < 0 || b.CloseHour > 24 || b.OpenHour >= b.CloseHour {
		return fmt.Errorf("business hours misconfigured: open=%d close=%d", b.OpenHour, b.CloseHour)
	}
	if b.BufferHours < 0 || b.BufferHours >= b.CloseHour-b.OpenHour {
		return fmt.Errorf("delivery buffer must fit inside business hours: buffer=%d", b.BufferHours)
	}
	if b.SlotGranularity <= 0 || b.SlotGranularity%time.Minute != 0 {
		return fmt.Errorf("slot granularity must be a positive whole number of minutes: %s", b.SlotGranularity)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Business: BusinessConfig{
			OpenHour:        8,
			CloseHour:       20,
			BufferHours:     2,
			SlotGranularity: 30 * time.Minute,
		},
	}
}
