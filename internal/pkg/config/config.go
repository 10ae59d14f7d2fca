package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   webhook secret), security settings
// - default: Values common across all environments (hold duration, sweep
//   interval, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Hold    HoldConfig
	Sweep   SweepConfig
	Webhook WebhookConfig
	Notify  NotifyConfig
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

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type SessionConfig struct {
	CookieDomain string `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite     string `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type HoldConfig struct {
	// Duration is the lifetime of a cart hold from the moment an item is
	// added until it lapses.
	Duration time.Duration `envconfig:"HOLD_DURATION" default:"15m"`
	// ExpiryDebounce is how long a client-side countdown tolerates an
	// apparently-expired hold before evicting it, to absorb clock skew
	// between client and store.
	ExpiryDebounce time.Duration `envconfig:"HOLD_EXPIRY_DEBOUNCE" default:"5s"`
}

type SweepConfig struct {
	Interval  time.Duration `envconfig:"SWEEP_INTERVAL" default:"2m"`
	BatchSize int32         `envconfig:"SWEEP_BATCH_SIZE" default:"500"`
}

type WebhookConfig struct {
	// Secret is shared with the payment processor and verifies callback
	// signatures (HMAC-SHA256 over the raw body).
	Secret string `envconfig:"PAYMENT_WEBHOOK_SECRET" required:"true"`
}

type NotifyConfig struct {
	// EmailEndpoint is the transactional-email collaborator; empty disables
	// delivery (jobs stay queued).
	EmailEndpoint string        `envconfig:"EMAIL_ENDPOINT" default:""`
	PollInterval  time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Hold: HoldConfig{
			Duration:       15 * time.Minute,
			ExpiryDebounce: 5 * time.Second,
		},
		Sweep: SweepConfig{
			Interval:  2 * time.Minute,
			BatchSize: 500,
		},
		Webhook: WebhookConfig{
			Secret: "test-webhook-secret",
		},
	}
}
