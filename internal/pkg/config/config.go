package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (policy knobs, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Circulation CirculationConfig
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
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// CirculationConfig carries the lending policy knobs. DailyFineRate is a
// decimal string so the rate never passes through a float.
type CirculationConfig struct {
	MaxActiveBorrows int           `envconfig:"MAX_ACTIVE_BORROWS" default:"5"`
	MaxRenewals      int           `envconfig:"MAX_RENEWALS" default:"2"`
	DailyFineRate    string        `envconfig:"DAILY_FINE_RATE" default:"0.50"`
	DefaultLoanDays  int           `envconfig:"DEFAULT_LOAN_DAYS" default:"14"`
	DefaultRenewDays int           `envconfig:"DEFAULT_RENEW_DAYS" default:"14"`
	PickupWindow     time.Duration `envconfig:"PICKUP_WINDOW" default:"48h"`
	QueueWindow      time.Duration `envconfig:"QUEUE_WINDOW" default:"720h"`
	SyncBatchSize    int           `envconfig:"SYNC_BATCH_SIZE" default:"100"`
}

func (c CirculationConfig) FineRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.DailyFineRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid DAILY_FINE_RATE %q: %w", c.DailyFineRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("DAILY_FINE_RATE must not be negative: %s", c.DailyFineRate)
	}
	return rate, nil
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
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e",
			Duration: time.Hour,
		},
		Circulation: CirculationConfig{
			MaxActiveBorrows: 5,
			MaxRenewals:      2,
			DailyFineRate:    "0.50",
			DefaultLoanDays:  14,
			DefaultRenewDays: 14,
			PickupWindow:     48 * time.Hour,
			QueueWindow:      720 * time.Hour,
			SyncBatchSize:    100,
		},
	}
}
