package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything main needs to boot the service.
type Config struct {
	Port                   string
	GinMode                string
	DBDriver               string
	DBDSN                  string
	CORSAllowedOrigin      string
	RateLimitRPS           float64
	RateLimitBurst         int
	PaymentProcessingDelay time.Duration
	CheckoutTTL            time.Duration
	CheckoutSweepInterval  time.Duration
	SeedMockData           bool
	LogLevel               string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "file:coffeeshop?mode=memory&cache=shared")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("PAYMENT_PROCESSING_DELAY", "2s")
	v.SetDefault("CHECKOUT_TTL", "30m")
	v.SetDefault("CHECKOUT_SWEEP_INTERVAL", "1m")
	v.SetDefault("SEED_MOCK_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads configuration from the process environment. Call godotenv.Load
// first if a .env file should be honoured.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:                   v.GetString("PORT"),
		GinMode:                v.GetString("GIN_MODE"),
		DBDriver:               strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:                  v.GetString("DB_DSN"),
		CORSAllowedOrigin:      v.GetString("CORS_ALLOWED_ORIGIN"),
		RateLimitRPS:           v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:         v.GetInt("RATE_LIMIT_BURST"),
		PaymentProcessingDelay: v.GetDuration("PAYMENT_PROCESSING_DELAY"),
		CheckoutTTL:            v.GetDuration("CHECKOUT_TTL"),
		CheckoutSweepInterval:  v.GetDuration("CHECKOUT_SWEEP_INTERVAL"),
		SeedMockData:           v.GetBool("SEED_MOCK_DATA"),
		LogLevel:               v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is not set")
	}
	if c.DBDriver != "sqlite" && c.DBDriver != "mysql" {
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or mysql)", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is not set")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.PaymentProcessingDelay < 0 {
		return fmt.Errorf("PAYMENT_PROCESSING_DELAY must not be negative")
	}
	if c.CheckoutTTL <= 0 || c.CheckoutSweepInterval <= 0 {
		return fmt.Errorf("CHECKOUT_TTL and CHECKOUT_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// InitDB opens the configured database.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite serialises writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
