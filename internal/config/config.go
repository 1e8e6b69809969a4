package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries all runtime settings. Environment variables win over flags;
// flags only apply where the corresponding variable is unset.
type Config struct {
	Port          string        `env:"PORT"`
	DatabasePath  string        `env:"DATABASE_PATH"`
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
	AdminName     string        `env:"ADMIN_NAME"`
	Commission    float64       `env:"COMMISSION_RATE"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
	LogLevel      string        `env:"LOG_LEVEL"`
}

// NewConfig loads .env (if present), environment variables and flags,
// then fills in defaults.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the SQLite state file")
	flag.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "seeded admin account email")
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "seeded admin account password")
	flag.StringVar(&cfg.AdminName, "admin-name", cfg.AdminName, "seeded admin account display name")
	flag.Float64Var(&cfg.Commission, "commission", cfg.Commission, "seller commission rate taken at settlement")
	flag.DurationVar(&cfg.SweepInterval, "sweep-interval", cfg.SweepInterval, "how often expired auctions are settled")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "auction.db"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@gmail.com"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "123456"
	}
	if cfg.AdminName == "" {
		cfg.AdminName = "Admin"
	}
	if cfg.Commission <= 0 {
		cfg.Commission = 0.05
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 30 * time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
