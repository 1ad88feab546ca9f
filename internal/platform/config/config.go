package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"poemclub"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"postgres"`
	PostgresDSN    string `envconfig:"POSTGRES_DSN"`
	SQLitePath     string `envconfig:"SQLITE_PATH" default:"poemclub.db"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`
	RedisURL       string `envconfig:"REDIS_URL"`

	PublicDomain        string   `envconfig:"PUBLIC_DOMAIN" default:"mereautomaton.club"`
	PublicScheme        string   `envconfig:"PUBLIC_SCHEME" default:"https"`
	DevHosts            []string `envconfig:"DEV_HOSTS" default:"localhost,127.0.0.1,0.0.0.0,::1"`
	PreviewHostSuffixes []string `envconfig:"PREVIEW_HOST_SUFFIXES" default:".vercel.app,.netlify.app,.pages.dev"`
	ReservedSubdomains  []string `envconfig:"RESERVED_SUBDOMAINS" default:"www,api,admin"`

	BusinessTimezone      string        `envconfig:"BUSINESS_TIMEZONE" default:"Africa/Johannesburg"`
	BasePriceCents        int64         `envconfig:"SPONSOR_BASE_PRICE_CENTS" default:"15000"`
	WeekendSurchargeCents int64         `envconfig:"SPONSOR_WEEKEND_SURCHARGE_CENTS" default:"10000"`
	Currency              string        `envconfig:"SPONSOR_CURRENCY" default:"ZAR"`
	ReservationTTL        time.Duration `envconfig:"SPONSOR_RESERVATION_TTL" default:"30m"`
	SeedHorizonDays       int           `envconfig:"SPONSOR_SEED_HORIZON_DAYS" default:"60"`
	SweepInterval         time.Duration `envconfig:"SPONSOR_SWEEP_INTERVAL" default:"1m"`

	PaymentLinkBase      string `envconfig:"PAYMENT_LINK_BASE"`
	PaymentWebhookSecret string `envconfig:"PAYMENT_WEBHOOK_SECRET"`
	// SponsorClaimSecret signs claim tokens; empty falls back to the webhook secret.
	SponsorClaimSecret string `envconfig:"SPONSOR_CLAIM_SECRET"`

	GenAIAPIKey         string `envconfig:"GEMINI_API_KEY"`
	GenAIModel          string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GenerateRateLimit   string `envconfig:"GENERATE_RATE_LIMIT" default:"10-M"`
	RateLimitTrustProxy bool   `envconfig:"RATE_LIMIT_TRUST_PROXY" default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.DatabaseDriver = strings.ToLower(strings.TrimSpace(c.DatabaseDriver))
	c.PublicDomain = strings.ToLower(strings.TrimSpace(c.PublicDomain))
	c.DevHosts = cleanList(c.DevHosts)
	c.PreviewHostSuffixes = cleanList(c.PreviewHostSuffixes)
	c.ReservedSubdomains = cleanList(c.ReservedSubdomains)
}

// Validate checks cross-field requirements that struct tags cannot express.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("POSTGRES_DSN is required when DATABASE_DRIVER=postgres")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return errors.New("SQLITE_PATH is required when DATABASE_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.PublicDomain == "" || !strings.Contains(c.PublicDomain, ".") {
		return fmt.Errorf("PUBLIC_DOMAIN must be a dotted host, got %q", c.PublicDomain)
	}
	if _, err := time.LoadLocation(c.BusinessTimezone); err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE: %w", err)
	}
	if c.BasePriceCents <= 0 || c.WeekendSurchargeCents < 0 {
		return errors.New("sponsor prices must be positive")
	}
	if c.ReservationTTL <= 0 {
		return errors.New("SPONSOR_RESERVATION_TTL must be positive")
	}
	return nil
}

// ClaimSecret is the key for sponsor claim tokens.
func (c Config) ClaimSecret() string {
	if secret := strings.TrimSpace(c.SponsorClaimSecret); secret != "" {
		return secret
	}
	return strings.TrimSpace(c.PaymentWebhookSecret)
}

// Location resolves the business timezone. Validate has already checked it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
