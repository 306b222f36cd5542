package app

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
	"github.com/aussiebroadwan/eventplanner/pkg/mailx"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer         string `env:"API_ISSUER" envDefault:"eventplanner"`
	SigningKeyFile string `env:"API_SIGNING_KEY_FILE" envDefault:"signing.pem"` // Empty means an ephemeral key
	SigningKeyID   string `env:"API_SIGNING_KEY_ID" envDefault:"eventplanner-1"`
	DatabaseFile   string `env:"API_DATABASE_FILE" envDefault:"eventplanner.db"`
	PepperFile     string `env:"API_PEPPER_FILE" envDefault:"pepper"`

	// PublicURL is the web client base used in invitation links.
	PublicURL   string   `env:"PUBLIC_URL" envDefault:"http://localhost:3000"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	AccessTTL            time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTTL           time.Duration `env:"REFRESH_TOKEN_TTL"`
	InvitationTTL        time.Duration `env:"INVITATION_TTL"`
	HousekeepingSchedule string        `env:"HOUSEKEEPING_SCHEDULE" envDefault:"@every 1h"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	SMTP       mailx.SMTPSettings      `envPrefix:"SMTP_"`
	RateLimits httpx.RateLimitProfiles `envPrefix:"RATELIMIT_"`
}

// LoadConfig reads the environment. Rate limit profiles start from
// httpx.DefaultRateLimits so a deployment only overrides what it needs.
func LoadConfig() (Config, error) {
	cfg := Config{RateLimits: httpx.DefaultRateLimits()}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	if cfg.InvitationTTL <= 0 {
		cfg.InvitationTTL = service.DefaultInvitationTTL
	}
	if err := cfg.SMTP.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
