package cookie

import (
	"net/http"

	"github.com/dmitrymomot/signedcookie/pkg/signer"
)

// Config holds codec configuration. Attribute fields are encoder defaults
// and are only applied when non-zero.
type Config struct {
	Signer   signer.Config
	Path     string        `env:"COOKIE_PATH" envDefault:""`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"0"` // 2 = Lax, 3 = Strict, 4 = None
}

// DefaultConfig returns an unsigned configuration with no default attributes
func DefaultConfig() Config {
	return Config{
		Signer: signer.DefaultConfig(),
	}
}

// NewFromConfig creates a Codec from the provided Config.
// Only non-zero attribute values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) (*Codec, error) {
	s, err := signer.NewFromConfig(cfg.Signer)
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 6)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}
	if cfg.HttpOnly {
		configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(s, configOpts...), nil
}
