package signer

import (
	"fmt"
	"strings"
)

// Config holds signer configuration
type Config struct {
	Secrets   string `env:"COOKIE_SECRETS" envDefault:""`
	Algorithm string `env:"COOKIE_SIGNING_ALGORITHM" envDefault:"hmac-sha256"`
}

// DefaultConfig returns an unsigned configuration using HMAC-SHA256
func DefaultConfig() Config {
	return Config{
		Secrets:   "",
		Algorithm: string(HMACSHA256),
	}
}

// ParseAlgorithm converts a configuration string into an Algorithm.
// An empty string selects HMACSHA256.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if a == "" {
		return HMACSHA256, nil
	}
	if !a.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return a, nil
}

func (a Algorithm) valid() bool {
	switch a {
	case HMACSHA256, HMACSHA3256, LegacySHA256:
		return true
	}
	return false
}

// parseSecrets splits the secrets string into a slice
func (c Config) parseSecrets() [][]byte {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([][]byte, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, []byte(s))
		}
	}

	return secrets
}

// NewFromConfig creates a Signer from the provided Config. The first secret
// signs, the rest only verify. No secrets means unsigned mode.
func NewFromConfig(cfg Config, opts ...Option) (*Signer, error) {
	algorithm, err := ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	secrets := cfg.parseSecrets()
	configOpts := make([]Option, 0, 2+len(opts))
	configOpts = append(configOpts, WithAlgorithm(algorithm))

	var primary []byte
	if len(secrets) > 0 {
		primary = secrets[0]
		configOpts = append(configOpts, WithPreviousSecrets(secrets[1:]...))
	}

	configOpts = append(configOpts, opts...)

	return New(primary, configOpts...), nil
}
