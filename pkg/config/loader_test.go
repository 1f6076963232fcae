package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signedcookie/pkg/config"
)

type defaultsConfig struct {
	Secrets string `env:"TEST_CONFIG_DEFAULT_SECRETS" envDefault:"primary"`
	MaxAge  int    `env:"TEST_CONFIG_DEFAULT_MAX_AGE" envDefault:"10"`
}

type envConfig struct {
	Secrets string `env:"TEST_CONFIG_ENV_SECRETS"`
	Secure  bool   `env:"TEST_CONFIG_ENV_SECURE"`
}

type nestedConfig struct {
	Path  string `env:"TEST_CONFIG_NESTED_PATH" envDefault:"/"`
	Inner  struct {
		Domain string `env:"TEST_CONFIG_NESTED_DOMAIN"`
	}
}

type cachedConfig struct {
	Value string `env:"TEST_CONFIG_CACHED_VALUE"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CONFIG_REQUIRED_SECRET,required"`
}

type badIntConfig struct {
	MaxAge int `env:"TEST_CONFIG_BAD_MAX_AGE"`
}

type concurrentConfig struct {
	Value string `env:"TEST_CONFIG_CONCURRENT_VALUE" envDefault:"shared"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "primary", cfg.Secrets)
	assert.Equal(t, 10, cfg.MaxAge)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_CONFIG_ENV_SECRETS", "a,b")
	t.Setenv("TEST_CONFIG_ENV_SECURE", "true")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "a,b", cfg.Secrets)
	assert.True(t, cfg.Secure)
}

func TestLoad_NestedStructs(t *testing.T) {
	t.Setenv("TEST_CONFIG_NESTED_DOMAIN", "example.com")

	var cfg nestedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "/", cfg.Path)
	assert.Equal(t, "example.com", cfg.Inner.Domain)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CONFIG_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CONFIG_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	second.Value = "mutated"
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "first", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParse)
		assert.Contains(t, err.Error(), "TEST_CONFIG_REQUIRED_SECRET")

		// the failure is cached with the type
		t.Setenv("TEST_CONFIG_REQUIRED_SECRET", "late")
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_BAD_MAX_AGE", "ten")
		var cfg badIntConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
	assert.Panics(t, func() {
		var cfg *requiredConfig
		config.MustLoad(cfg)
	})
}

func TestLoad_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg concurrentConfig
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, "shared", cfg.Value)
		}()
	}
	wg.Wait()
}
