package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vendkit/pkg/config"
)

type testConfig struct {
	Addr  string `env:"TEST_HTTP_ADDR" envDefault:":8080"`
	Level string `env:"TEST_LOG_LEVEL" envDefault:"info"`
	Port  int    `env:"TEST_PORT" envDefault:"0"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.Level)
	})

	t.Run("env values override defaults", func(t *testing.T) {
		t.Setenv("TEST_HTTP_ADDR", ":9999")
		t.Setenv("TEST_PORT", "8181")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, 8181, cfg.Port)
	})

	t.Run("parse failure is reported", func(t *testing.T) {
		t.Setenv("TEST_PORT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
