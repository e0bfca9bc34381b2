package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thehorseproject/website/pkg/config"
)

func TestLoad(t *testing.T) {
	type testConfig struct {
		OpsEmail string `env:"TEST_OPS_EMAIL" envDefault:"thehorseprojectsb@gmail.com"`
		Port     int    `env:"TEST_PORT" envDefault:"8080"`
		Required string `env:"TEST_REQUIRED_VALUE,required"`
	}

	t.Run("applies defaults and env overrides", func(t *testing.T) {
		t.Setenv("TEST_REQUIRED_VALUE", "set")
		t.Setenv("TEST_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "thehorseprojectsb@gmail.com", cfg.OpsEmail)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "set", cfg.Required)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	type required struct {
		Value string `env:"TEST_MUST_LOAD_VALUE,required"`
	}

	t.Run("panics when loading fails", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg required
			config.MustLoad(&cfg)
		})
	})

	t.Run("passes when loading succeeds", func(t *testing.T) {
		t.Setenv("TEST_MUST_LOAD_VALUE", "ok")
		assert.NotPanics(t, func() {
			var cfg required
			config.MustLoad(&cfg)
		})
	})
}
