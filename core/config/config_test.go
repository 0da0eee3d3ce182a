package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corp2world/c2w-go/core/config"
)

type appConfig struct {
	URL       string        `env:"CFG_TEST_URL" envDefault:"https://example.com"`
	QueueSize int           `env:"CFG_TEST_QUEUE_SIZE" envDefault:"1000"`
	Timeout   time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Token string `env:"CFG_TEST_REQUIRED_TOKEN,required"`
}

// Tests in this file mutate process environment and the package cache,
// so they are not parallel.

func TestLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CFG_TEST_QUEUE_SIZE", "25")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, 25, cfg.QueueSize)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CFG_TEST_QUEUE_SIZE", "10")

	var first appConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_QUEUE_SIZE", "20")

	var second appConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, 10, second.QueueSize)

	config.Reset()

	var third appConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, 20, third.QueueSize)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}
