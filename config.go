package c2w

import "time"

// DefaultPollInterval is the pause between two response fetches.
const DefaultPollInterval = time.Second

// Config holds client settings, loadable with core/config.
type Config struct {
	PollInterval time.Duration `env:"C2W_POLL_INTERVAL" envDefault:"1s"`
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{PollInterval: DefaultPollInterval}
}
