package publisher

import (
	"time"

	"github.com/corp2world/c2w-go/core/queue"
)

// Config holds publisher settings, loadable with core/config.
type Config struct {
	QueueSize       int           `env:"C2W_QUEUE_SIZE" envDefault:"1000"`
	ShutdownTimeout time.Duration `env:"C2W_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	SendTimeout     time.Duration `env:"C2W_SEND_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		QueueSize:       queue.DefaultCapacity,
		ShutdownTimeout: 5 * time.Second,
		SendTimeout:     30 * time.Second,
	}
}
