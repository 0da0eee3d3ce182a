package c2w

import (
	"sync"

	"github.com/corp2world/c2w-go/core/config"
	"github.com/corp2world/c2w-go/integration/transport/rest"
)

var defaultClient = sync.OnceValues(func() (*Client, error) {
	var restCfg rest.Config
	if err := config.Load(&restCfg); err != nil {
		return nil, err
	}
	t, err := rest.New(restCfg)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, t)
})

// Default returns the process-wide client built from the environment
// (C2W_SERVICE_URL, C2W_CLIENT_TOKEN, C2W_CLIENT_KEY and friends). The client
// is built on first call; a configuration error is returned on every call.
func Default() (*Client, error) {
	return defaultClient()
}
