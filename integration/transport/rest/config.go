package rest

import "time"

// DefaultServiceURL is the public Corp2World REST endpoint.
const DefaultServiceURL = "https://www.corp2world.com:9443/rest"

// Config holds the HTTP transport settings.
// Token and Key are the client credentials issued by Corp2World.
type Config struct {
	ServiceURL string `env:"C2W_SERVICE_URL" envDefault:"https://www.corp2world.com:9443/rest"`
	Token      string `env:"C2W_CLIENT_TOKEN,required"`
	Key        string `env:"C2W_CLIENT_KEY,required"`

	// CAFile is an optional PEM bundle trusted in addition to the system roots.
	CAFile string `env:"C2W_CA_FILE"`

	ProxyHost     string `env:"C2W_PROXY_HOST"`
	ProxyPort     int    `env:"C2W_PROXY_PORT" envDefault:"8080"`
	ProxyUser     string `env:"C2W_PROXY_USER"`
	ProxyPassword string `env:"C2W_PROXY_PASSWORD"`

	HTTPTimeout time.Duration `env:"C2W_HTTP_TIMEOUT" envDefault:"30s"`
	MaxConns    int           `env:"C2W_MAX_CONNS" envDefault:"10"`

	// Tracing wraps the HTTP transport with OpenTelemetry instrumentation.
	Tracing bool `env:"C2W_TRACING" envDefault:"false"`
}

// DefaultConfig returns a config with every optional field at its default.
// Token and Key still have to be set.
func DefaultConfig() Config {
	return Config{
		ServiceURL:  DefaultServiceURL,
		ProxyPort:   8080,
		HTTPTimeout: 30 * time.Second,
		MaxConns:    10,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ServiceURL == "" {
		c.ServiceURL = def.ServiceURL
	}
	if c.ProxyPort == 0 {
		c.ProxyPort = def.ProxyPort
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = def.HTTPTimeout
	}
	if c.MaxConns == 0 {
		c.MaxConns = def.MaxConns
	}
	return c
}
