// Package rest implements the Corp2World HTTP(S) transport.
//
// Messages are posted as JSON to {ServiceURL}/message/post and responses to
// dialog messages are read from {ServiceURL}/message/response?messageId=N.
// Every request carries HTTP basic authentication with the client token and
// key, and an X-Request-ID header.
//
// # Configuration
//
//	type Config struct {
//		ServiceURL    string        `env:"C2W_SERVICE_URL" envDefault:"https://www.corp2world.com:9443/rest"`
//		Token         string        `env:"C2W_CLIENT_TOKEN,required"`
//		Key           string        `env:"C2W_CLIENT_KEY,required"`
//		CAFile        string        `env:"C2W_CA_FILE"`
//		ProxyHost     string        `env:"C2W_PROXY_HOST"`
//		ProxyPort     int           `env:"C2W_PROXY_PORT" envDefault:"8080"`
//		ProxyUser     string        `env:"C2W_PROXY_USER"`
//		ProxyPassword string        `env:"C2W_PROXY_PASSWORD"`
//		HTTPTimeout   time.Duration `env:"C2W_HTTP_TIMEOUT" envDefault:"30s"`
//		MaxConns      int           `env:"C2W_MAX_CONNS" envDefault:"10"`
//		Tracing       bool          `env:"C2W_TRACING" envDefault:"false"`
//	}
//
// Load it with core/config:
//
//	var cfg rest.Config
//	config.MustLoad(&cfg)
//	t := rest.MustNew(cfg, rest.WithLogger(log))
//
// # Errors
//
// A non-200 reply to a send is reported as a result with status ERROR, not as
// an error. Network and decoding failures return ErrSendFailed or
// ErrFetchFailed joined with the cause. A response fetch answered with a status
// other than 200, 204 or 404 returns ErrUnexpectedStatus.
package rest
