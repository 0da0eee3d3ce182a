// Package config loads typed configuration from environment variables and
// caches it per type using Go generics.
//
// On first use the package reads a .env file from the working directory, if
// present, and then parses variables into struct fields with caarlos0/env.
// Every configuration struct in this module (transport credentials, queue size,
// poll interval) carries `env` tags and can be loaded this way.
//
//	import (
//		"github.com/corp2world/c2w-go/core/config"
//		"github.com/corp2world/c2w-go/integration/transport/rest"
//	)
//
//	var cfg rest.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup.
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each type is parsed once per process. Later calls copy the cached value, so
// changes to the environment after the first load are not observed until Reset
// is called. Different types are cached independently.
package config
