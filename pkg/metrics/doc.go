// Package metrics exports publisher statistics to Prometheus.
//
//	pub, _ := publisher.New(client)
//	prometheus.MustRegister(metrics.NewPublisherCollector("c2w", pub))
//
// Values are read from Publisher.Stats at scrape time, so the collector adds
// no work to the submit path.
package metrics
