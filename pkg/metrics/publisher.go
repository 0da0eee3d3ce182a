package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/corp2world/c2w-go/core/publisher"
)

// DefaultNamespace is used when NewPublisherCollector gets an empty namespace.
const DefaultNamespace = "c2w"

const subsystem = "publisher"

// StatsSource is satisfied by *publisher.Publisher.
type StatsSource interface {
	Stats() publisher.Stats
}

// PublisherCollector is a prometheus.Collector over publisher stats.
type PublisherCollector struct {
	src StatsSource

	submitted *prometheus.Desc
	dropped   *prometheus.Desc
	rejected  *prometheus.Desc
	abandoned *prometheus.Desc
	sent      *prometheus.Desc
	failed    *prometheus.Desc
	queueLen  *prometheus.Desc
	queueCap  *prometheus.Desc
	running   *prometheus.Desc
}

// NewPublisherCollector creates a collector reading src on every scrape.
func NewPublisherCollector(namespace string, src StatsSource, constLabels prometheus.Labels) *PublisherCollector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, constLabels)
	}

	return &PublisherCollector{
		src:       src,
		submitted: desc("events_submitted_total", "Events accepted into the publisher queue."),
		dropped:   desc("events_dropped_total", "Events dropped because the publisher queue was full."),
		rejected:  desc("events_rejected_total", "Events submitted while the publisher was not running."),
		abandoned: desc("events_abandoned_total", "Events still queued when the publisher was deactivated."),
		sent:      desc("events_sent_total", "Events acknowledged by the service with status OK."),
		failed:    desc("events_failed_total", "Events whose send failed or returned status ERROR."),
		queueLen:  desc("queue_length", "Events currently waiting in the publisher queue."),
		queueCap:  desc("queue_capacity", "Capacity of the publisher queue."),
		running:   desc("running", "1 if the publisher worker is running, 0 otherwise."),
	}
}

// Describe implements prometheus.Collector.
func (c *PublisherCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.dropped
	ch <- c.rejected
	ch <- c.abandoned
	ch <- c.sent
	ch <- c.failed
	ch <- c.queueLen
	ch <- c.queueCap
	ch <- c.running
}

// Collect implements prometheus.Collector.
func (c *PublisherCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()

	running := 0.0
	if s.State == publisher.StateRunning {
		running = 1
	}

	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.Dropped))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(s.Rejected))
	ch <- prometheus.MustNewConstMetric(c.abandoned, prometheus.CounterValue, float64(s.Abandoned))
	ch <- prometheus.MustNewConstMetric(c.sent, prometheus.CounterValue, float64(s.Sent))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed))
	ch <- prometheus.MustNewConstMetric(c.queueLen, prometheus.GaugeValue, float64(s.QueueLen))
	ch <- prometheus.MustNewConstMetric(c.queueCap, prometheus.GaugeValue, float64(s.QueueCap))
	ch <- prometheus.MustNewConstMetric(c.running, prometheus.GaugeValue, running)
}
