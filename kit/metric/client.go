// Package metric provides a RED (request, error, duration) recorder for
// service middleware.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// REDClient counts calls and errors and observes call duration for every
// recorded service method.
type REDClient struct {
	count    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a new REDClient for the named service and registers its
// collectors on reg.
func New(reg prometheus.Registerer, service string) *REDClient {
	client := &REDClient{
		count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "service",
			Subsystem: service,
			Name:      "call_total",
			Help:      "Number of calls",
		}, []string{"method", "error"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "service",
			Subsystem: service,
			Name:      "duration",
			Help:      "Duration of calls",
		}, []string{"method"}),
	}
	reg.MustRegister(client.count, client.duration)
	return client
}

// RecordFn is returned from the Record method, to be called once the
// method being recorded returns.
type RecordFn func(err error) error

// Record returns a record fn that is called on any given return err. If an
// error is encountered it will register the err metric. The err is never
// altered.
func (c *REDClient) Record(method string) RecordFn {
	start := time.Now()
	return func(err error) error {
		c.count.With(prometheus.Labels{
			"method": method,
			"error":  errString(err),
		}).Inc()
		c.duration.With(prometheus.Labels{
			"method": method,
		}).Observe(time.Since(start).Seconds())
		return err
	}
}

func errString(err error) string {
	if err != nil {
		return "true"
	}
	return "false"
}
