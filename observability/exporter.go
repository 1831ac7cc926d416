package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// MetricsShutdown flushes the pending readings and stops the meter provider
// installed by one of the exporters below.
type MetricsShutdown func(ctx context.Context) error

const (
	defaultConsoleInterval = 10 * time.Second
	defaultConsoleTimeout  = 5 * time.Second
)

// InitConsoleMetrics installs a global meter provider that prints every
// instrument periodically. Serves for test/dev environment.
func InitConsoleMetrics(interval, timeout time.Duration, opts ...stdoutmetric.Option) (MetricsShutdown, error) {
	if interval <= 0 {
		interval = defaultConsoleInterval
	}
	if timeout <= 0 {
		timeout = defaultConsoleTimeout
	}
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// InitPrometheusMetrics installs a global meter provider backed by a
// Prometheus reader. The readings are fetched by HTTP from the registerer's
// handler in the product environment.
func InitPrometheusMetrics(opts ...prometheus.Option) (MetricsShutdown, error) {
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
