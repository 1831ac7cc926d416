package observability

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const AppStatsName = "xunrolled/app"

var (
	appStatsOnce sync.Once
	globalAppStats *appStats
)

type appStats struct {
	goroutines metric.Int64ObservableUpDownCounter
	procs      metric.Int64ObservableUpDownCounter
}

func appStatsMeterName(name string) string {
	if name = strings.TrimSpace(name); len(name) == 0 {
		name = "default"
	}
	return AppStatsName + "/" + name
}

// InitAppStats registers the process level gauges next to the unrolled list
// stats, on the global meter provider. Only the first call takes effect.
// When ctx is done, the shutdown callback (if any) is invoked.
func InitAppStats(ctx context.Context, name string, shutdown MetricsShutdown) error {
	var err error
	appStatsOnce.Do(func() {
		meter := otel.Meter(
			appStatsMeterName(name),
			metric.WithInstrumentationVersion(otelruntime.Version()),
		)
		globalAppStats = &appStats{
			goroutines: lo.Must(meter.Int64ObservableUpDownCounter(
				"app.core.goroutines",
				metric.WithDescription(`The application goroutines' info.`),
				metric.WithInt64Callback(func(_ context.Context, ob metric.Int64Observer) error {
					ob.Observe(int64(runtime.NumGoroutine()))
					return nil
				}),
			)),
			procs: lo.Must(meter.Int64ObservableUpDownCounter(
				"app.core.processes",
				metric.WithDescription(`The application processes' info.`),
				metric.WithInt64Callback(func(_ context.Context, ob metric.Int64Observer) error {
					ob.Observe(int64(runtime.GOMAXPROCS(0)))
					return nil
				}),
			)),
		}
		if err = otelruntime.Start(); err != nil {
			return
		}
		if shutdown == nil || ctx == nil {
			return
		}
		go func() {
			<-ctx.Done()
			_ = shutdown(context.Background())
		}()
	})
	return err
}
