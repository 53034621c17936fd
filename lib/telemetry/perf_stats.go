package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("nuresults.perf_stats")

var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var heapGauge, _ = meter.Int64Gauge("heap_alloc_mb")
var liveObjectsGauge, _ = meter.Int64Gauge("live_objects")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

// InstrumentPerfStats samples process stats for the lifetime of ctx. Long
// scrape runs are where leaks show up; a sample every 30s is enough to
// spot a drifting heap or goroutine count.
func InstrumentPerfStats(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Second * 30)
		defer ticker.Stop()

		var memStats runtime.MemStats
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			runtime.ReadMemStats(&memStats)

			usage, err := cpu.PercentWithContext(ctx, time.Minute, false)
			if err != nil {
				slog.Warn("failed to read cpu usage", "err", err)
			} else if len(usage) > 0 {
				cpuGauge.Record(ctx, usage[0])
			}

			heapGauge.Record(ctx, int64(memStats.HeapAlloc/1_000_000))
			liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
			goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
		}
	}()
}
