package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_goroutines",
			Help: "Number of live goroutines",
		},
	)

	// соединения пула postgres: acquired | idle | total
	DatabasePoolConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "database_pool_connections",
			Help: "Postgres pool connections by state",
		},
		[]string{"state"},
	)
)

const systemMetricsInterval = 5 * time.Second

// PoolStatter источник статистики пула, реализует *pgxpool.Pool.
type PoolStatter interface {
	Stat() *pgxpool.Stat
}

// StartSystemMetricsCollector снимает системные метрики и метрики пула до отмены ctx.
// pool может быть nil.
func StartSystemMetricsCollector(ctx context.Context, pool PoolStatter) {
	go func() {
		ticker := time.NewTicker(systemMetricsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics()
				if pool != nil {
					collectPoolMetrics(pool.Stat())
				}
			}
		}
	}()
}

func collectSystemMetrics() {
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemory()
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}

func collectPoolMetrics(stat *pgxpool.Stat) {
	DatabasePoolConns.WithLabelValues("acquired").Set(float64(stat.AcquiredConns()))
	DatabasePoolConns.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	DatabasePoolConns.WithLabelValues("total").Set(float64(stat.TotalConns()))
}
