//go:build !gpu

package observability

import (
	"go.opentelemetry.io/otel/metric"
)

// No-op for CPU-only builds, keeps NVML out of the binary.
func observeGPUMetrics(o metric.Observer, gpuGauge, gpuTempGauge, gpuVRAMGauge metric.Float64ObservableGauge) {
}
