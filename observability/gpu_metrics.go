//go:build gpu

package observability

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Real implementation, compiled only with the 'gpu' build tag.
func observeGPUMetrics(o metric.Observer, gpuGauge, gpuTempGauge, gpuVRAMGauge metric.Float64ObservableGauge) {
	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return
	}
	for i := 0; i < int(count); i++ {
		dev, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}

		gpuAttr := metric.WithAttributes(attribute.Int("gpu.index", i))

		if util, ret := dev.GetUtilizationRates(); ret == nvml.SUCCESS {
			o.ObserveFloat64(gpuGauge, float64(util.Gpu), gpuAttr)
		}
		if temp, ret := dev.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
			o.ObserveFloat64(gpuTempGauge, float64(temp), gpuAttr)
		}
		if memInfo, ret := dev.GetMemoryInfo(); ret == nvml.SUCCESS && memInfo.Total > 0 {
			vramPercent := (float64(memInfo.Used) / float64(memInfo.Total)) * 100.0
			o.ObserveFloat64(gpuVRAMGauge, vramPercent, gpuAttr)
		}
	}
}
