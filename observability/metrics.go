package observability

import (
	"context"
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

func initMeterProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, err
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricInterval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)
	return meterProvider, nil
}

func registerMetrics(mp *sdkmetric.MeterProvider, det Detection) error {
	meter := mp.Meter(serviceName)

	cpuGauge, _ := meter.Float64ObservableGauge("system.cpu.utilization", metric.WithDescription("CPU Utilization Percentage"))
	memGauge, _ := meter.Float64ObservableGauge("system.memory.utilization", metric.WithDescription("Memory Utilization Percentage"))
	capGauge, _ := meter.Float64ObservableGauge("gpu.compute_capability", metric.WithDescription("Detected CUDA Compute Capability"))
	gpuGauge, _ := meter.Float64ObservableGauge("gpu.utilization", metric.WithDescription("GPU Utilization Percentage"))
	gpuTempGauge, _ := meter.Float64ObservableGauge("gpu.temperature", metric.WithDescription("GPU Temperature in Celsius"))
	gpuVRAMGauge, _ := meter.Float64ObservableGauge("gpu.vram.utilization", metric.WithDescription("GPU VRAM Utilization Percentage"))

	capValue, _ := strconv.ParseFloat(det.ComputeCapability, 64)
	capAttr := metric.WithAttributes(attribute.String("gpu.model", det.GPUModel))

	_, err := meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
			o.ObserveFloat64(cpuGauge, percentages[0])
		}
		if vmStat, err := mem.VirtualMemory(); err == nil {
			o.ObserveFloat64(memGauge, vmStat.UsedPercent)
		}
		o.ObserveFloat64(capGauge, capValue, capAttr)

		// Real GPU gauges or a no-op, depending on the build tag.
		observeGPUMetrics(o, gpuGauge, gpuTempGauge, gpuVRAMGauge)
		return nil
	},
		cpuGauge,
		memGauge,
		capGauge,
		gpuGauge,
		gpuTempGauge,
		gpuVRAMGauge,
	)
	return err
}
