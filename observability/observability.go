package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const (
	serviceName    = "facerecon-gpu-probe"
	metricInterval = 15 * time.Second
)

// Detection carries the probe result into the metric callbacks.
type Detection struct {
	ComputeCapability string
	GPUModel          string
}

// InitProviders wires the OTel meter provider with an OTLP/gRPC exporter and
// returns a shutdown func. Telemetry is tagged with the persistent instance
// id so per-host series stay stable across restarts.
func InitProviders(ctx context.Context, instanceID, endpoint string, det Detection) (shutdown func(context.Context) error, err error) {
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.HostIDKey.String(instanceID),
	))
	if err != nil {
		return nil, err
	}

	meterProvider, err := initMeterProvider(ctx, res, endpoint)
	if err != nil {
		return nil, err
	}
	if err := registerMetrics(meterProvider, det); err != nil {
		return nil, err
	}

	shutdown = func(ctx context.Context) error {
		var errs error
		if err := meterProvider.Shutdown(ctx); err != nil {
			errs = errors.Join(errs, err)
		}
		return errs
	}

	return shutdown, nil
}
