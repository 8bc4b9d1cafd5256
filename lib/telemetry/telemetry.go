package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"algorecall-scraper/lib/configutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Telemetry holds the providers installed by Setup. The zero value is
// what you get when nothing was configured, Shutdown on it is a no-op.
type Telemetry struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

func (t Telemetry) Shutdown(ctx context.Context) error {
	var errlist []error
	if t.TracerProvider != nil {
		errlist = append(errlist, t.TracerProvider.Shutdown(ctx))
	}
	if t.MeterProvider != nil {
		errlist = append(errlist, t.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errlist...)
}

type OtlpConnConfig struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (c OtlpConnConfig) enabled() bool {
	return c.GrpcEndpoint != "" || c.HttpEndpoint != ""
}

type OtlpConfig struct {
	Traces  OtlpConnConfig `json:"traces"`
	Metrics OtlpConnConfig `json:"metrics"`
}

type Config struct {
	Otlp OtlpConfig `json:"otlp"`
}

// searches up the filesystem from the cwd to find a file
// called telemetry.json5, once found it will then use it
// as a config to setup telemetry
func SetupFromEnv(ctx context.Context, serviceName string) (Telemetry, error) {
	config, err := configutil.ReadRecursively[Config]("telemetry.json5")
	if err != nil {
		return Telemetry{}, err
	}
	return Setup(ctx, serviceName, config)
}

// Setup installs global trace and metric providers for whichever exporters
// are configured, an empty config leaves the otel no-op providers in place.
func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	r, err := newResource(serviceName)
	if err != nil {
		return Telemetry{}, err
	}

	var out Telemetry
	if config.Otlp.Traces.enabled() {
		exporter, err := newTraceExporter(ctx, config.Otlp.Traces)
		if err != nil {
			return Telemetry{}, err
		}
		out.TracerProvider = trace.NewTracerProvider(
			trace.WithBatcher(exporter),
			trace.WithResource(r),
		)
		otel.SetTracerProvider(out.TracerProvider)
	}
	if config.Otlp.Metrics.enabled() {
		exporter, err := newMetricExporter(ctx, config.Otlp.Metrics)
		if err != nil {
			return Telemetry{}, err
		}
		out.MeterProvider = metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(time.Second*5))),
			metric.WithResource(r),
		)
		otel.SetMeterProvider(out.MeterProvider)
	}

	return out, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newTraceExporter(ctx context.Context, c OtlpConnConfig) (trace.SpanExporter, error) {
	if c.GrpcEndpoint != "" {
		slog.Debug("tracer export initialized", "type", "grpc", "endpoint", c.GrpcEndpoint)
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(c.GrpcEndpoint),
			otlptracegrpc.WithHeaders(c.Headers),
		)
	}
	slog.Debug("tracer export initialized", "type", "http", "endpoint", c.HttpEndpoint)
	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(c.HttpEndpoint),
		otlptracehttp.WithHeaders(c.Headers),
	)
}

func newMetricExporter(ctx context.Context, c OtlpConnConfig) (metric.Exporter, error) {
	if c.GrpcEndpoint != "" {
		slog.Debug("metric exporter initialized", "type", "grpc", "endpoint", c.GrpcEndpoint)
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(c.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(c.Headers),
		)
	}
	slog.Debug("metric exporter initialized", "type", "http", "endpoint", c.HttpEndpoint)
	return otlpmetrichttp.New(
		ctx,
		otlpmetrichttp.WithEndpointURL(c.HttpEndpoint),
		otlpmetrichttp.WithHeaders(c.Headers),
	)
}
