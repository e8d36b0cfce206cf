// Package observe wires OpenTelemetry tracing and metrics for lexicam.
//
// Traces are exported over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT is set;
// otherwise spans are recorded and dropped. Metrics are kept in-process by a
// manual reader so the client can log a usage summary on exit.
package observe

import (
	"context"
	"errors"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// EnvOTLPEndpoint enables trace export when set.
const EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

// ProviderConfig configures the OpenTelemetry SDK providers.
type ProviderConfig struct {
	// ServiceName is reported in telemetry. Default: "lexicam".
	ServiceName string

	// ServiceVersion is reported in telemetry.
	ServiceVersion string

	// TraceExporter overrides the exporter chosen from the environment.
	// Tests pass a tracetest exporter here.
	TraceExporter sdktrace.SpanExporter
}

// Providers holds the SDK providers registered as OTel globals.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider

	// Reader is the in-process metric reader; see [Summarize].
	Reader *sdkmetric.ManualReader

	exporting bool
}

// Exporting reports whether spans leave the process.
func (p *Providers) Exporting() bool { return p.exporting }

// Shutdown flushes and closes both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	return errors.Join(p.Tracer.Shutdown(ctx), p.Meter.Shutdown(ctx))
}

// InitProvider builds tracer and meter providers and registers them globally.
func InitProvider(ctx context.Context, cfg ProviderConfig) (*Providers, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "lexicam"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	var err error
	exp := cfg.TraceExporter
	if exp == nil && os.Getenv(EnvOTLPEndpoint) != "" {
		// Endpoint, headers and TLS come from the standard OTEL_* variables.
		exp, err = otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
	}

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if exp != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return &Providers{
		Tracer:    tp,
		Meter:     mp,
		Reader:    reader,
		exporting: exp != nil,
	}, nil
}
