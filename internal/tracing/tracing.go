// Package tracing installs the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Supported span exporters, selected with OTEL_TRACES_EXPORTER.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// Valid reports whether name selects a known exporter. Empty means none.
func Valid(name string) bool {
	switch name {
	case "", ExporterNone, ExporterStdout:
		return true
	}
	return false
}

// NewProvider builds a tracer provider for the named exporter. The stdout
// exporter writes one JSON document per span to w.
func NewProvider(exporter string, w io.Writer, serviceName, version string) (*sdktrace.TracerProvider, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	switch exporter {
	case "", ExporterNone:
	case ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	default:
		return nil, fmt.Errorf("unknown traces exporter %q", exporter)
	}

	return sdktrace.NewTracerProvider(opts...), nil
}

// Setup builds the provider and installs it as the global one.
func Setup(exporter string, w io.Writer, serviceName, version string) (*sdktrace.TracerProvider, error) {
	tp, err := NewProvider(exporter, w, serviceName, version)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp, nil
}

// Shutdown flushes pending spans and stops the provider.
func Shutdown(tp *sdktrace.TracerProvider, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tp.Shutdown(ctx); err != nil {
		logger.Warn("failed to shut down tracer provider", zap.Error(err))
	}
}
