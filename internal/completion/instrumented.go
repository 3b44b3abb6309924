package completion

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "marketai/completion"

// Instrumented wraps a Client with a trace span and a log line per call.
type Instrumented struct {
	next     Client
	provider string
	model    string
	logger   *zap.Logger
	tracer   trace.Tracer
}

// Option configures an Instrumented client.
type Option func(*Instrumented)

// WithTracerProvider records spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(i *Instrumented) {
		i.tracer = tp.Tracer(tracerName)
	}
}

// Instrument wraps next. Spans go to the global tracer provider unless
// WithTracerProvider is given.
func Instrument(next Client, provider, model string, logger *zap.Logger, opts ...Option) *Instrumented {
	if logger == nil {
		logger = zap.NewNop()
	}
	i := &Instrumented{
		next:     next,
		provider: provider,
		model:    model,
		logger:   logger.With(zap.String("provider", provider), zap.String("model", model)),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Complete forwards to the wrapped client.
func (i *Instrumented) Complete(ctx context.Context, req Request) (string, error) {
	ctx, span := i.tracer.Start(ctx, "completion.Complete", trace.WithAttributes(
		attribute.String("completion.provider", i.provider),
		attribute.String("completion.model", i.model),
		attribute.Float64("completion.temperature", req.Temperature),
		attribute.Int("completion.max_tokens", req.MaxTokens),
	))
	defer span.End()

	start := time.Now()
	text, err := i.next.Complete(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		i.logger.Warn("completion failed", zap.Duration("duration", elapsed), zap.Error(err))
		return "", err
	}

	span.SetAttributes(attribute.Int("completion.response_chars", len(text)))
	i.logger.Debug("completion succeeded",
		zap.Duration("duration", elapsed),
		zap.Int("response_chars", len(text)),
	)
	return text, nil
}
