package completion

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func TestInstrumented_PassesThrough(t *testing.T) {
	wantErr := errors.New("boom")
	calls := 0
	inner := ClientFunc(func(ctx context.Context, req Request) (string, error) {
		calls++
		if req.User == "fail" {
			return "", wantErr
		}
		return "ok:" + req.User, nil
	})

	client := Instrument(inner, "test", "model", zap.NewNop())

	text, err := client.Complete(context.Background(), Request{User: "hi"})
	if err != nil || text != "ok:hi" {
		t.Errorf("Complete() = %q, %v", text, err)
	}

	_, err = client.Complete(context.Background(), Request{User: "fail"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Complete() error = %v, want %v", err, wantErr)
	}
	if calls != 2 {
		t.Errorf("inner called %d times, want 2", calls)
	}
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestInstrumented_RecordsSpans(t *testing.T) {
	tests := []struct {
		name       string
		user       string
		wantStatus codes.Code
		wantChars  int64
		wantEvent  bool
	}{
		{"success", "hello", codes.Unset, int64(len("ok:hello")), false},
		{"failure", "fail", codes.Error, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

			inner := ClientFunc(func(ctx context.Context, req Request) (string, error) {
				if req.User == "fail" {
					return "", ErrCompletionFailed
				}
				return "ok:" + req.User, nil
			})
			client := Instrument(inner, "groq", "llama-3.3-70b-versatile", nil, WithTracerProvider(tp))
			_, _ = client.Complete(context.Background(), Request{User: tt.user, Temperature: 0.8, MaxTokens: 2000})

			spans := sr.Ended()
			if len(spans) != 1 {
				t.Fatalf("ended spans = %d, want 1", len(spans))
			}
			span := spans[0]
			if span.Name() != "completion.Complete" {
				t.Errorf("span name = %q", span.Name())
			}

			attrs := spanAttrs(span)
			if attrs["completion.provider"].AsString() != "groq" || attrs["completion.model"].AsString() != "llama-3.3-70b-versatile" {
				t.Errorf("provider/model attributes = %v", attrs)
			}
			if attrs["completion.temperature"].AsFloat64() != 0.8 || attrs["completion.max_tokens"].AsInt64() != 2000 {
				t.Errorf("request attributes = %v", attrs)
			}
			if got := attrs["completion.response_chars"].AsInt64(); got != tt.wantChars {
				t.Errorf("response_chars = %d, want %d", got, tt.wantChars)
			}

			if span.Status().Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", span.Status().Code, tt.wantStatus)
			}
			hasException := false
			for _, ev := range span.Events() {
				if ev.Name == "exception" {
					hasException = true
				}
			}
			if hasException != tt.wantEvent {
				t.Errorf("exception event = %v, want %v", hasException, tt.wantEvent)
			}
		})
	}
}
