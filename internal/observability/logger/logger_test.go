package logger

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	spanID, _ := trace.SpanIDFromHex("0123456789abcdef")

	tests := []struct {
		name      string
		ctx       func() context.Context
		wantTrace bool
	}{
		{
			name: "active span annotates trace and span ids",
			ctx: func() context.Context {
				sc := trace.NewSpanContext(trace.SpanContextConfig{
					TraceID:    traceID,
					SpanID:     spanID,
					TraceFlags: trace.FlagsSampled,
				})
				return trace.ContextWithSpanContext(context.Background(), sc)
			},
			wantTrace: true,
		},
		{
			name:      "no span leaves the entry bare",
			ctx:       context.Background,
			wantTrace: false,
		},
		{
			name:      "nil context falls back to the global logger",
			ctx:       func() context.Context { return nil },
			wantTrace: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			orig := zap.L()
			zap.ReplaceGlobals(zap.New(core))
			defer zap.ReplaceGlobals(orig)

			FromContext(tt.ctx()).Info("hello")

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			fields := entries[0].ContextMap()

			if !tt.wantTrace {
				if _, ok := fields["trace_id"]; ok {
					t.Fatal("expected no trace_id without an active span")
				}
				return
			}
			if fields["trace_id"] != traceID.String() {
				t.Fatalf("expected trace_id %q, got %q", traceID.String(), fields["trace_id"])
			}
			if fields["span_id"] != spanID.String() {
				t.Fatalf("expected span_id %q, got %q", spanID.String(), fields["span_id"])
			}
		})
	}
}
