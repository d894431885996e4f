package telemetry

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/primecalc/internal/primes"
)

type recordingSpan struct {
	noop.Span
	ended  bool
	status codes.Code
	errs   []error
	attrs  []attribute.KeyValue
}

func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }
func (s *recordingSpan) SetStatus(c codes.Code, _ string) { s.status = c }
func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }

func TestEndRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantErrs   int
	}{
		{"success", nil, codes.Ok, 0},
		{"failure", errors.New("worker 2 failed"), codes.Error, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			span := &recordingSpan{}
			EndRun(span, primes.Result{Count: 10}, tt.err)
			if !span.ended {
				t.Error("span not ended")
			}
			if span.status != tt.wantStatus {
				t.Errorf("status = %v, want %v", span.status, tt.wantStatus)
			}
			if len(span.errs) != tt.wantErrs {
				t.Errorf("recorded %d errors, want %d", len(span.errs), tt.wantErrs)
			}
		})
	}
}

type startRecorder struct {
	embedded.Tracer
	name string
}

func (r *startRecorder) Start(ctx context.Context, name string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.name = name
	return noop.NewTracerProvider().Tracer("").Start(ctx, name)
}

func TestStartRunWith(t *testing.T) {
	t.Parallel()
	rec := &startRecorder{}
	ctx, span := StartRunWith(context.Background(), rec, "parallel", 30, 8)
	defer span.End()
	if rec.name != "primecalc.run" {
		t.Errorf("span name = %q", rec.name)
	}
	if ctx == nil {
		t.Fatal("nil context")
	}
}

func TestStartRun_GlobalNoop(t *testing.T) {
	t.Parallel()
	_, span := StartRun(context.Background(), "sequential", 10, 1)
	if span.IsRecording() {
		t.Error("default global provider should not record")
	}
	EndRun(span, primes.Result{}, nil)
}

func TestUint64Attribute(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    uint64
		want attribute.Value
	}{
		{"small", 30, attribute.Int64Value(30)},
		{"max int64", math.MaxInt64, attribute.Int64Value(math.MaxInt64)},
		{"above int64", math.MaxInt64 + 1, attribute.StringValue("9223372036854775808")},
		{"max uint64", math.MaxUint64, attribute.StringValue("18446744073709551615")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := uint64Attribute("primecalc.limit", tt.v)
			if got.Value != tt.want {
				t.Errorf("uint64Attribute(%d) = %v (%v), want %v (%v)",
					tt.v, got.Value.Emit(), got.Value.Type(), tt.want.Emit(), tt.want.Type())
			}
		})
	}
}

func TestEndRun_LargeCountStaysPositive(t *testing.T) {
	t.Parallel()
	span := &recordingSpan{}
	EndRun(span, primes.Result{Count: math.MaxUint64}, nil)
	for _, kv := range span.attrs {
		if kv.Key == "primecalc.count" {
			if kv.Value.Emit() != "18446744073709551615" {
				t.Errorf("count attribute = %s", kv.Value.Emit())
			}
			return
		}
	}
	t.Error("count attribute not set")
}
