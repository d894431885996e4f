// Package telemetry wraps OpenTelemetry tracing around enumeration runs.
//
// Spans go to the globally registered TracerProvider. Without an SDK
// installed that provider is a no-op, so tracing costs nothing unless an
// embedding program opts in with otel.SetTracerProvider.
package telemetry

import (
	"context"
	"math"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/primecalc/internal/primes"
)

// TracerName identifies spans emitted by this module.
const TracerName = "github.com/agbru/primecalc"

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartRun opens a span for one enumeration run.
func StartRun(ctx context.Context, name string, limit uint64, workers int) (context.Context, trace.Span) {
	return StartRunWith(ctx, Tracer(), name, limit, workers)
}

// StartRunWith is StartRun with an explicit tracer.
func StartRunWith(ctx context.Context, tracer trace.Tracer, name string, limit uint64, workers int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "primecalc.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("primecalc.runner", name),
			uint64Attribute("primecalc.limit", limit),
			attribute.Int("primecalc.workers", workers),
		),
	)
}

// EndRun records the run outcome on span and ends it.
func EndRun(span trace.Span, res primes.Result, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		uint64Attribute("primecalc.count", res.Count),
		attribute.Bool("primecalc.sum_overflow", res.SumOverflow),
		attribute.Int("primecalc.top_peak", res.TopPeak),
	)
	span.SetStatus(codes.Ok, "")
}

// uint64Attribute keeps values that fit in an int64 numeric and renders the
// rest as decimal strings, since attributes have no unsigned type.
func uint64Attribute(key string, v uint64) attribute.KeyValue {
	if v <= math.MaxInt64 {
		return attribute.Int64(key, int64(v))
	}
	return attribute.String(key, strconv.FormatUint(v, 10))
}
