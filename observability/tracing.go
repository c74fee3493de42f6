package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// TracerName is the instrumentation scope used by DefaultTracer.
const TracerName = "github.com/auth-platform/libs/go/domainkit"

// DefaultTracer returns the tracer from the global provider.
func DefaultTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// TraceObserver records each strategy execution as a span. Spans are created
// once the strategy has returned, backdated to its start time.
// Resolutions carry no context and are not traced.
type TraceObserver struct {
	tracer trace.Tracer
}

var _ policy.Observer = (*TraceObserver)(nil)

// NewTraceObserver creates a TraceObserver. A nil tracer uses DefaultTracer.
func NewTraceObserver(tracer trace.Tracer) *TraceObserver {
	if tracer == nil {
		tracer = DefaultTracer()
	}
	return &TraceObserver{tracer: tracer}
}

// Resolved implements policy.Observer.
func (o *TraceObserver) Resolved(string, string, error) {}

// Executed implements policy.Observer.
func (o *TraceObserver) Executed(ctx context.Context, dispatcher, strategy string, start time.Time, elapsed time.Duration, err error) {
	_, span := o.tracer.Start(ctx, dispatcher+"."+strategy,
		trace.WithTimestamp(start),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("policy.dispatcher", dispatcher),
			attribute.String("policy.strategy", strategy),
		),
	)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.code", string(errs.GetCode(err))))
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(start.Add(elapsed)))
}
