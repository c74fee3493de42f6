package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/observability"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, observability.ParseLevel(in), in)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		observability.NewLogger("info", "json", &buf).Info("hello", slog.String("k", "v"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "v", entry["k"])
	})

	t.Run("text filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := observability.NewLogger("warn", "text", &buf)
		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewLogObserver(observability.NewLogger("debug", "json", &buf))

	obs.Resolved("payment", "cash", errs.UnknownDiscriminator("payment", "cash"))
	obs.Executed(context.Background(), "payment", "paypal", time.Now(), time.Millisecond, stderrors.New("declined"))
	obs.Executed(context.Background(), "payment", "paypal", time.Now(), time.Millisecond, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var warn, failed, ok map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &ok))

	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "UNKNOWN_DISCRIMINATOR", warn["code"])
	assert.Equal(t, "ERROR", failed["level"])
	assert.Equal(t, "declined", failed["error"])
	assert.Equal(t, "INTERNAL_ERROR", failed["code"])
	assert.Equal(t, "DEBUG", ok["level"])
	assert.Equal(t, "strategy executed", ok["msg"])
}

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := observability.NewMetricsObserver(reg)

	d, err := policy.NewDispatcher("greeting", []policy.Binding[string, string, string]{
		policy.Bind("en", policy.Func("english", func(_ context.Context, name string) (string, error) {
			return "hello " + name, nil
		})),
		policy.Bind("xx", policy.Func("broken", func(context.Context, string) (string, error) {
			return "", stderrors.New("broken")
		})),
	}, policy.WithObserver(obs))
	require.NoError(t, err)

	ctx := context.Background()
	_, _ = d.Dispatch(ctx, "en", "bob")
	_, _ = d.Dispatch(ctx, "en", "amy")
	_, _ = d.Dispatch(ctx, "xx", "bob")
	_, _ = d.Dispatch(ctx, "fr", "bob")

	assert.Equal(t, 3.0, testutil.ToFloat64(obs.Resolutions.WithLabelValues("greeting", observability.ResultBound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Resolutions.WithLabelValues("greeting", observability.ResultUnknown)))
	assert.Equal(t, 2.0, testutil.ToFloat64(obs.Executions.WithLabelValues("greeting", "english", observability.ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Executions.WithLabelValues("greeting", "broken", observability.ResultError)))
	assert.Equal(t, 2, testutil.CollectAndCount(obs.Duration, "domainkit_strategy_duration_seconds"))

	assert.Panics(t, func() { observability.NewMetricsObserver(reg) }, "duplicate registration")
}

type recordedSpan struct {
	noop.Span
	name       string
	start      time.Time
	end        time.Time
	attributes []attribute.KeyValue
	status     codes.Code
	errors     []error
}

func (s *recordedSpan) End(opts ...trace.SpanEndOption) {
	cfg := trace.NewSpanEndConfig(opts...)
	s.end = cfg.Timestamp()
}

func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errors = append(s.errors, err)
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.attributes = append(s.attributes, kv...)
}

type recordingTracer struct {
	noop.Tracer
	spans []*recordedSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, start: cfg.Timestamp(), attributes: cfg.Attributes()}
	r.spans = append(r.spans, s)
	return ctx, s
}

func TestTraceObserver(t *testing.T) {
	tracer := &recordingTracer{}
	obs := observability.NewTraceObserver(tracer)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	obs.Resolved("discount", "VIP", nil)
	obs.Executed(context.Background(), "discount", "vip", start, 3*time.Millisecond, nil)
	obs.Executed(context.Background(), "discount", "regular", start, time.Millisecond, errs.Internal("boom"))

	require.Len(t, tracer.spans, 2)

	ok := tracer.spans[0]
	assert.Equal(t, "discount.vip", ok.name)
	assert.Equal(t, start, ok.start)
	assert.Equal(t, start.Add(3*time.Millisecond), ok.end)
	assert.Equal(t, codes.Ok, ok.status)
	assert.Contains(t, ok.attributes, attribute.String("policy.strategy", "vip"))

	failed := tracer.spans[1]
	assert.Equal(t, codes.Error, failed.status)
	require.Len(t, failed.errors, 1)
	assert.Contains(t, failed.attributes, attribute.String("error.code", "INTERNAL_ERROR"))
}

func TestObserversCompose(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetricsObserver(reg)
	tracer := &recordingTracer{}

	obs := policy.Observers(
		observability.NewLogObserver(observability.NewLogger("debug", "json", &buf)),
		metrics,
		observability.NewTraceObserver(tracer),
	)
	obs.Executed(context.Background(), "d", "s", time.Now(), time.Millisecond, nil)

	assert.NotEmpty(t, buf.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Executions.WithLabelValues("d", "s", observability.ResultOK)))
	assert.Len(t, tracer.spans, 1)
}
