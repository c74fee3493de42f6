package observability

import (
	"context"
	"log/slog"
	"time"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// LogObserver writes dispatch events to a slog logger.
// Successful events are logged at debug, failures at warn (resolution) and
// error (execution).
type LogObserver struct {
	logger *slog.Logger
}

var _ policy.Observer = (*LogObserver)(nil)

// NewLogObserver creates a LogObserver. A nil logger uses slog.Default.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

// Resolved implements policy.Observer.
func (o *LogObserver) Resolved(dispatcher, discriminator string, err error) {
	if err != nil {
		o.logger.Warn("unknown discriminator",
			slog.String("dispatcher", dispatcher),
			slog.String("discriminator", discriminator),
			slog.String("code", string(errs.GetCode(err))))
		return
	}
	o.logger.Debug("strategy resolved",
		slog.String("dispatcher", dispatcher),
		slog.String("discriminator", discriminator))
}

// Executed implements policy.Observer.
func (o *LogObserver) Executed(ctx context.Context, dispatcher, strategy string, _ time.Time, elapsed time.Duration, err error) {
	if err != nil {
		o.logger.ErrorContext(ctx, "strategy failed",
			slog.String("dispatcher", dispatcher),
			slog.String("strategy", strategy),
			slog.Duration("elapsed", elapsed),
			slog.String("code", string(errs.GetCode(err))),
			slog.String("error", err.Error()))
		return
	}
	o.logger.DebugContext(ctx, "strategy executed",
		slog.String("dispatcher", dispatcher),
		slog.String("strategy", strategy),
		slog.Duration("elapsed", elapsed))
}
