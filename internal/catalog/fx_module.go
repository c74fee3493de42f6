// Package catalog wires the dispatchers and observers for dependency injection.
package catalog

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/auth-platform/libs/go/domainkit/behavior"
	"github.com/auth-platform/libs/go/domainkit/config"
	"github.com/auth-platform/libs/go/domainkit/discount"
	"github.com/auth-platform/libs/go/domainkit/domain"
	"github.com/auth-platform/libs/go/domainkit/observability"
	"github.com/auth-platform/libs/go/domainkit/payment"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// Module provides the catalog services. It expects *config.Config,
// *slog.Logger and io.Writer to be provided.
var Module = fx.Module("catalog",
	fx.Provide(
		prometheus.NewRegistry,
		observability.DefaultTracer,
		NewObserver,
		NewCalculator,
		NewProcessor,
		NewCatalogue,
		NewIDGenerator,
		NewDemo,
	),
)

// NewObserver combines the observers enabled by configuration. Logging is
// always on.
func NewObserver(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry, tracer trace.Tracer) policy.Observer {
	observers := []policy.Observer{observability.NewLogObserver(logger)}
	if cfg.Metrics.Enabled {
		observers = append(observers, observability.NewMetricsObserver(reg))
	}
	if cfg.Tracing.Enabled {
		observers = append(observers, observability.NewTraceObserver(tracer))
	}
	return policy.Observers(observers...)
}

// NewCalculator builds the discount calculator from the configured tiers.
func NewCalculator(cfg *config.Config, obs policy.Observer) (*discount.Calculator, error) {
	tiers, err := cfg.Tiers()
	if err != nil {
		return nil, err
	}
	return discount.NewCalculator(tiers, policy.WithObserver(obs))
}

// NewProcessor builds the payment processor for the configured methods.
func NewProcessor(cfg *config.Config, out io.Writer, obs policy.Observer) (*payment.Processor, error) {
	methods, err := cfg.Methods()
	if err != nil {
		return nil, err
	}
	return payment.NewProcessor(out, methods, policy.WithObserver(obs))
}

// NewCatalogue builds the behavior catalogue.
func NewCatalogue(out io.Writer, obs policy.Observer) (*behavior.Catalogue, error) {
	return behavior.NewCatalogue(out, policy.WithObserver(obs))
}

// NewIDGenerator returns the UUID customer id generator.
func NewIDGenerator() domain.IDGenerator {
	return domain.UUIDGenerator{}
}
