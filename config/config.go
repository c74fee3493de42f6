// Package config loads catalog configuration using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/auth-platform/libs/go/domainkit/discount"
	"github.com/auth-platform/libs/go/domainkit/domain"
	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/payment"
)

// EnvPrefix prefixes every environment override, e.g. DOMAINKIT_LOGGING_LEVEL.
const EnvPrefix = "DOMAINKIT"

// Config represents the complete catalog configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Discount DiscountConfig `mapstructure:"discount" validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment" validate:"required"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// MetricsConfig toggles the Prometheus observer.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TracingConfig toggles the OpenTelemetry observer.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DiscountConfig defines the tier of each customer category.
type DiscountConfig struct {
	Regular TierConfig `mapstructure:"regular" validate:"required"`
	VIP     TierConfig `mapstructure:"vip" validate:"required"`
}

// TierConfig holds decimal strings: discounts are percentages.
type TierConfig struct {
	Threshold string `mapstructure:"threshold" validate:"required,numeric"`
	Above     string `mapstructure:"above" validate:"required,numeric"`
	AtOrBelow string `mapstructure:"at_or_below" validate:"required,numeric"`
}

// PaymentConfig lists the enabled payment methods.
type PaymentConfig struct {
	Methods []string `mapstructure:"methods" validate:"required,min=1,unique,dive,oneof=credit_card debit_card paypal bitcoin bank_transfer"`
}

var configValidator = validator.New()

// Load reads configuration from defaults, an optional YAML file and
// environment variables. With an empty path, catalog.yaml is looked up in
// the working directory and ./configs; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errs.InvalidConfiguration("failed to read config file").WithCause(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.InvalidConfiguration("failed to unmarshal config").WithCause(err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true},
		Tracing: TracingConfig{Enabled: false},
		Discount: DiscountConfig{
			Regular: TierConfig{Threshold: "100", Above: "10", AtOrBelow: "5"},
			VIP:     TierConfig{Threshold: "500", Above: "20", AtOrBelow: "15"},
		},
		Payment: PaymentConfig{Methods: methodNames(payment.AllMethods())},
	}
}

// Validate checks struct tags and the cross-field rules.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

// Tiers converts the discount section.
func (c *Config) Tiers() (discount.Tiers, error) {
	regular, err := c.Discount.Regular.tier("discount.regular")
	if err != nil {
		return discount.Tiers{}, err
	}
	vip, err := c.Discount.VIP.tier("discount.vip")
	if err != nil {
		return discount.Tiers{}, err
	}
	return discount.Tiers{Regular: regular, VIP: vip}, nil
}

// Methods converts the payment section.
func (c *Config) Methods() ([]payment.Method, error) {
	methods := make([]payment.Method, 0, len(c.Payment.Methods))
	for _, name := range c.Payment.Methods {
		m, err := payment.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func (t TierConfig) tier(key string) (discount.Tier, error) {
	threshold, err := domain.NewMoneyFromString(t.Threshold)
	if err != nil {
		return discount.Tier{}, errs.InvalidConfiguration("invalid threshold").
			WithDetail("key", key).
			WithCause(err)
	}
	above, err := percent(key+".above", t.Above)
	if err != nil {
		return discount.Tier{}, err
	}
	atOrBelow, err := percent(key+".at_or_below", t.AtOrBelow)
	if err != nil {
		return discount.Tier{}, err
	}
	return discount.Tier{Threshold: threshold, Above: above, AtOrBelow: atOrBelow}, nil
}

var hundred = decimal.NewFromInt(100)

func percent(key, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.InvalidConfiguration("invalid percentage").
			WithDetail("key", key).
			WithCause(err)
	}
	if d.IsNegative() || d.GreaterThan(hundred) {
		return decimal.Decimal{}, errs.InvalidConfiguration("percentage must be between 0 and 100").
			WithDetail("key", key).
			WithDetail("value", s)
	}
	return d, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)

	v.SetDefault("discount.regular.threshold", d.Discount.Regular.Threshold)
	v.SetDefault("discount.regular.above", d.Discount.Regular.Above)
	v.SetDefault("discount.regular.at_or_below", d.Discount.Regular.AtOrBelow)
	v.SetDefault("discount.vip.threshold", d.Discount.VIP.Threshold)
	v.SetDefault("discount.vip.above", d.Discount.VIP.Above)
	v.SetDefault("discount.vip.at_or_below", d.Discount.VIP.AtOrBelow)

	v.SetDefault("payment.methods", d.Payment.Methods)
}

func validateCustomRules(cfg *Config) error {
	tiers, err := cfg.Tiers()
	if err != nil {
		return err
	}
	if tiers.VIP.Threshold.Cmp(tiers.Regular.Threshold) < 0 {
		return errs.InvalidConfiguration(fmt.Sprintf(
			"vip threshold (%s) cannot be lower than regular threshold (%s)",
			tiers.VIP.Threshold, tiers.Regular.Threshold))
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
				fieldError.Namespace(), fieldError.Tag(), fieldError.Value()))
		}
		return errs.InvalidConfiguration("validation errors: " + strings.Join(messages, "; ")).WithCause(err)
	}
	return errs.InvalidConfiguration("validation failed").WithCause(err)
}

func methodNames(methods []payment.Method) []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return names
}
