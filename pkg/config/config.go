package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Pricing PricingConfig
	Coupon  CouponConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Coupon.Rate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAYMITRA_APP_ENV" required:"true"`
	Port         string `envconfig:"PAYMITRA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PAYMITRA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAYMITRA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path is the sqlite database location; ":memory:" keeps the
	// catalog in-process, which is the default for local runs.
	Path string `envconfig:"PAYMITRA_DB_PATH" default:":memory:"`
}

type PricingConfig struct {
	FlatShippingCents          int64 `envconfig:"PAYMITRA_PRICING_FLAT_SHIPPING_CENTS" default:"1000"`
	FreeShippingThresholdCents int64 `envconfig:"PAYMITRA_PRICING_FREE_SHIPPING_THRESHOLD_CENTS" default:"10000"`
}

// FlatShipping returns the flat shipping charge in dollars.
func (p PricingConfig) FlatShipping() decimal.Decimal {
	return decimal.New(p.FlatShippingCents, -2)
}

// FreeShippingThreshold returns the subtotal above which shipping is waived.
func (p PricingConfig) FreeShippingThreshold() decimal.Decimal {
	return decimal.New(p.FreeShippingThresholdCents, -2)
}

type CouponConfig struct {
	Code        string `envconfig:"PAYMITRA_COUPON_CODE" default:"DISCOUNT10"`
	RateDecimal string `envconfig:"PAYMITRA_COUPON_RATE" default:"0.10"`
}

// Rate parses the configured discount rate.
func (c CouponConfig) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.RateDecimal)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing coupon rate %q: %w", c.RateDecimal, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("coupon rate %q out of range", c.RateDecimal)
	}
	return rate, nil
}
