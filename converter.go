package NumConv

import (
	"NumConv/config"
	"NumConv/convops"
)

// Converter runs the four conversions with boundary validation and input limits.
// It is immutable after construction and safe for concurrent use.
type Converter struct {
	cfg *config.ConvCfgOpts
}

var _ convops.ConversionOps = (*Converter)(nil)

func NewConverter(options ...Option) *Converter {
	opts := config.DefaultConvOpts()
	for _, option := range options {
		option(opts)
	}

	return &Converter{cfg: opts}
}

// Option is a function that configures a ConvCfgOpts.
type Option func(*config.ConvCfgOpts)

// WithMaxPhraseLength caps the byte length of number-word input.
// Non-positive values disable the cap.
func WithMaxPhraseLength(n int) Option {
	return func(cfg *config.ConvCfgOpts) {
		cfg.MaxPhraseLength = n
	}
}

// WithMaxEncodedLength caps the length of base64 input.
// Non-positive values disable the cap.
func WithMaxEncodedLength(n int) Option {
	return func(cfg *config.ConvCfgOpts) {
		cfg.MaxEncodedLength = n
	}
}

// WithLimits copies both limits from cfg, typically loaded from a config file
func WithLimits(limits config.ConvCfgOpts) Option {
	return func(cfg *config.ConvCfgOpts) {
		*cfg = limits
	}
}

// Limits returns a copy of the converter's limits
func (c *Converter) Limits() config.ConvCfgOpts {
	return *c.cfg
}
