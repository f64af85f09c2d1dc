package conv

import "github.com/cwbudde/algo-border/dsp/pad"

// Config controls border-aware filtering.
type Config struct {
	// Border selects how samples outside the input are synthesised.
	Border pad.Border

	// Value is the border sample for pad.BorderConstant.
	Value float64

	// DirectThreshold is the longest kernel filtered in the time domain;
	// longer 1D kernels use overlap-add.
	DirectThreshold int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns mirror borders and the direct/FFT crossover used by
// Convolve.
func DefaultConfig() Config {
	return Config{
		Border:          pad.BorderMirror,
		DirectThreshold: defaultDirectThreshold,
	}
}

// WithBorder sets the border policy. Unknown policies are rejected when the
// filter is built.
func WithBorder(b pad.Border) Option {
	return func(cfg *Config) {
		cfg.Border = b
	}
}

// WithConstant selects pad.BorderConstant with the given value.
func WithConstant(value float64) Option {
	return func(cfg *Config) {
		cfg.Border = pad.BorderConstant
		cfg.Value = value
	}
}

// WithDirectThreshold sets the longest kernel handled by direct filtering.
func WithDirectThreshold(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.DirectThreshold = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
