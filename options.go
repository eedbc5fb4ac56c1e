package rounded

import (
	"image/png"
	"log/slog"
)

// Option configures a single rounding call.
// Use functional options to customize logging and encoding.
//
// Example:
//
//	out, err := rounded.Round(data, 128, 128, 20,
//	    rounded.WithLogger(slog.Default()),
//	    rounded.WithCompression(png.BestCompression))
type Option func(*options)

// options holds optional configuration for one call.
type options struct {
	logger   *slog.Logger
	codec    Codec
	codecSet bool
	level    png.CompressionLevel
}

// defaultOptions returns the default call options.
func defaultOptions() options {
	return options{
		logger: nil, // Falls back to Logger() if nil
		level:  png.DefaultCompression,
	}
}

// newOptions applies opts over the defaults and resolves fallbacks.
func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	if !o.codecSet {
		o.codec = PNGCodec{CompressionLevel: o.level}
	}
	return o
}

// WithLogger sets the logger that receives the diagnostics of this call,
// overriding the package default set by [SetLogger].
// Passing nil keeps the package default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCodec replaces the PNG codec used to decode input and encode output.
// When set, [WithCompression] has no effect.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c == nil {
			return
		}
		o.codec = c
		o.codecSet = true
	}
}

// WithCompression sets the zlib compression level of the default PNG codec.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *options) {
		o.level = level
	}
}
