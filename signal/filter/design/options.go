package design

// config collects the optional arguments of IIRFilter. Values are recorded
// verbatim; validation happens once inside IIRFilter so that invalid values
// are reported as errors instead of being silently ignored.
type config struct {
	band   BandType
	family Family
	output Output

	rp    float64
	hasRP bool
	rs    float64
	hasRS bool

	analog bool
	fs     float64
	hasFS  bool
}

// Option configures a design call.
type Option func(*config)

func defaultConfig() config {
	return config{
		band:   Bandpass,
		family: Butterworth,
		output: OutputBA,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithBand sets the band type. Default is Bandpass.
func WithBand(b BandType) Option {
	return func(c *config) {
		c.band = b
	}
}

// WithFamily sets the prototype family. Default is Butterworth.
func WithFamily(f Family) Option {
	return func(c *config) {
		c.family = f
	}
}

// WithRipple sets the maximum passband ripple rp in decibels, required for
// Chebyshev I and elliptic designs.
func WithRipple(rp float64) Option {
	return func(c *config) {
		c.rp = rp
		c.hasRP = true
	}
}

// WithStopbandAttenuation sets the minimum stopband attenuation rs in
// decibels, required for Chebyshev II and elliptic designs.
func WithStopbandAttenuation(rs float64) Option {
	return func(c *config) {
		c.rs = rs
		c.hasRS = true
	}
}

// WithOutput selects the output representation. Default is OutputBA.
func WithOutput(o Output) Option {
	return func(c *config) {
		c.output = o
	}
}

// Analog requests an analog filter design instead of a digital one.
func Analog() Option {
	return func(c *config) {
		c.analog = true
	}
}

// WithSampleRate sets the sampling frequency of the digital system. When
// given, critical frequencies are in the same units as fs; otherwise they
// are normalized from 0 to 1 with 1 the Nyquist frequency.
func WithSampleRate(fs float64) Option {
	return func(c *config) {
		c.fs = fs
		c.hasFS = true
	}
}
