package design

import (
	"math"
)

// IIRFilter designs an IIR filter of the given order. wn holds the critical
// frequencies: one for lowpass and highpass bands, two (strictly increasing)
// for bandpass and bandstop. Without a sample rate option the frequencies
// are normalized so that 1 is the Nyquist frequency; with WithSampleRate they
// are in the same units as fs; with Analog they are angular frequencies in
// rad/s.
//
// Defaults are a bandpass Butterworth design returned as BA coefficients.
// The concrete type of the result matches the requested Output.
func IIRFilter(order int, wn []float64, opts ...Option) (DigitalFilter, error) {
	cfg := applyOptions(opts)

	if order < 0 {
		return nil, &InvalidArgError{Arg: "order", Reason: "must be non-negative"}
	}

	if cfg.hasRP && cfg.rp < 0 {
		return nil, &InvalidArgError{Arg: "rp", Reason: "passband ripple must be non-negative"}
	}

	if cfg.hasRS && cfg.rs < 0 {
		return nil, &InvalidArgError{Arg: "rs", Reason: "stopband attenuation must be non-negative"}
	}

	w := append([]float64(nil), wn...)

	if cfg.hasFS {
		if cfg.analog {
			return nil, &ConflictingArgsError{Reason: "a sample rate cannot be combined with an analog design"}
		}

		if cfg.fs <= 0 {
			return nil, &InvalidArgError{Arg: "fs", Reason: "sample rate must be positive"}
		}

		for i := range w {
			w[i] = 2 * w[i] / cfg.fs
		}
	}

	switch cfg.band {
	case Lowpass, Highpass:
		if len(w) != 1 {
			return nil, &InvalidArgError{Arg: "wn", Reason: "lowpass and highpass designs take exactly one critical frequency"}
		}
	case Bandpass, Bandstop:
		if len(w) != 2 {
			return nil, &InvalidArgError{Arg: "wn", Reason: "bandpass and bandstop designs take exactly two critical frequencies"}
		}
	default:
		return nil, &InvalidArgError{Arg: "band", Reason: "unknown band type"}
	}

	for _, wi := range w {
		if wi <= 0 {
			return nil, &InvalidArgError{Arg: "wn", Reason: "critical frequencies must be positive"}
		}

		if !cfg.analog && wi >= 1 {
			return nil, &InvalidArgError{Arg: "wn", Reason: "digital critical frequencies must lie strictly between 0 and the Nyquist frequency"}
		}
	}

	if len(w) == 2 && w[0] >= w[1] {
		return nil, &InvalidArgError{Arg: "wn", Reason: "band edges must be strictly increasing"}
	}

	var (
		proto Zpk
		err   error
	)

	switch cfg.family {
	case Butterworth:
		proto, err = ButterAp(order)
	case ChebyshevI:
		if !cfg.hasRP {
			return nil, &ConflictingArgsError{Reason: "chebyshev1 designs need a passband ripple (WithRipple)"}
		}
		proto, err = Cheby1Ap(order, cfg.rp)
	case ChebyshevII:
		if !cfg.hasRS {
			return nil, &ConflictingArgsError{Reason: "chebyshev2 designs need a stopband attenuation (WithStopbandAttenuation)"}
		}
		proto, err = Cheby2Ap(order, cfg.rs)
	case Elliptic:
		if !cfg.hasRP {
			return nil, &ConflictingArgsError{Reason: "elliptic designs need a passband ripple (WithRipple)"}
		}
		if !cfg.hasRS {
			return nil, &ConflictingArgsError{Reason: "elliptic designs need a stopband attenuation (WithStopbandAttenuation)"}
		}
		proto, err = EllipAp(order, cfg.rp, cfg.rs)
	case Bessel:
		proto, err = BesselAp(order)
	default:
		return nil, &InvalidArgError{Arg: "family", Reason: "unknown filter family"}
	}

	if err != nil {
		return nil, err
	}

	// Digital designs pre-warp the band edges so the discretized filter hits
	// them exactly despite the frequency compression of the bilinear map.
	const fs = 2.0

	warped := make([]float64, len(w))
	if cfg.analog {
		copy(warped, w)
	} else {
		for i := range w {
			warped[i] = 2 * fs * math.Tan(math.Pi*w[i]/fs)
		}
	}

	var f Zpk

	switch cfg.band {
	case Lowpass:
		f, err = LowpassToLowpass(proto, warped[0])
	case Highpass:
		f, err = LowpassToHighpass(proto, warped[0])
	case Bandpass:
		bw := warped[1] - warped[0]
		wo := math.Sqrt(warped[0] * warped[1])
		f, err = LowpassToBandpass(proto, wo, bw)
	case Bandstop:
		bw := warped[1] - warped[0]
		wo := math.Sqrt(warped[0] * warped[1])
		f, err = LowpassToBandstop(proto, wo, bw)
	}

	if err != nil {
		return nil, err
	}

	if !cfg.analog {
		f, err = BilinearZpk(f, fs)
		if err != nil {
			return nil, err
		}
	}

	switch cfg.output {
	case OutputZpk:
		return f, nil
	case OutputBA:
		ba, err := ZpkToBa(f)
		if err != nil {
			return nil, err
		}
		return ba, nil
	case OutputSos:
		sos, err := ZpkToSos(f, cfg.analog)
		if err != nil {
			return nil, err
		}
		return sos, nil
	default:
		return nil, &InvalidArgError{Arg: "output", Reason: "unknown output representation"}
	}
}

// Butter designs a Butterworth filter. Unlike IIRFilter, the band defaults
// to lowpass; pass WithBand to override.
func Butter(order int, wn []float64, opts ...Option) (DigitalFilter, error) {
	opts = append([]Option{WithBand(Lowpass)}, opts...)

	return IIRFilter(order, wn, append(opts, WithFamily(Butterworth))...)
}

// Cheby1 designs a Chebyshev type I filter with rp decibels of passband
// ripple. The band defaults to lowpass; pass WithBand to override.
func Cheby1(order int, rp float64, wn []float64, opts ...Option) (DigitalFilter, error) {
	opts = append([]Option{WithBand(Lowpass)}, opts...)

	return IIRFilter(order, wn, append(opts, WithFamily(ChebyshevI), WithRipple(rp))...)
}

// Cheby2 designs a Chebyshev type II filter with rs decibels of stopband
// attenuation. The band defaults to lowpass; pass WithBand to override.
func Cheby2(order int, rs float64, wn []float64, opts ...Option) (DigitalFilter, error) {
	opts = append([]Option{WithBand(Lowpass)}, opts...)

	return IIRFilter(order, wn, append(opts, WithFamily(ChebyshevII), WithStopbandAttenuation(rs))...)
}
