// Package design provides IIR digital and analog filter design.
//
// Filters are specified by order, critical frequencies, and an analog
// lowpass prototype family (Butterworth, Chebyshev type I or II). The
// design pipeline builds the normalized prototype in zero-pole-gain form,
// remaps it to the requested band (lowpass, highpass, bandpass, bandstop),
// discretizes it with the bilinear transform for digital designs, and
// converts the result to the requested representation:
//
//   - Zpk: zeros, poles, and gain
//   - BA: numerator/denominator polynomial coefficients
//   - Sos: cascaded second-order sections, preferred for filtering
//
// The entry point is IIRFilter; Butter, Cheby1, and Cheby2 are shorthands
// for the common families. Every stage validates its inputs and returns an
// error rather than panicking, so a failed design is always reported to the
// caller as an InvalidArgError, a ConflictingArgsError, or a wrapped
// ErrNotImplemented.
package design
