package design

import (
	"errors"
	"testing"

	"github.com/SpookyYomo/sci-go/signal/conv"
)

func TestIIRFilter_ButterBandpassZpk(t *testing.T) {
	filter, err := IIRFilter(4, []float64{10, 50},
		WithBand(Bandpass),
		WithFamily(Butterworth),
		WithOutput(OutputZpk),
		WithSampleRate(1666),
	)
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	zpk, ok := filter.(Zpk)
	if !ok {
		t.Fatalf("got %T, want Zpk", filter)
	}

	wantZ := []complex128{1, 1, 1, 1, -1, -1, -1, -1}
	assertRoots(t, zpk.Z, wantZ, 1e-6)

	wantP := []complex128{
		complex(0.98924866, -0.03710237),
		complex(0.96189799, -0.03364097),
		complex(0.96189799, 0.03364097),
		complex(0.98924866, 0.03710237),
		complex(0.93873849, 0.16792939),
		complex(0.89956011, 0.08396115),
		complex(0.89956011, -0.08396115),
		complex(0.93873849, -0.16792939),
	}
	assertRoots(t, zpk.P, wantP, 1e-6)

	if !closeTo(zpk.K, 2.6775767382597835e-05, 1e-8) {
		t.Fatalf("k = %v, want 2.6775767382597835e-05", zpk.K)
	}
}

func TestIIRFilter_ButterBandpassSos(t *testing.T) {
	filter, err := IIRFilter(4, []float64{10, 50},
		WithBand(Bandpass),
		WithFamily(Butterworth),
		WithOutput(OutputSos),
		WithSampleRate(1666),
	)
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	sos, ok := filter.(Sos)
	if !ok {
		t.Fatalf("got %T, want Sos", filter)
	}

	want := []Section{
		{B: [3]float64{2.67757674e-05, 5.35515348e-05, 2.67757674e-05}, A: [3]float64{1, -1.79912022, 8.16257861e-01}},
		{B: [3]float64{1, 2, 1}, A: [3]float64{1, -1.87747699, 9.09430241e-01}},
		{B: [3]float64{1, -2, 1}, A: [3]float64{1, -1.92379599, 9.26379467e-01}},
		{B: [3]float64{1, -2, 1}, A: [3]float64{1, -1.97849731, 9.79989489e-01}},
	}

	if len(sos.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(sos.Sections), len(want))
	}

	for i := range want {
		assertSection(t, sos.Sections[i], want[i], 1e-7)
	}
}

func TestIIRFilter_ButterBandpassBa(t *testing.T) {
	filter, err := IIRFilter(4, []float64{10, 50},
		WithBand(Bandpass),
		WithFamily(Butterworth),
		WithOutput(OutputBA),
		WithSampleRate(1666),
	)
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	ba, ok := filter.(BA)
	if !ok {
		t.Fatalf("got %T, want BA", filter)
	}

	wantB := []float64{
		2.67757674e-05, 0, -1.07103070e-04, 0, 1.60654604e-04, 0, -1.07103070e-04, 0, 2.67757674e-05,
	}
	wantA := []float64{
		1, -7.57889051, 25.1632497, -47.80506049, 56.83958432, -43.31144279, 20.65538731, -5.63674562, 0.67391808,
	}

	if len(ba.B) != len(wantB) || len(ba.A) != len(wantA) {
		t.Fatalf("got %d/%d coefficients, want %d/%d", len(ba.B), len(ba.A), len(wantB), len(wantA))
	}

	for i := range wantB {
		if !closeTo(ba.B[i], wantB[i], 1e-7) {
			t.Fatalf("b[%d] = %v, want %v", i, ba.B[i], wantB[i])
		}
	}

	for i := range wantA {
		if !closeTo(ba.A[i], wantA[i], 1e-7) {
			t.Fatalf("a[%d] = %v, want %v", i, ba.A[i], wantA[i])
		}
	}
}

func TestIIRFilter_SosProductMatchesBa(t *testing.T) {
	opts := []Option{
		WithBand(Bandpass),
		WithFamily(Butterworth),
		WithSampleRate(1666),
	}

	baFilter, err := IIRFilter(4, []float64{10, 50}, append(opts, WithOutput(OutputBA))...)
	if err != nil {
		t.Fatalf("IIRFilter ba: %v", err)
	}

	sosFilter, err := IIRFilter(4, []float64{10, 50}, append(opts, WithOutput(OutputSos))...)
	if err != nil {
		t.Fatalf("IIRFilter sos: %v", err)
	}

	ba := baFilter.(BA)
	sos := sosFilter.(Sos)

	b := []float64{1}
	a := []float64{1}
	for _, s := range sos.Sections {
		if b, err = conv.Direct(b, s.B[:]); err != nil {
			t.Fatalf("Direct: %v", err)
		}
		if a, err = conv.Direct(a, s.A[:]); err != nil {
			t.Fatalf("Direct: %v", err)
		}
	}

	if len(b) != len(ba.B) || len(a) != len(ba.A) {
		t.Fatalf("degree mismatch: got %d/%d, want %d/%d", len(b), len(a), len(ba.B), len(ba.A))
	}

	for i := range b {
		if !closeTo(b[i], ba.B[i], 1e-9) {
			t.Fatalf("b[%d] = %v, want %v", i, b[i], ba.B[i])
		}
	}

	for i := range a {
		if !closeTo(a[i], ba.A[i], 1e-9) {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], ba.A[i])
		}
	}
}

func TestIIRFilter_ButterHighpassZpk(t *testing.T) {
	filter, err := IIRFilter(4, []float64{90},
		WithBand(Highpass),
		WithFamily(Butterworth),
		WithOutput(OutputZpk),
		WithSampleRate(2003),
	)
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	zpk := filter.(Zpk)

	assertRoots(t, zpk.Z, []complex128{1, 1, 1, 1}, 1e-6)

	wantP := []complex128{
		complex(0.86788666, -0.23258286),
		complex(0.76382075, -0.08478723),
		complex(0.76382075, 0.08478723),
		complex(0.86788666, 0.23258286),
	}
	assertRoots(t, zpk.P, wantP, 1e-6)

	if !closeTo(zpk.K, 0.6905166297398233, 1e-8) {
		t.Fatalf("k = %v, want 0.6905166297398233", zpk.K)
	}
}

func TestIIRFilter_ButterLowpassZpk(t *testing.T) {
	filter, err := IIRFilter(4, []float64{90},
		WithBand(Lowpass),
		WithFamily(Butterworth),
		WithOutput(OutputZpk),
		WithSampleRate(2003),
	)
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	zpk := filter.(Zpk)

	assertRoots(t, zpk.Z, []complex128{-1, -1, -1, -1}, 1e-6)

	wantP := []complex128{
		complex(0.86788666, 0.23258286),
		complex(0.76382075, 0.08478723),
		complex(0.76382075, -0.08478723),
		complex(0.86788666, -0.23258286),
	}
	assertRoots(t, zpk.P, wantP, 1e-6)

	if !closeTo(zpk.K, 0.0002815867605254161, 1e-8) {
		t.Fatalf("k = %v, want 0.0002815867605254161", zpk.K)
	}
}

func TestIIRFilter_HighpassPolesMirrorLowpass(t *testing.T) {
	lp, err := IIRFilter(4, []float64{90},
		WithBand(Lowpass), WithOutput(OutputZpk), WithSampleRate(2003))
	if err != nil {
		t.Fatalf("IIRFilter lowpass: %v", err)
	}

	hp, err := IIRFilter(4, []float64{90},
		WithBand(Highpass), WithOutput(OutputZpk), WithSampleRate(2003))
	if err != nil {
		t.Fatalf("IIRFilter highpass: %v", err)
	}

	lpk := lp.(Zpk)
	hpk := hp.(Zpk)

	if len(lpk.P) != len(hpk.P) {
		t.Fatalf("pole counts differ: %d vs %d", len(lpk.P), len(hpk.P))
	}

	for i := range lpk.P {
		want := complex(real(lpk.P[i]), -imag(lpk.P[i]))
		if !closeTo(real(hpk.P[i]), real(want), 1e-9) || !closeTo(imag(hpk.P[i]), imag(want), 1e-9) {
			t.Fatalf("pole %d = %v, want conjugate of %v", i, hpk.P[i], lpk.P[i])
		}
	}
}

func TestIIRFilter_AnalogLowpass(t *testing.T) {
	filter, err := IIRFilter(2, []float64{1},
		WithBand(Lowpass),
		WithOutput(OutputZpk),
		Analog(),
	)
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	zpk := filter.(Zpk)

	if len(zpk.Z) != 0 {
		t.Fatalf("got %d zeros, want none", len(zpk.Z))
	}

	want := []complex128{
		complex(-0.70710678, 0.70710678),
		complex(-0.70710678, -0.70710678),
	}
	assertRoots(t, zpk.P, want, 1e-7)

	if !closeTo(zpk.K, 1, 1e-12) {
		t.Fatalf("k = %v, want 1", zpk.K)
	}
}

func TestButter_DefaultsToLowpass(t *testing.T) {
	got, err := Butter(4, []float64{0.5}, WithOutput(OutputZpk))
	if err != nil {
		t.Fatalf("Butter: %v", err)
	}

	want, err := IIRFilter(4, []float64{0.5},
		WithBand(Lowpass), WithFamily(Butterworth), WithOutput(OutputZpk))
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	gz := got.(Zpk)
	wz := want.(Zpk)

	assertRoots(t, gz.Z, wz.Z, 1e-12)
	assertRoots(t, gz.P, wz.P, 1e-12)

	if !closeTo(gz.K, wz.K, 1e-12) {
		t.Fatalf("k = %v, want %v", gz.K, wz.K)
	}
}

func TestCheby1_WiresFamilyAndRipple(t *testing.T) {
	got, err := Cheby1(4, 2, []float64{0.3}, WithOutput(OutputZpk))
	if err != nil {
		t.Fatalf("Cheby1: %v", err)
	}

	want, err := IIRFilter(4, []float64{0.3},
		WithBand(Lowpass), WithFamily(ChebyshevI), WithRipple(2), WithOutput(OutputZpk))
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	gz := got.(Zpk)
	wz := want.(Zpk)

	assertRoots(t, gz.P, wz.P, 1e-12)

	if !closeTo(gz.K, wz.K, 1e-12) {
		t.Fatalf("k = %v, want %v", gz.K, wz.K)
	}
}

func TestCheby2_WiresFamilyAndAttenuation(t *testing.T) {
	got, err := Cheby2(4, 40, []float64{0.3}, WithOutput(OutputZpk))
	if err != nil {
		t.Fatalf("Cheby2: %v", err)
	}

	want, err := IIRFilter(4, []float64{0.3},
		WithBand(Lowpass), WithFamily(ChebyshevII), WithStopbandAttenuation(40), WithOutput(OutputZpk))
	if err != nil {
		t.Fatalf("IIRFilter: %v", err)
	}

	gz := got.(Zpk)
	wz := want.(Zpk)

	assertRoots(t, gz.Z, wz.Z, 1e-12)
	assertRoots(t, gz.P, wz.P, 1e-12)

	if !closeTo(gz.K, wz.K, 1e-12) {
		t.Fatalf("k = %v, want %v", gz.K, wz.K)
	}
}

func TestIIRFilter_RejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name  string
		order int
		wn    []float64
		opts  []Option
	}{
		{"negative order", -1, []float64{0.5}, []Option{WithBand(Lowpass)}},
		{"negative ripple", 4, []float64{0.5}, []Option{WithBand(Lowpass), WithRipple(-1)}},
		{"negative attenuation", 4, []float64{0.5}, []Option{WithBand(Lowpass), WithStopbandAttenuation(-1)}},
		{"non-positive sample rate", 4, []float64{90}, []Option{WithBand(Lowpass), WithSampleRate(0)}},
		{"lowpass with two edges", 4, []float64{0.2, 0.5}, []Option{WithBand(Lowpass)}},
		{"bandpass with one edge", 4, []float64{0.2}, []Option{WithBand(Bandpass)}},
		{"zero frequency", 4, []float64{0}, []Option{WithBand(Lowpass)}},
		{"frequency at nyquist", 4, []float64{1}, []Option{WithBand(Lowpass)}},
		{"edges not increasing", 4, []float64{0.5, 0.2}, []Option{WithBand(Bandpass)}},
		{"lowpass with three edges", 4, []float64{0.1, 0.2, 0.3}, []Option{WithBand(Lowpass)}},
		{"bandpass with three edges", 4, []float64{0.1, 0.2, 0.3}, []Option{WithBand(Bandpass)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := IIRFilter(tc.order, tc.wn, tc.opts...)

			var argErr *InvalidArgError
			if !errors.As(err, &argErr) {
				t.Fatalf("got %v, want InvalidArgError", err)
			}
		})
	}
}

func TestIIRFilter_RejectsConflictingArguments(t *testing.T) {
	var confErr *ConflictingArgsError

	_, err := IIRFilter(4, []float64{90}, WithBand(Lowpass), Analog(), WithSampleRate(2003))
	if !errors.As(err, &confErr) {
		t.Fatalf("analog with fs: got %v, want ConflictingArgsError", err)
	}

	_, err = IIRFilter(4, []float64{0.5}, WithBand(Lowpass), WithFamily(ChebyshevI))
	if !errors.As(err, &confErr) {
		t.Fatalf("chebyshev1 without ripple: got %v, want ConflictingArgsError", err)
	}

	_, err = IIRFilter(4, []float64{0.5}, WithBand(Lowpass), WithFamily(ChebyshevII))
	if !errors.As(err, &confErr) {
		t.Fatalf("chebyshev2 without attenuation: got %v, want ConflictingArgsError", err)
	}
}

func TestIIRFilter_UnimplementedFamilies(t *testing.T) {
	_, err := IIRFilter(4, []float64{0.5},
		WithBand(Lowpass), WithFamily(Elliptic), WithRipple(1), WithStopbandAttenuation(40))
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("elliptic: got %v, want ErrNotImplemented", err)
	}

	_, err = IIRFilter(4, []float64{0.5}, WithBand(Lowpass), WithFamily(Bessel))
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("bessel: got %v, want ErrNotImplemented", err)
	}
}
