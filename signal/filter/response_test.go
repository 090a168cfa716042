package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/SpookyYomo/sci-go/signal/filter/design"
)

func TestFreqzBA_UnityFilter(t *testing.T) {
	w, h, err := FreqzBA(design.BA{B: []float64{1}, A: []float64{1}}, 8)
	if err != nil {
		t.Fatalf("FreqzBA: %v", err)
	}

	if len(w) != 8 || len(h) != 8 {
		t.Fatalf("got %d/%d samples, want 8/8", len(w), len(h))
	}

	if w[0] != 0 || math.Abs(w[7]-7*math.Pi/8) > 1e-12 {
		t.Fatalf("grid = %v, want [0, 7pi/8] span", w)
	}

	for i, v := range h {
		if math.Abs(real(v)-1) > 1e-12 || math.Abs(imag(v)) > 1e-12 {
			t.Fatalf("h[%d] = %v, want 1", i, v)
		}
	}
}

func TestFreqzSos_ButterworthCutoff(t *testing.T) {
	filterOut, err := design.Butter(4, []float64{0.5}, design.WithOutput(design.OutputSos))
	if err != nil {
		t.Fatalf("Butter: %v", err)
	}

	sos := filterOut.(design.Sos)

	w, h, err := FreqzSos(sos, 512)
	if err != nil {
		t.Fatalf("FreqzSos: %v", err)
	}

	mag := Magnitude(h)

	// DC gain is unity for a lowpass Butterworth design.
	if math.Abs(mag[0]-1) > 1e-9 {
		t.Fatalf("|H(0)| = %v, want 1", mag[0])
	}

	// The half-band cutoff lands exactly on grid point 256.
	if math.Abs(w[256]-math.Pi/2) > 1e-12 {
		t.Fatalf("w[256] = %v, want pi/2", w[256])
	}

	if math.Abs(mag[256]-math.Sqrt2/2) > 1e-6 {
		t.Fatalf("|H(wc)| = %v, want %v", mag[256], math.Sqrt2/2)
	}

	// Deep in the stopband the response is strongly attenuated.
	if mag[511] > 1e-3 {
		t.Fatalf("|H| near nyquist = %v, want < 1e-3", mag[511])
	}
}

func TestFreqzBAAndSosAgree(t *testing.T) {
	baOut, err := design.Butter(4, []float64{0.3})
	if err != nil {
		t.Fatalf("Butter ba: %v", err)
	}

	sosOut, err := design.Butter(4, []float64{0.3}, design.WithOutput(design.OutputSos))
	if err != nil {
		t.Fatalf("Butter sos: %v", err)
	}

	_, hBA, err := FreqzBA(baOut.(design.BA), 128)
	if err != nil {
		t.Fatalf("FreqzBA: %v", err)
	}

	_, hSos, err := FreqzSos(sosOut.(design.Sos), 128)
	if err != nil {
		t.Fatalf("FreqzSos: %v", err)
	}

	for i := range hBA {
		if d := hBA[i] - hSos[i]; math.Hypot(real(d), imag(d)) > 1e-9 {
			t.Fatalf("responses diverge at %d: ba=%v sos=%v", i, hBA[i], hSos[i])
		}
	}
}

func TestFreqz_Rejects(t *testing.T) {
	if _, _, err := FreqzBA(design.BA{B: []float64{1}, A: []float64{1}}, 0); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("n=0: got %v, want ErrEmptyResponse", err)
	}

	if _, _, err := FreqzSos(design.Sos{}, 16); !errors.Is(err, ErrNoSections) {
		t.Fatalf("empty cascade: got %v, want ErrNoSections", err)
	}
}
