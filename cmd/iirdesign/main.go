// Command iirdesign designs IIR filters and prints their coefficients.
//
// Usage:
//
//	iirdesign [flags]
//
// Examples:
//
//	iirdesign -order 4 -wn 0.3
//	iirdesign -order 4 -band bandpass -wn 10,50 -fs 1666 -output sos
//	iirdesign -order 5 -family cheby1 -rp 2 -wn 0.2 -output zpk
//	iirdesign -order 4 -wn 0.3 -output sos -response 9
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/SpookyYomo/sci-go/signal/filter"
	"github.com/SpookyYomo/sci-go/signal/filter/design"
)

var bandsByName = map[string]design.BandType{
	"lowpass":  design.Lowpass,
	"highpass": design.Highpass,
	"bandpass": design.Bandpass,
	"bandstop": design.Bandstop,
}

var familiesByName = map[string]design.Family{
	"butter":   design.Butterworth,
	"cheby1":   design.ChebyshevI,
	"cheby2":   design.ChebyshevII,
	"elliptic": design.Elliptic,
	"bessel":   design.Bessel,
}

func main() {
	order := flag.Int("order", 4, "filter order")
	wnFlag := flag.String("wn", "", "critical frequencies, comma separated (one for lowpass/highpass, two for bandpass/bandstop)")
	bandFlag := flag.String("band", "lowpass", "band type: lowpass, highpass, bandpass, bandstop")
	familyFlag := flag.String("family", "butter", "prototype family: butter, cheby1, cheby2, elliptic, bessel")
	rp := flag.Float64("rp", math.NaN(), "passband ripple in dB (cheby1, elliptic)")
	rs := flag.Float64("rs", math.NaN(), "stopband attenuation in dB (cheby2, elliptic)")
	fs := flag.Float64("fs", math.NaN(), "sample rate; critical frequencies are normalized to nyquist when omitted")
	analog := flag.Bool("analog", false, "design an analog filter instead of a digital one")
	outputFlag := flag.String("output", "ba", "output representation: ba, zpk, sos")
	response := flag.Int("response", 0, "also print the magnitude response at N frequencies (digital ba/sos only)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirdesign [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs an IIR filter and prints its coefficients.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iirdesign -order 4 -wn 0.3\n")
		fmt.Fprintf(os.Stderr, "  iirdesign -order 4 -band bandpass -wn 10,50 -fs 1666 -output sos\n")
		fmt.Fprintf(os.Stderr, "  iirdesign -order 5 -family cheby1 -rp 2 -wn 0.2 -output zpk\n")
	}
	flag.Parse()

	wn, err := parseFrequencies(*wnFlag)
	if err != nil {
		fatalf("invalid -wn: %v", err)
	}

	band, ok := bandsByName[strings.ToLower(*bandFlag)]
	if !ok {
		fatalf("unknown band %q", *bandFlag)
	}

	family, ok := familiesByName[strings.ToLower(*familyFlag)]
	if !ok {
		fatalf("unknown family %q", *familyFlag)
	}

	var output design.Output
	switch strings.ToLower(*outputFlag) {
	case "ba":
		output = design.OutputBA
	case "zpk":
		output = design.OutputZpk
	case "sos":
		output = design.OutputSos
	default:
		fatalf("unknown output %q", *outputFlag)
	}

	opts := []design.Option{
		design.WithBand(band),
		design.WithFamily(family),
		design.WithOutput(output),
	}

	if !math.IsNaN(*rp) {
		opts = append(opts, design.WithRipple(*rp))
	}

	if !math.IsNaN(*rs) {
		opts = append(opts, design.WithStopbandAttenuation(*rs))
	}

	if !math.IsNaN(*fs) {
		opts = append(opts, design.WithSampleRate(*fs))
	}

	if *analog {
		opts = append(opts, design.Analog())
	}

	result, err := design.IIRFilter(*order, wn, opts...)
	if err != nil {
		fatalf("%v", err)
	}

	switch f := result.(type) {
	case design.BA:
		printBA(f)
		if *response > 0 && !*analog {
			printResponseBA(f, *response)
		}
	case design.Zpk:
		printZpk(f)
	case design.Sos:
		printSos(f)
		if *response > 0 && !*analog {
			printResponseSos(f, *response)
		}
	}
}

func parseFrequencies(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no critical frequencies given")
	}

	parts := strings.Split(s, ",")
	wn := make([]float64, 0, len(parts))

	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}

		wn = append(wn, v)
	}

	return wn, nil
}

func printBA(ba design.BA) {
	fmt.Println("b:", formatFloats(ba.B))
	fmt.Println("a:", formatFloats(ba.A))
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.8e", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func printZpk(f design.Zpk) {
	fmt.Println("zeros:")
	for _, z := range f.Z {
		fmt.Printf("  %+.8e %+.8ei\n", real(z), imag(z))
	}

	fmt.Println("poles:")
	for _, p := range f.P {
		fmt.Printf("  %+.8e %+.8ei\n", real(p), imag(p))
	}

	fmt.Printf("gain: %.12e\n", f.K)
}

func printSos(sos design.Sos) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tb0\tb1\tb2\ta0\ta1\ta2\n")

	for i, s := range sos.Sections {
		fmt.Fprintf(tw, "%d\t%.8e\t%.8e\t%.8e\t%.8e\t%.8e\t%.8e\n",
			i, s.B[0], s.B[1], s.B[2], s.A[0], s.A[1], s.A[2])
	}

	if err := tw.Flush(); err != nil {
		fatalf("flush output: %v", err)
	}
}

func printResponseBA(ba design.BA, n int) {
	w, h, err := filter.FreqzBA(ba, n)
	if err != nil {
		fatalf("response: %v", err)
	}

	printResponse(w, h)
}

func printResponseSos(sos design.Sos, n int) {
	w, h, err := filter.FreqzSos(sos, n)
	if err != nil {
		fatalf("response: %v", err)
	}

	printResponse(w, h)
}

func printResponse(w []float64, h []complex128) {
	mag := filter.Magnitude(h)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nw [rad/sample]\t|H|\t|H| [dB]\n")

	for i := range w {
		db := 20 * math.Log10(math.Max(mag[i], 1e-300))
		fmt.Fprintf(tw, "%.6f\t%.6e\t%.2f\n", w[i], mag[i], db)
	}

	if err := tw.Flush(); err != nil {
		fatalf("flush output: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
