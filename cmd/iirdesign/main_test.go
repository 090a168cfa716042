package main

import "testing"

func TestFormatFloats(t *testing.T) {
	got := formatFloats([]float64{1, -0.5})
	want := "[1.00000000e+00 -5.00000000e-01]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if got := formatFloats(nil); got != "[]" {
		t.Fatalf("empty: got %q, want []", got)
	}
}

func TestParseFrequencies(t *testing.T) {
	got, err := parseFrequencies("10, 50")
	if err != nil {
		t.Fatalf("parseFrequencies: %v", err)
	}

	if len(got) != 2 || got[0] != 10 || got[1] != 50 {
		t.Fatalf("got %v, want [10 50]", got)
	}

	if _, err := parseFrequencies(""); err == nil {
		t.Fatal("empty list: want error")
	}

	if _, err := parseFrequencies("0.3,abc"); err == nil {
		t.Fatal("malformed entry: want error")
	}
}
