package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumFindsPureTone(t *testing.T) {
	const (
		n    = 256
		freq = 8 // cycles over the window
	)
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / n)
	}

	ps := PowerSpectrum(data)
	idx, _ := DominantFrequency(ps)

	if idx != freq {
		t.Errorf("dominant bin %d, want %d", idx, freq)
	}
}

func TestPowerSpectrumPadsOddLengths(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i % 5)
	}

	ps := PowerSpectrum(data)
	if len(ps) != 64 { // padded to 128, half returned
		t.Errorf("spectrum length %d, want 64", len(ps))
	}
}

func TestDominantFrequencySkipsDC(t *testing.T) {
	ps := []float64{100, 1, 5, 2}
	idx, val := DominantFrequency(ps)
	if idx != 2 || val != 5 {
		t.Errorf("got bin %d value %v, want bin 2 value 5", idx, val)
	}
}
