package stats

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, -2, 3, 2})

	if s.Min != -2 || s.Max != 3 || s.Final != 2 {
		t.Errorf("got min=%v max=%v final=%v", s.Min, s.Max, s.Final)
	}
	if s.Mean != 1.0 {
		t.Errorf("mean = %v, want 1", s.Mean)
	}
	wantRMS := math.Sqrt((1 + 4 + 9 + 4) / 4.0)
	if math.Abs(s.RMS-wantRMS) > 1e-12 {
		t.Errorf("rms = %v, want %v", s.RMS, wantRMS)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestComponent(t *testing.T) {
	traj := []float64{1, 10, 2, 20, 3, 30} // dim 2, 3 slots
	got := Component(traj, 2, 3, 1)

	want := []float64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
