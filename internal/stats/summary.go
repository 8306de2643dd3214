// Package stats computes summary statistics over trajectory
// components, for run reports and stored metadata.
package stats

import "math"

// Summary describes one component stream of a trajectory.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	RMS   float64
	Final float64
}

func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{Min: values[0], Max: values[0], Final: values[len(values)-1]}
	sum, sumSq := 0.0, 0.0
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
		sumSq += v * v
	}

	n := float64(len(values))
	s.Mean = sum / n
	s.RMS = math.Sqrt(sumSq / n)
	return s
}

// Component extracts one component stream from a time-major buffer of
// steps slots, each dim wide.
func Component(traj []float64, dim, steps, comp int) []float64 {
	out := make([]float64, steps)
	for k := 0; k < steps; k++ {
		out[k] = traj[k*dim+comp]
	}
	return out
}

// RunStats flattens the first-component summary into the metadata map
// stored with a run.
func RunStats(traj []float64, dim, steps int) map[string]float64 {
	s := Summarize(Component(traj, dim, steps, 0))
	return map[string]float64{
		"x0_min":   s.Min,
		"x0_max":   s.Max,
		"x0_mean":  s.Mean,
		"x0_rms":   s.RMS,
		"x0_final": s.Final,
	}
}
