// Package analysis provides frequency analysis over trajectory
// components.
package analysis

import (
	"math"
	"math/cmplx"
)

// fft is an in-place-free radix-2 Cooley-Tukey transform; len(data)
// must be a power of two.
func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	fe := fft(even)
	fo := fft(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		out[k] = fe[k] + w*fo[k]
		out[k+n/2] = fe[k] - w*fo[k]
	}
	return out
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitude of the positive-frequency half
// of the transform, zero-padding the input up to a power of two.
func PowerSpectrum(data []float64) []float64 {
	padded := make([]complex128, nextPow2(len(data)))
	for i, v := range data {
		padded[i] = complex(v, 0)
	}

	out := fft(padded)
	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// DominantFrequency returns the index and magnitude of the strongest
// nonzero bin of a power spectrum.
func DominantFrequency(ps []float64) (int, float64) {
	maxIdx, maxVal := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxVal {
			maxIdx, maxVal = i, ps[i]
		}
	}
	return maxIdx, maxVal
}
