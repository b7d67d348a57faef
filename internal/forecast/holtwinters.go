// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package forecast

import (
	"math"

	"github.com/montanaflynn/stats"
)

// holtWinters projects periods steps using multiplicative triple exponential
// smoothing. The caller guarantees len(history) >= 2*SeasonLength.
func holtWinters(history []float64, periods int, cfg SmoothingConfig) []int {
	L := cfg.SeasonLength
	n := len(history)
	seasons := n / L

	level := mean(history[:L])

	var trend float64
	for i := 0; i < seasons-1; i++ {
		cur := mean(history[i*L : (i+1)*L])
		next := mean(history[(i+1)*L : (i+2)*L])
		trend += (next - cur) / float64(L)
	}
	trend /= float64(seasons - 1)

	seasonal := make([]float64, L)
	for p := 0; p < L; p++ {
		var sum float64
		for s := 0; s < seasons; s++ {
			sum += safeDiv(history[s*L+p], level)
		}
		seasonal[p] = sum / float64(seasons)
	}

	for i, x := range history {
		p := i % L
		prevLevel := level
		level = cfg.Alpha*safeDiv(x, seasonal[p]) + (1-cfg.Alpha)*(prevLevel+trend)
		trend = cfg.Beta*(level-prevLevel) + (1-cfg.Beta)*trend
		seasonal[p] = cfg.Gamma*safeDiv(x, level) + (1-cfg.Gamma)*seasonal[p]
	}

	out := make([]int, periods)
	for h := 1; h <= periods; h++ {
		out[h-1] = toQuantity((level + float64(h)*trend) * seasonal[(n+h-1)%L])
	}
	return out
}

// movingAverage repeats the mean of the trailing window for every step.
func movingAverage(history []float64, periods, window int) []int {
	out := make([]int, periods)
	if len(history) == 0 {
		return out
	}

	if window > len(history) {
		window = len(history)
	}
	q := toQuantity(mean(history[len(history)-window:]))
	for i := range out {
		out[i] = q
	}
	return out
}

// mean returns 0 for an empty slice.
func mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}

// safeDiv treats division by zero as zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// toQuantity floors at zero and rounds to the nearest integer.
func toQuantity(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
