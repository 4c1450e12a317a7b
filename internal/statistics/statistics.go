// Package statistics summarises how long the decision policy takes.
package statistics

import (
	"math"
	"slices"
	"time"
)

// Latency accumulates decision durations against their budgets
type Latency struct {
	Count    int
	Overruns int
	Sum      time.Duration
	sumSq    float64 // seconds squared
	Max      time.Duration
	values   []time.Duration
}

// Add records one decision
func (l *Latency) Add(elapsed, budget time.Duration) {
	l.Count++
	l.Sum += elapsed
	s := elapsed.Seconds()
	l.sumSq += s * s
	l.values = append(l.values, elapsed)
	if elapsed > l.Max {
		l.Max = elapsed
	}
	if elapsed > budget {
		l.Overruns++
	}
}

// Mean returns the average decision time
func (l *Latency) Mean() time.Duration {
	if l.Count == 0 {
		return 0
	}
	return l.Sum / time.Duration(l.Count)
}

// StdDev returns the sample standard deviation of decision times
func (l *Latency) StdDev() time.Duration {
	if l.Count < 2 {
		return 0
	}
	mean := l.Sum.Seconds() / float64(l.Count)
	variance := (l.sumSq - float64(l.Count)*mean*mean) / float64(l.Count-1)
	if variance < 0 {
		variance = 0
	}
	return time.Duration(math.Sqrt(variance) * float64(time.Second))
}

// Percentile returns the decision time at p (0.0 to 1.0), interpolating
// between neighbouring samples.
func (l *Latency) Percentile(p float64) time.Duration {
	if len(l.values) == 0 {
		return 0
	}
	sorted := slices.Clone(l.values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return time.Duration(float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight)
}
