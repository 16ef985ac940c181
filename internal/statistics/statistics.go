// Package statistics aggregates analysis reports over a run of hands.
package statistics

import (
	"math"
	"sort"

	"github.com/lox/holdem-analyzer/analysis"
	"github.com/lox/holdem-analyzer/poker"
)

// StreetStats tracks equity for hands seen on one street
type StreetStats struct {
	Hands     int
	SumEquity float64
}

// Mean returns the average equity on the street
func (s StreetStats) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumEquity / float64(s.Hands)
}

// Statistics tracks equity across every analyzed hand
type Statistics struct {
	Hands      int
	SumEquity  float64
	SumEquity2 float64   // Sum of squares for variance calculation
	Values     []float64 // Every equity, for median/percentile calculation

	Streets         [4]StreetStats // Indexed by analysis.Street
	Categories      [poker.NumHandTypes]int
	Recommendations [4]int // Indexed by analysis.Recommendation
}

// Add incorporates one report
func (s *Statistics) Add(report analysis.Report) {
	equity := report.Equity.Equity()
	s.Hands++
	s.SumEquity += equity
	s.SumEquity2 += equity * equity
	s.Values = append(s.Values, equity)

	if st := int(report.Street); st >= 0 && st < len(s.Streets) {
		s.Streets[st].Hands++
		s.Streets[st].SumEquity += equity
	}
	if report.Street != analysis.PreFlop {
		s.Categories[report.Strength.Category]++
	}
	if rec := int(report.Recommendation); rec >= 0 && rec < len(s.Recommendations) {
		s.Recommendations[rec]++
	}
}

// Mean returns the arithmetic mean equity per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumEquity / float64(s.Hands)
}

// Variance returns the sample variance of equity
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return math.Max(0, (s.SumEquity2-float64(s.Hands)*mean*mean)/float64(s.Hands-1))
}

// StdDev returns the sample standard deviation of equity
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median equity
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the equity at the given percentile (0.0 to 1.0),
// interpolating between neighbouring values
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
