// Package projection computes compound-growth scenarios over a yearly
// period axis.
package projection

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoSeries        = errors.New("no series")
	ErrLengthMismatch  = errors.New("series point counts differ")
	ErrPeriodMismatch  = errors.New("series period axes differ")
	ErrNegativeHorizon = errors.New("horizon must be >= 0")
)

// Point is one projected value at one period.
type Point struct {
	Period int
	Value  float64
}

// Params are the inputs of Project.
type Params struct {
	StartValue           float64
	PeriodicContribution float64
	HorizonPeriods       int
	AnnualRate           float64
}

// Project returns HorizonPeriods+1 points anchored at anchorYear. Point 0
// holds StartValue; every later point adds the contribution to the
// previous value and then grows it by AnnualRate. A negative horizon
// yields nil.
func Project(p Params, anchorYear int) []Point {
	if p.HorizonPeriods < 0 {
		return nil
	}
	points := make([]Point, 0, p.HorizonPeriods+1)
	value := p.StartValue
	points = append(points, Point{Period: anchorYear, Value: value})
	for y := 1; y <= p.HorizonPeriods; y++ {
		value = (value + p.PeriodicContribution) * (1 + p.AnnualRate)
		points = append(points, Point{Period: anchorYear + y, Value: value})
	}
	return points
}

// Scenario names one rate assumption and its display colour.
type Scenario struct {
	Name  string
	Rate  float64
	Color string
}

// Series is a named, coloured point sequence. Series are rebuilt on every
// recompute and never mutated in place.
type Series struct {
	Name   string
	Color  string
	Points []Point
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Points) }

// Max returns the largest point value, or 0 for an empty series.
func (s Series) Max() float64 {
	m := 0.0
	for i, p := range s.Points {
		if i == 0 || p.Value > m {
			m = p.Value
		}
	}
	return m
}

// BuildSeries projects base once per scenario, overriding the rate. All
// returned series share one period axis.
func BuildSeries(base Params, scenarios []Scenario, anchorYear int) ([]Series, error) {
	if base.HorizonPeriods < 0 {
		return nil, fmt.Errorf("build series: %w", ErrNegativeHorizon)
	}
	out := make([]Series, 0, len(scenarios))
	for _, sc := range scenarios {
		p := base
		p.AnnualRate = sc.Rate
		out = append(out, Series{Name: sc.Name, Color: sc.Color, Points: Project(p, anchorYear)})
	}
	return out, nil
}

// Validate checks that set is non-empty and that every series shares the
// first series' point count and period axis.
func Validate(set []Series) error {
	if len(set) == 0 {
		return ErrNoSeries
	}
	ref := set[0]
	if ref.Len() == 0 {
		return fmt.Errorf("series %q: %w", ref.Name, ErrNoSeries)
	}
	for _, s := range set[1:] {
		if s.Len() != ref.Len() {
			return fmt.Errorf("series %q has %d points, %q has %d: %w", s.Name, s.Len(), ref.Name, ref.Len(), ErrLengthMismatch)
		}
		for k := range s.Points {
			if s.Points[k].Period != ref.Points[k].Period {
				return fmt.Errorf("series %q index %d: period %d != %d: %w", s.Name, k, s.Points[k].Period, ref.Points[k].Period, ErrPeriodMismatch)
			}
		}
	}
	return nil
}

// CommonLength is the shortest point count across set, the number of
// indices that are valid for every series.
func CommonLength(set []Series) int {
	if len(set) == 0 {
		return 0
	}
	n := set[0].Len()
	for _, s := range set[1:] {
		if s.Len() < n {
			n = s.Len()
		}
	}
	return n
}

// MaxValue is the largest finite value across the first n points of every
// series. NaN and infinities are skipped.
func MaxValue(set []Series, n int) float64 {
	m := 0.0
	for _, s := range set {
		for k := 0; k < n && k < s.Len(); k++ {
			if v := s.Points[k].Value; v > m && !math.IsInf(v, 1) {
				m = v
			}
		}
	}
	return m
}
