// Package chart renders projection series as filled area charts on a
// terminal cell surface and tracks which period the pointer is over.
package chart

import (
	"math"

	"github.com/jask/moneydash/internal/projection"
)

// Headroom is the share added above the largest value.
const Headroom = 1.05

// Surface is the fixed drawing area in terminal cells.
type Surface struct {
	Width   int
	Height  int
	Padding int
}

// Inner returns the drawable band width and height.
func (s Surface) Inner() (w, h int) {
	return s.Width - 2*s.Padding, s.Height - 2*s.Padding
}

// Scale maps period indices and values onto a Surface. It is a value: build
// a new one whenever the series set or the surface changes.
type Scale struct {
	surface  Surface
	n        int
	minValue float64
	maxValue float64
}

// NewScale fits the domain of set onto s. The value domain starts at 0 and
// ends 5% above the largest value, or at 1 when there is nothing positive.
func NewScale(s Surface, set []projection.Series) Scale {
	n := projection.CommonLength(set)
	top := projection.MaxValue(set, n) * Headroom
	if top <= 0 {
		top = 1
	}
	return Scale{surface: s, n: n, minValue: 0, maxValue: top}
}

func (sc Scale) Surface() Surface  { return sc.surface }
func (sc Scale) Len() int          { return sc.n }
func (sc Scale) MaxValue() float64 { return sc.maxValue }
func (sc Scale) MinValue() float64 { return sc.minValue }

// X maps a period index to a horizontal position.
func (sc Scale) X(i int) float64 {
	p := float64(sc.surface.Padding)
	if sc.n <= 1 {
		return p
	}
	w := float64(sc.surface.Width) - 2*p
	return p + float64(i)/float64(sc.n-1)*w
}

// Y maps a value to a vertical position; larger values sit higher, so
// they get smaller row numbers.
func (sc Scale) Y(v float64) float64 {
	p := float64(sc.surface.Padding)
	h := float64(sc.surface.Height) - 2*p
	span := sc.maxValue - sc.minValue
	if span == 0 {
		span = 1
	}
	return (float64(sc.surface.Height) - p) - (v-sc.minValue)/span*h
}

// Baseline is the row of the value-domain floor.
func (sc Scale) Baseline() float64 {
	return float64(sc.surface.Height - sc.surface.Padding)
}

// Fraction converts a horizontal position into a fractional index, with the
// position clamped to the inner band.
func (sc Scale) Fraction(px float64) float64 {
	if sc.n <= 1 {
		return 0
	}
	lo := float64(sc.surface.Padding)
	hi := float64(sc.surface.Width - sc.surface.Padding)
	w := hi - lo
	if w <= 0 {
		return 0
	}
	px = math.Max(lo, math.Min(hi, px))
	return (px - lo) / w * float64(sc.n-1)
}

// IndexAt returns the period index nearest to horizontal position px, or
// -1 when the scale has no points.
func (sc Scale) IndexAt(px float64) int {
	if sc.n == 0 {
		return -1
	}
	return int(math.Round(sc.Fraction(px)))
}
