package chart

import (
	"math"
	"slices"
	"strconv"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/moneydash/internal/projection"
	"github.com/jask/moneydash/internal/widgets"
)

const (
	areaRune   = '░'
	guideRune  = '╎'
	markerRune = '●'
	axisRune   = '─'
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(widgets.ColorSurface)
	guideStyle = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	labelStyle = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
)

// Render draws set onto a Width x Height canvas: a filled area per series
// down to the baseline, a line through each series and, while hovering, a
// vertical guide plus one marker per series at the hovered index. Series
// of unequal length are drawn up to the shortest one.
func Render(s Surface, set []projection.Series, h Hover) string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}
	c := canvas.New(s.Width, s.Height)
	sc := NewScale(s, set)
	n := sc.Len()
	if n == 0 {
		writeText(&c, s.Padding, s.Height/2, "no projection data", labelStyle)
		return c.View()
	}

	base := clampRow(sc.Baseline(), s.Height)
	x0 := clampCol(sc.X(0), s.Width)
	x1 := clampCol(sc.X(n-1), s.Width)
	for x := x0; x <= x1; x++ {
		c.SetRuneWithStyle(canvas.Point{X: x, Y: base}, axisRune, axisStyle)
	}

	// Areas back to front so earlier series stay visible over later,
	// usually larger, ones. Lines go on top of every area.
	for k := len(set) - 1; k >= 0; k-- {
		style := seriesStyle(set[k])
		for x := x0; x <= x1; x++ {
			top := clampRow(sc.Y(valueAt(set[k], sc.Fraction(float64(x)), n)), s.Height)
			for y := top + 1; y < base; y++ {
				c.SetRuneWithStyle(canvas.Point{X: x, Y: y}, areaRune, style)
			}
		}
	}
	for _, series := range set {
		graph.DrawLinePoints(&c, linePath(sc, series, n), runes.ArcLineStyle, seriesStyle(series))
	}

	if i, ok := h.Index(); ok && i >= 0 && i < n {
		gx := clampCol(sc.X(i), s.Width)
		for y := min(s.Padding, base); y < base; y++ {
			p := canvas.Point{X: gx, Y: y}
			if runes.IsLine(c.Cell(p).Rune) {
				continue
			}
			c.SetRuneWithStyle(p, guideRune, guideStyle)
		}
		for _, series := range set {
			row := clampRow(sc.Y(series.Points[i].Value), s.Height)
			c.SetRuneWithStyle(canvas.Point{X: gx, Y: row}, markerRune, seriesStyle(series))
		}
	}

	if label := base + 1; label < s.Height {
		first := strconv.Itoa(set[0].Points[0].Period)
		last := strconv.Itoa(set[0].Points[n-1].Period)
		writeText(&c, x0, label, first, labelStyle)
		if x1-len(last)+1 > x0+len(first) {
			writeText(&c, x1-len(last)+1, label, last, labelStyle)
		}
	}
	return c.View()
}

// linePath joins the canvas cells of the first n points of s with
// adjacent-or-diagonal steps, ready for graph.DrawLinePoints.
func linePath(sc Scale, s projection.Series, n int) []canvas.Point {
	w, h := sc.Surface().Width, sc.Surface().Height
	var path []canvas.Point
	for i := 0; i < n; i++ {
		p := canvas.Point{X: clampCol(sc.X(i), w), Y: clampRow(sc.Y(s.Points[i].Value), h)}
		if len(path) == 0 {
			path = append(path, p)
			continue
		}
		prev := path[len(path)-1]
		seg := graph.GetLinePoints(prev, p)
		if len(seg) > 0 && seg[0] != prev {
			slices.Reverse(seg)
		}
		if len(seg) > 1 {
			path = append(path, seg[1:]...)
		}
	}
	return path
}

// valueAt linearly interpolates series at fractional index f.
func valueAt(s projection.Series, f float64, n int) float64 {
	if n == 1 || f <= 0 {
		return s.Points[0].Value
	}
	k := int(math.Floor(f))
	if k >= n-1 {
		return s.Points[n-1].Value
	}
	t := f - float64(k)
	return s.Points[k].Value + (s.Points[k+1].Value-s.Points[k].Value)*t
}

// clampRow keeps y on the canvas. Values too large to draw arrive here as
// -Inf and pin to the top row; NaN falls to the bottom.
func clampRow(y float64, height int) int {
	switch {
	case math.IsNaN(y):
		return height - 1
	case y < 0:
		return 0
	case y > float64(height-1):
		return height - 1
	}
	return int(math.Round(y))
}

func clampCol(x float64, width int) int {
	return max(0, min(width-1, int(math.Round(x))))
}

func seriesStyle(s projection.Series) lipgloss.Style {
	if s.Color == "" {
		return lipgloss.NewStyle().Foreground(widgets.ColorAccent)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
}

func writeText(c *canvas.Model, x, y int, text string, style lipgloss.Style) {
	for i, r := range []rune(text) {
		if x+i >= c.Width() {
			return
		}
		c.SetRuneWithStyle(canvas.Point{X: x + i, Y: y}, r, style)
	}
}
