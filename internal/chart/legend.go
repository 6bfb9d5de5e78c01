package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/projection"
	"github.com/jask/moneydash/internal/widgets"
)

// LegendRow is the value of one series at the effective index.
type LegendRow struct {
	Name   string
	Color  string
	Period int
	Value  float64
}

// LegendRows looks up every series at EffectiveIndex(h, n), in series
// order. Legend and tooltip are both derived from it so they always show
// the same index.
func LegendRows(set []projection.Series, h Hover) []LegendRow {
	i, ok := EffectiveIndex(h, projection.CommonLength(set))
	if !ok {
		return nil
	}
	rows := make([]LegendRow, 0, len(set))
	for _, s := range set {
		p := s.Points[i]
		rows = append(rows, LegendRow{Name: s.Name, Color: s.Color, Period: p.Period, Value: p.Value})
	}
	return rows
}

// RenderLegend lists each series with a colour swatch and its value.
func RenderLegend(rows []LegendRow, money format.Formatter, hovering bool) string {
	if len(rows) == 0 {
		return labelStyle.Render("no scenarios")
	}
	heading := fmt.Sprintf("Projected value in %d", rows[0].Period)
	if !hovering {
		heading += " (end of horizon)"
	}
	lines := []string{lipgloss.NewStyle().Foreground(widgets.ColorText).Bold(true).Render(heading)}
	lines = append(lines, legendLines(rows, money)...)
	return strings.Join(lines, "\n")
}

// RenderTooltip is the compact boxed variant drawn on the chart surface.
func RenderTooltip(rows []LegendRow, money format.Formatter) string {
	if len(rows) == 0 {
		return ""
	}
	lines := []string{labelStyle.Render(fmt.Sprintf("%d", rows[0].Period))}
	lines = append(lines, legendLines(rows, money)...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(widgets.ColorSurface).
		Render(strings.Join(lines, "\n"))
}

// TooltipOrigin picks the tooltip's left column: just right of the hovered
// column, or just left of it when the box would overflow the surface.
func TooltipOrigin(anchor, width, surfaceWidth int) int {
	const gap = 2
	if anchor+gap+width <= surfaceWidth {
		return anchor + gap
	}
	return max(0, anchor-gap-width+1)
}

func legendLines(rows []LegendRow, money format.Formatter) []string {
	nameW := 0
	for _, r := range rows {
		nameW = max(nameW, ansi.StringWidth(r.Name))
	}
	values := make([]string, len(rows))
	valueW := 0
	for i, r := range rows {
		values[i] = money.Major(r.Value)
		valueW = max(valueW, ansi.StringWidth(values[i]))
	}
	out := make([]string, 0, len(rows))
	for i, r := range rows {
		swatch := seriesStyle(projection.Series{Color: r.Color}).Render("■")
		out = append(out, fmt.Sprintf("%s %-*s %*s", swatch, nameW, r.Name, valueW, values[i]))
	}
	return out
}

func tipWidth(tip string) int {
	w := 0
	for _, line := range strings.Split(tip, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}
