package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Palette shared by the dashboard views.
var (
	ColorText    lipgloss.Color = "#cdd6f4"
	ColorMuted   lipgloss.Color = "#7f849c"
	ColorSurface lipgloss.Color = "#45475a"
	ColorAccent  lipgloss.Color = "#89b4fa"
	ColorSuccess lipgloss.Color = "#a6e3a1"
	ColorError   lipgloss.Color = "#f38ba8"
	ColorPeach   lipgloss.Color = "#fab387"

	colorBorder       lipgloss.Color = "#585b70"
	colorBorderActive lipgloss.Color = "#89b4fa"
)

// Panel is a titled, rounded box of fixed size.
type Panel struct {
	Title   string
	Content string
	Active  bool
}

// Render draws the panel into width x height cells. Content lines beyond
// the inner area are clipped.
func (p Panel) Render(width, height int) string {
	width = max(width, 4)
	height = max(height, 3)
	border := colorBorder
	if p.Active {
		border = colorBorderActive
	}
	bs := lipgloss.NewStyle().Foreground(border)
	ts := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	inner := width - 2
	title := ""
	if p.Title != "" {
		title = " " + ansi.Truncate(p.Title, max(0, inner-3), "") + " "
	}
	fill := max(0, inner-1-ansi.StringWidth(title))
	top := bs.Render("╭─") + ts.Render(title) + bs.Render(strings.Repeat("─", fill)+"╮")
	if title == "" {
		top = bs.Render("╭" + strings.Repeat("─", inner) + "╮")
	}

	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	side := bs.Render("│")
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, side+PadRight(line, inner)+side)
	}
	rows = append(rows, bs.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}

// StatCard is a compact label/value block.
type StatCard struct {
	Label string
	Value string
	Color lipgloss.Color
}

func (c StatCard) Render(width int) string {
	color := c.Color
	if color == "" {
		color = ColorText
	}
	label := lipgloss.NewStyle().Foreground(ColorMuted).Render(c.Label)
	value := lipgloss.NewStyle().Foreground(color).Bold(true).Render(c.Value)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(max(width-2, 1)).
		Render(label + "\n" + value)
}

// Row joins rendered blocks horizontally with a one-column gap.
func Row(blocks ...string) string {
	parts := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
