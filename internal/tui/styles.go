package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/moneydash/internal/widgets"
)

// Catppuccin Mocha, shared with the chart and panel widgets.
const (
	colorBrand    lipgloss.Color = "#f5c2e7"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(widgets.ColorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorTextStyle = lipgloss.NewStyle().Foreground(widgets.ColorError)
	hintStyle      = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Background(colorMantle).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorMantle)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorOverlay0).Background(colorMantle)
)
