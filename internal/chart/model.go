package chart

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/projection"
	"github.com/jask/moneydash/internal/widgets"
)

// Model is the interactive chart. It owns the hover state and reports every
// change of it to the observer passed to New. Callers read the hover state
// through the observer; they never set it.
type Model struct {
	surface Surface
	series  []projection.Series
	scale   Scale
	hover   Hover
	money   format.Formatter
	onHover func(Hover)

	zones  *zone.Manager
	zoneID string
}

// New returns an idle chart with no series. onHover may be nil.
func New(surface Surface, money format.Formatter, onHover func(Hover)) *Model {
	return &Model{
		surface: surface,
		scale:   NewScale(surface, nil),
		money:   money,
		onHover: onHover,
	}
}

// AttachZones makes View mark its output as zone id so HandleMouse can
// resolve pointer positions relative to the drawing surface.
func (m *Model) AttachZones(zm *zone.Manager, id string) {
	m.zones = zm
	m.zoneID = id
}

// SetSeries replaces the series set after validating it. An invalid set is
// rejected and the previous one stays on screen. A successful change always
// drops any active hover.
func (m *Model) SetSeries(set []projection.Series) error {
	if err := projection.Validate(set); err != nil {
		return fmt.Errorf("set series: %w", err)
	}
	m.series = set
	m.scale = NewScale(m.surface, set)
	m.setHover(NoHover())
	return nil
}

// SetSurface resizes the drawing area. The hovered index stays valid since
// the period axis is unchanged.
func (m *Model) SetSurface(s Surface) {
	m.surface = s
	m.scale = NewScale(s, m.series)
}

func (m *Model) Surface() Surface            { return m.surface }
func (m *Model) Scale() Scale                { return m.scale }
func (m *Model) Hover() Hover                { return m.hover }
func (m *Model) Series() []projection.Series { return m.series }

// PointerMove hovers the index nearest to surface column px. Positions
// outside the inner band clamp to the first or last index.
func (m *Model) PointerMove(px int) {
	i := m.scale.IndexAt(float64(px))
	if i < 0 {
		return
	}
	m.setHover(HoverAt(i))
}

// PointerLeave returns the chart to idle. It is also used for pointer
// cancellation such as the terminal losing focus.
func (m *Model) PointerLeave() {
	m.setHover(NoHover())
}

// Step moves the hover by delta indices, starting from the last index when
// idle.
func (m *Model) Step(delta int) {
	n := m.scale.Len()
	i, ok := EffectiveIndex(m.hover, n)
	if !ok {
		return
	}
	if m.hover.Active() {
		i += delta
	}
	i = max(0, min(n-1, i))
	m.setHover(HoverAt(i))
}

// HandleMouse routes a mouse event through the zone manager: inside the
// chart zone it is a pointer move, anywhere else a pointer leave.
func (m *Model) HandleMouse(msg tea.MouseMsg) {
	if m.zones == nil {
		return
	}
	zi := m.zones.Get(m.zoneID)
	if !zi.InBounds(msg) {
		m.PointerLeave()
		return
	}
	x, _ := zi.Pos(msg)
	m.PointerMove(x)
}

func (m *Model) setHover(h Hover) {
	if h == m.hover {
		return
	}
	m.hover = h
	if m.onHover != nil {
		m.onHover(h)
	}
}

// View draws the chart, with the tooltip composited next to the hovered
// column.
func (m *Model) View() string {
	out := Render(m.surface, m.series, m.hover)
	if i, ok := m.hover.Index(); ok && len(m.series) > 0 {
		tip := RenderTooltip(LegendRows(m.series, m.hover), m.money)
		x := TooltipOrigin(int(m.scale.X(i)+0.5), tipWidth(tip), m.surface.Width)
		out = widgets.OverlayAt(out, tip, x, m.surface.Padding, m.surface.Width, m.surface.Height)
	}
	if m.zones != nil {
		out = m.zones.Mark(m.zoneID, out)
	}
	return out
}
