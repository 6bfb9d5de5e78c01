package chart

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/projection"
)

type hoverLog struct{ events []Hover }

func (l *hoverLog) record(h Hover) { l.events = append(l.events, h) }

func newTestModel(t *testing.T) (*Model, *hoverLog) {
	t.Helper()
	log := &hoverLog{}
	m := New(testSurface, format.NewFormatter("USD"), log.record)
	require.NoError(t, m.SetSeries(testSeries(t, 30)))
	return m, log
}

func TestModelPointerMoveAndLeave(t *testing.T) {
	t.Parallel()

	m, log := newTestModel(t)
	require.False(t, m.Hover().Active())
	require.Empty(t, log.events, "setting series while idle is not a transition")

	m.PointerMove(int(m.Scale().X(5) + 0.5))
	require.Equal(t, HoverAt(5), m.Hover())

	m.PointerMove(int(m.Scale().X(5) + 0.5))
	require.Len(t, log.events, 1, "same index again does not notify")

	m.PointerMove(int(m.Scale().X(12) + 0.5))
	require.Equal(t, HoverAt(12), m.Hover())

	m.PointerLeave()
	require.Equal(t, NoHover(), m.Hover())
	require.Equal(t, []Hover{HoverAt(5), HoverAt(12), NoHover()}, log.events)

	m.PointerLeave()
	require.Len(t, log.events, 3)
}

func TestModelLastMoveWins(t *testing.T) {
	t.Parallel()

	m, log := newTestModel(t)
	for _, px := range []int{3, 40, 69, 20} {
		m.PointerMove(px)
	}
	require.Equal(t, m.Scale().IndexAt(20), mustIndex(t, m.Hover()))
	require.Equal(t, m.Hover(), log.events[len(log.events)-1])
}

func TestModelSeriesChangeResetsHover(t *testing.T) {
	t.Parallel()

	m, log := newTestModel(t)
	m.PointerMove(69)
	require.Equal(t, HoverAt(30), m.Hover())

	require.NoError(t, m.SetSeries(testSeries(t, 5)))
	require.Equal(t, NoHover(), m.Hover())
	require.Equal(t, NoHover(), log.events[len(log.events)-1])
	require.Equal(t, 6, m.Scale().Len())

	rows := LegendRows(m.Series(), m.Hover())
	require.Equal(t, 2031, rows[0].Period)
}

func TestModelRejectsInvalidSeries(t *testing.T) {
	t.Parallel()

	m, log := newTestModel(t)
	m.PointerMove(10)
	before := m.Hover()

	bad := append(testSeries(t, 30), projection.Series{Name: "short", Points: projection.Project(projection.Params{HorizonPeriods: 3}, 2026)})
	err := m.SetSeries(bad)
	require.ErrorIs(t, err, projection.ErrLengthMismatch)
	require.Len(t, m.Series(), 3)
	require.Equal(t, before, m.Hover())
	require.Len(t, log.events, 1)

	require.ErrorIs(t, m.SetSeries(nil), projection.ErrNoSeries)
}

func TestModelIgnoresPointerWithoutSeries(t *testing.T) {
	t.Parallel()

	log := &hoverLog{}
	m := New(testSurface, format.NewFormatter("USD"), log.record)
	m.PointerMove(10)
	m.Step(1)
	require.False(t, m.Hover().Active())
	require.Empty(t, log.events)
}

func TestModelStep(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Step(-1)
	require.Equal(t, HoverAt(30), m.Hover(), "first step activates the last index")
	m.Step(-1)
	require.Equal(t, HoverAt(29), m.Hover())
	m.Step(100)
	require.Equal(t, HoverAt(30), m.Hover())
	m.Step(-100)
	require.Equal(t, HoverAt(0), m.Hover())
}

func TestModelHandleMouseOutsideZoneLeaves(t *testing.T) {
	zm := zone.New()
	defer zm.Close()

	m, log := newTestModel(t)
	m.AttachZones(zm, "projection-chart")
	m.PointerMove(30)
	require.True(t, m.Hover().Active())

	m.HandleMouse(tea.MouseMsg{X: 500, Y: 500, Action: tea.MouseActionMotion})
	require.False(t, m.Hover().Active())
	require.Equal(t, NoHover(), log.events[len(log.events)-1])
}

func TestModelHandleMouseWithoutZonesIsNoop(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.PointerMove(30)
	m.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	require.True(t, m.Hover().Active())
}

func mustIndex(t *testing.T, h Hover) int {
	t.Helper()
	i, ok := h.Index()
	require.True(t, ok)
	return i
}
