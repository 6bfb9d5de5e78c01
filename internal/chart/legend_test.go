package chart

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/moneydash/internal/format"
)

func TestEffectiveIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		hover Hover
		n     int
		want  int
		ok    bool
	}{
		{"idle uses last", NoHover(), 31, 30, true},
		{"hover in range", HoverAt(4), 31, 4, true},
		{"hover out of range falls back", HoverAt(40), 6, 5, true},
		{"negative index falls back", HoverAt(-1), 6, 5, true},
		{"no points", HoverAt(2), 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := EffectiveIndex(tc.hover, tc.n)
		require.Equal(t, tc.ok, ok, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}
}

func TestHoverVariants(t *testing.T) {
	t.Parallel()

	var zero Hover
	require.Equal(t, NoHover(), zero)
	require.Equal(t, "none", zero.String())
	require.Equal(t, "7", HoverAt(7).String())
	i, ok := HoverAt(0).Index()
	require.True(t, ok)
	require.Equal(t, 0, i)
}

func TestLegendRowsFollowHover(t *testing.T) {
	t.Parallel()

	set := testSeries(t, 30)
	idle := LegendRows(set, NoHover())
	require.Len(t, idle, 3)
	for k, row := range idle {
		require.Equal(t, set[k].Name, row.Name)
		require.Equal(t, set[k].Points[30].Value, row.Value)
		require.Equal(t, 2056, row.Period)
	}

	hovered := LegendRows(set, HoverAt(7))
	for k, row := range hovered {
		require.Equal(t, set[k].Points[7].Value, row.Value)
		require.Equal(t, 2033, row.Period)
	}

	require.Nil(t, LegendRows(nil, NoHover()))
}

func TestRenderLegendAndTooltipAgree(t *testing.T) {
	t.Parallel()

	money := format.NewFormatter("USD")
	set := testSeries(t, 30)
	rows := LegendRows(set, HoverAt(12))

	legend := ansi.Strip(RenderLegend(rows, money, true))
	tip := ansi.Strip(RenderTooltip(rows, money))
	require.Contains(t, legend, "Projected value in 2038")
	require.NotContains(t, legend, "end of horizon")
	for _, r := range rows {
		v := money.Major(r.Value)
		require.Contains(t, legend, v)
		require.Contains(t, tip, v)
		require.Contains(t, tip, r.Name)
	}

	idle := ansi.Strip(RenderLegend(LegendRows(set, NoHover()), money, false))
	require.Contains(t, idle, "2056 (end of horizon)")
	require.Contains(t, ansi.Strip(RenderLegend(nil, money, false)), "no scenarios")
}

func TestTooltipOrigin(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12, TooltipOrigin(10, 20, 72))
	require.Equal(t, 60-2-20+1, TooltipOrigin(60, 20, 72), "flips left near the right edge")
	require.Equal(t, 0, TooltipOrigin(5, 30, 20), "never negative")
}

func TestLegendColumnsAlignWithMultibyteSymbols(t *testing.T) {
	t.Parallel()

	money := format.NewFormatter("EUR")
	rows := []LegendRow{
		{Name: "Low", Period: 2030, Value: 5},
		{Name: "High", Period: 2030, Value: 1234567.89},
	}
	valueW := ansi.StringWidth(money.Major(1234567.89))
	for _, line := range legendLines(rows, money) {
		require.Equal(t, 1+1+len("High")+1+valueW, ansi.StringWidth(ansi.Strip(line)), line)
	}
}
