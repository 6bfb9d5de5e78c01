package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const anchor = 2026

func TestProjectRecurrence(t *testing.T) {
	t.Parallel()

	for _, horizon := range []int{0, 1, 5, 10} {
		p := Params{StartValue: 2500, PeriodicContribution: 300, HorizonPeriods: horizon, AnnualRate: 0.07}
		points := Project(p, anchor)
		require.Len(t, points, horizon+1)
		require.Equal(t, Point{Period: anchor, Value: 2500}, points[0])
		for y := 1; y <= horizon; y++ {
			want := (points[y-1].Value + p.PeriodicContribution) * (1 + p.AnnualRate)
			require.InDelta(t, want, points[y].Value, 1e-9, "horizon %d index %d", horizon, y)
			require.Equal(t, anchor+y, points[y].Period)
		}
	}
}

func TestProjectCompoundGrowth(t *testing.T) {
	t.Parallel()

	points := Project(Params{StartValue: 1000, HorizonPeriods: 10, AnnualRate: 0.05}, anchor)
	require.InDelta(t, 1000*math.Pow(1.05, 10), points[10].Value, 1e-9)
	require.InDelta(t, 1628.89, points[10].Value, 0.01)
	for i := 1; i < len(points); i++ {
		require.Greater(t, points[i].Value, points[i-1].Value)
	}
}

func TestProjectAcceptsNegativeInputs(t *testing.T) {
	t.Parallel()

	points := Project(Params{StartValue: -100, PeriodicContribution: 0, HorizonPeriods: 2, AnnualRate: -0.5}, anchor)
	require.Len(t, points, 3)
	require.InDelta(t, -50, points[1].Value, 1e-9)
	require.InDelta(t, -25, points[2].Value, 1e-9)

	require.Nil(t, Project(Params{HorizonPeriods: -1}, anchor))
}

func TestBuildSeriesSharesAxis(t *testing.T) {
	t.Parallel()

	scenarios := []Scenario{
		{Name: "Conservative", Rate: 0.04, Color: "#89b4fa"},
		{Name: "Moderate", Rate: 0.06, Color: "#a6e3a1"},
		{Name: "Aggressive", Rate: 0.08, Color: "#fab387"},
	}
	set, err := BuildSeries(Params{StartValue: 10000, PeriodicContribution: 1000, HorizonPeriods: 20}, scenarios, anchor)
	require.NoError(t, err)
	require.Len(t, set, 3)
	require.NoError(t, Validate(set))
	require.Equal(t, "Moderate", set[1].Name)
	require.Equal(t, "#a6e3a1", set[1].Color)
	require.Less(t, set[0].Points[20].Value, set[2].Points[20].Value)
	require.InDelta(t, set[2].Max(), MaxValue(set, CommonLength(set)), 1e-9)

	_, err = BuildSeries(Params{HorizonPeriods: -3}, scenarios, anchor)
	require.ErrorIs(t, err, ErrNegativeHorizon)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	a := Series{Name: "a", Points: Project(Params{StartValue: 1, HorizonPeriods: 3}, anchor)}
	short := Series{Name: "short", Points: Project(Params{StartValue: 1, HorizonPeriods: 2}, anchor)}
	shifted := Series{Name: "shifted", Points: Project(Params{StartValue: 1, HorizonPeriods: 3}, anchor+1)}

	require.ErrorIs(t, Validate(nil), ErrNoSeries)
	require.ErrorIs(t, Validate([]Series{{Name: "empty"}}), ErrNoSeries)
	require.ErrorIs(t, Validate([]Series{a, short}), ErrLengthMismatch)
	require.ErrorIs(t, Validate([]Series{a, shifted}), ErrPeriodMismatch)
	require.NoError(t, Validate([]Series{a}))

	require.Equal(t, 3, CommonLength([]Series{a, short}))
	require.Equal(t, 0, CommonLength(nil))
}

func TestMaxValueSkipsNonFinite(t *testing.T) {
	t.Parallel()

	set := []Series{{Points: []Point{{Value: 10}, {Value: math.Inf(1)}, {Value: math.NaN()}, {Value: 25}}}}
	require.Equal(t, 25.0, MaxValue(set, 4))
}
