package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/moneydash/internal/projection"
)

var testSurface = Surface{Width: 72, Height: 16, Padding: 2}

func testSeries(t *testing.T, horizon int) []projection.Series {
	t.Helper()
	set, err := projection.BuildSeries(
		projection.Params{StartValue: 10000, PeriodicContribution: 1200, HorizonPeriods: horizon},
		[]projection.Scenario{
			{Name: "Conservative", Rate: 0.04, Color: "#89b4fa"},
			{Name: "Moderate", Rate: 0.06, Color: "#a6e3a1"},
			{Name: "Aggressive", Rate: 0.08, Color: "#fab387"},
		},
		2026,
	)
	require.NoError(t, err)
	return set
}

func TestScaleXEndpointsAndMonotonic(t *testing.T) {
	t.Parallel()

	sc := NewScale(testSurface, testSeries(t, 30))
	require.Equal(t, 31, sc.Len())
	require.Equal(t, 2.0, sc.X(0))
	require.InDelta(t, 70.0, sc.X(30), 1e-9)
	for i := 1; i < sc.Len(); i++ {
		require.GreaterOrEqual(t, sc.X(i), sc.X(i-1))
	}
}

func TestScaleSinglePoint(t *testing.T) {
	t.Parallel()

	sc := NewScale(testSurface, testSeries(t, 0))
	require.Equal(t, 1, sc.Len())
	require.Equal(t, 2.0, sc.X(0))
	require.Equal(t, 0, sc.IndexAt(40))
}

func TestScaleYDomain(t *testing.T) {
	t.Parallel()

	set := testSeries(t, 30)
	sc := NewScale(testSurface, set)
	require.InDelta(t, set[2].Max()*Headroom, sc.MaxValue(), 1e-6)
	require.Equal(t, 14.0, sc.Y(sc.MinValue()))
	require.Equal(t, 2.0, sc.Y(sc.MaxValue()))
	require.Equal(t, sc.Baseline(), sc.Y(0))
	require.Greater(t, sc.Y(set[2].Max()), 2.0)
}

func TestScaleFlatZeroSeriesFloorsDomain(t *testing.T) {
	t.Parallel()

	flat := []projection.Series{{Name: "flat", Points: projection.Project(projection.Params{HorizonPeriods: 4}, 2026)}}
	sc := NewScale(testSurface, flat)
	require.Equal(t, 1.0, sc.MaxValue())
	require.Equal(t, 14.0, sc.Y(0))

	degenerate := Scale{surface: testSurface, n: 2, minValue: 5, maxValue: 5}
	require.False(t, math.IsInf(degenerate.Y(5), 0))
	require.Equal(t, 14.0, degenerate.Y(5))
}

func TestScaleIndexRoundTrip(t *testing.T) {
	t.Parallel()

	sc := NewScale(testSurface, testSeries(t, 30))
	for k := 0; k < sc.Len(); k++ {
		require.Equal(t, k, sc.IndexAt(sc.X(k)), "exact position of %d", k)
		require.Equal(t, k, sc.IndexAt(math.Round(sc.X(k))), "cell column of %d", k)
	}
}

func TestScaleIndexClampsToBand(t *testing.T) {
	t.Parallel()

	sc := NewScale(testSurface, testSeries(t, 10))
	require.Equal(t, 0, sc.IndexAt(-5))
	require.Equal(t, 0, sc.IndexAt(1))
	require.Equal(t, 10, sc.IndexAt(71))
	require.Equal(t, 10, sc.IndexAt(500))

	empty := NewScale(testSurface, nil)
	require.Equal(t, -1, empty.IndexAt(10))
}
