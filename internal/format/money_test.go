package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatterMinorAndMajor(t *testing.T) {
	t.Parallel()

	f := NewFormatter("usd")
	require.Equal(t, "USD", f.Code())
	require.Equal(t, "$1,234.56", f.Minor(123456))
	require.Equal(t, "$0.05", f.Minor(5))
	require.Equal(t, "$1,628.89", f.Major(1628.894627))
	require.Equal(t, "-$20.00", f.Minor(-2000))
}

func TestFormatterUnknownCurrencyFallsBack(t *testing.T) {
	t.Parallel()

	f := NewFormatter("not-a-code")
	require.Equal(t, DefaultCurrency, f.Code())

	var zero Formatter
	require.Equal(t, "$1.00", zero.Minor(100))
}

func TestFormatterWhole(t *testing.T) {
	t.Parallel()

	f := NewFormatter("USD")
	require.Equal(t, "$1,629", f.Whole(1628.89))
	require.Equal(t, "$0", f.Whole(0))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	f := NewFormatter("USD")
	cases := []struct {
		in   string
		want int64
	}{
		{"12", 1200},
		{"-12.5", -1250},
		{"1,234.56", 123456},
		{" $40 ", 4000},
		{"0.01", 1},
	}
	for _, tc := range cases {
		got, err := f.ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "abc", "1.234", "--1", "999999999999999999999", "-92233720368547758.09"} {
		_, err := f.ParseAmount(bad)
		require.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestMinorMajorConversion(t *testing.T) {
	t.Parallel()

	f := NewFormatter("USD")
	got, ok := f.ToMinor(10.499)
	require.True(t, ok)
	require.Equal(t, int64(1050), got)
	require.InDelta(t, 10.5, f.ToMajor(1050), 1e-9)

	for _, v := range []float64{math.Inf(1), math.NaN(), 1e17, -1e17} {
		_, ok := f.ToMinor(v)
		require.False(t, ok, v)
	}
}

func TestParseAmountLimits(t *testing.T) {
	t.Parallel()

	f := NewFormatter("USD")
	got, err := f.ParseAmount("92233720368547758.07")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), got)

	_, err = f.ParseAmount("92233720368547758.08")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormatterLargeAndNonFinite(t *testing.T) {
	t.Parallel()

	f := NewFormatter("USD")
	require.Equal(t, "$13,600,000,000,000,000,000,000,000.00", f.Major(1.36e25))
	require.Equal(t, "-$13,600,000,000,000,000,000,000,000.00", f.Major(-1.36e25))
	require.Equal(t, "$13,600,000,000,000,000,000,000,000", f.Whole(1.36e25))
	require.Equal(t, Overflow, f.Major(math.Inf(1)))
	require.Equal(t, Overflow, f.Whole(math.NaN()))

	eur := NewFormatter("EUR")
	require.Equal(t, eur.Minor(123456), eur.Major(1234.56))
	require.Equal(t, "$0.00", f.Major(-0.001))
}

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	require.Equal(t, "Friday, October 16, 2026", Today(now, ""))
	require.Equal(t, "16/10/2026", Today(now, "02/01/2006"))
}
