package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	require.NoError(t, Seed(s, testNow))
	return s
}

func TestInvestedBalanceIsConfigurable(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	brokerage, ok := s.Account(seedID("account", "Brokerage"))
	require.True(t, ok)
	retirement, ok := s.Account(seedID("account", "401(k)"))
	require.True(t, ok)

	require.Equal(t, brokerage.BalanceCents, s.InvestedBalanceCents([]string{"investment"}))
	require.Equal(t, brokerage.BalanceCents+retirement.BalanceCents, s.InvestedBalanceCents([]string{" Investment", "RETIREMENT"}))
	require.Zero(t, s.InvestedBalanceCents(nil))
}

func TestNetWorthFollowsTransactions(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	before := s.NetWorthCents()
	_, err := s.ApplyTransaction(Transaction{AccountID: seedID("account", "Everyday Checking"), AmountCents: -2500, Category: "Dining"})
	require.NoError(t, err)
	require.Equal(t, before-2500, s.NetWorthCents())
}

func TestMonthSummary(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	sum := s.MonthSummary(testNow)
	require.Equal(t, int64(480000+480000+50000), sum.IncomeCents)
	require.Equal(t, int64(165000+8642+4500+5875+11230+12318+50000+1599+3420), sum.ExpenseCents)

	require.Equal(t, MonthSummary{}, s.MonthSummary(testNow.AddDate(0, -2, 0)))
}

func TestBudgetStatus(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	lines := s.BudgetStatus(testNow)
	require.Len(t, lines, 5)
	byCat := map[string]BudgetLine{}
	for _, l := range lines {
		byCat[l.Category] = l
	}
	require.Equal(t, int64(8642+12318), byCat["Groceries"].SpentCents)
	require.Equal(t, int64(60000-8642-12318), byCat["Groceries"].RemainingCents)
	require.False(t, byCat["Groceries"].Over)

	_, err := s.ApplyTransaction(Transaction{AccountID: seedID("account", "Rewards Card"), Date: testNow, Category: "subscriptions", AmountCents: -4000})
	require.NoError(t, err)
	sub := s.BudgetStatus(testNow)[4]
	require.Equal(t, "Subscriptions", sub.Category)
	require.True(t, sub.Over)
	require.Equal(t, int64(5000-5599), sub.RemainingCents)
}

func TestCategoriesAndSuggestions(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	cats := s.Categories()
	require.Contains(t, cats, "Groceries")
	require.Contains(t, cats, "Income")
	for i := 1; i < len(cats); i++ {
		require.LessOrEqual(t, cats[i-1], cats[i])
	}

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"groceries", "Groceries", true},
		{"Grocereis", "Groceries", true},
		{"dinning", "Dining", true},
		{"Utilites", "Utilities", true},
		{"zzzzzzzz", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := s.SuggestCategory(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	a := seededStore(t).Snapshot()
	b := seededStore(t).Snapshot()
	require.Equal(t, a, b)
	require.Len(t, a.Accounts, 5)
	require.Len(t, a.Transactions, 12)
	require.Len(t, a.Budgets, 5)
}
