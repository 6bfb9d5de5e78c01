package ledger

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// InvestedBalanceCents sums balances of accounts whose type is one of
// types, compared case-insensitively.
func (s *Store) InvestedBalanceCents(types []string) int64 {
	var total int64
	for _, a := range s.accounts {
		for _, t := range types {
			if strings.EqualFold(strings.TrimSpace(t), a.Type) {
				total += a.BalanceCents
				break
			}
		}
	}
	return total
}

// NetWorthCents sums every account balance.
func (s *Store) NetWorthCents() int64 {
	var total int64
	for _, a := range s.accounts {
		total += a.BalanceCents
	}
	return total
}

// MonthSummary totals transactions dated in month's calendar month.
func (s *Store) MonthSummary(month time.Time) MonthSummary {
	var out MonthSummary
	for _, t := range s.transactions {
		if !sameMonth(t.Date, month) {
			continue
		}
		if t.AmountCents > 0 {
			out.IncomeCents += t.AmountCents
		} else {
			out.ExpenseCents -= t.AmountCents
		}
	}
	return out
}

// BudgetStatus reports spend against every budget for month. Spend is the
// total of outflows in the budget's category.
func (s *Store) BudgetStatus(month time.Time) []BudgetLine {
	spent := map[string]int64{}
	for _, t := range s.transactions {
		if t.AmountCents >= 0 || !sameMonth(t.Date, month) {
			continue
		}
		spent[strings.ToLower(t.Category)] -= t.AmountCents
	}
	lines := make([]BudgetLine, 0, len(s.budgets))
	for _, b := range s.budgets {
		used := spent[strings.ToLower(b.Category)]
		lines = append(lines, BudgetLine{
			Budget:         b,
			SpentCents:     used,
			RemainingCents: b.LimitCents - used,
			Over:           used > b.LimitCents,
		})
	}
	return lines
}

// Categories lists the distinct categories used by budgets and
// transactions, sorted case-insensitively.
func (s *Store) Categories() []string {
	seen := map[string]string{}
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		key := strings.ToLower(c)
		if _, ok := seen[key]; !ok {
			seen[key] = c
		}
	}
	for _, b := range s.budgets {
		add(b.Category)
	}
	for _, t := range s.transactions {
		add(t.Category)
	}
	out := make([]string, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// SuggestCategory returns the known category closest to input. An exact
// case-insensitive match always wins; otherwise the nearest category by
// edit distance is returned when the distance is at most max(2, len/3).
func (s *Store) SuggestCategory(input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}
	cats := s.Categories()
	if i := slices.IndexFunc(cats, func(c string) bool { return strings.ToLower(c) == needle }); i >= 0 {
		return cats[i], true
	}
	best, bestDist := "", -1
	for _, c := range cats {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len([]rune(needle))/3) {
		return "", false
	}
	return best, true
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
