// Package ledger keeps accounts, transactions and budgets in memory.
//
// A Store has a single writer: the UI event loop applies commands to it
// and views read copies through Snapshot.
package ledger

import "time"

// Account types understood by the dashboard. Any other string is allowed.
const (
	TypeChecking   = "checking"
	TypeSavings    = "savings"
	TypeInvestment = "investment"
	TypeRetirement = "retirement"
	TypeCredit     = "credit"
)

// Account represents a balance-holding account.
type Account struct {
	ID           string
	Name         string
	Institution  string
	Type         string
	BalanceCents int64
}

// Transaction represents one booked movement. Negative amounts are
// outflows.
type Transaction struct {
	ID          string
	AccountID   string
	Date        time.Time
	Description string
	Category    string
	AmountCents int64
}

// Budget is a monthly spending limit for one category.
type Budget struct {
	ID         string
	Category   string
	LimitCents int64
}

// BudgetLine is a budget with its spend for the month.
type BudgetLine struct {
	Budget
	SpentCents     int64
	RemainingCents int64
	Over           bool
}

// MonthSummary totals a month's inflows and outflows. ExpenseCents is
// positive.
type MonthSummary struct {
	IncomeCents  int64
	ExpenseCents int64
}

// Snapshot is a deep copy of the store contents.
type Snapshot struct {
	Accounts     []Account
	Transactions []Transaction
	Budgets      []Budget
}
