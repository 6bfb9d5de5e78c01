package ledger

import (
	"time"

	"github.com/google/uuid"
)

func seedID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

// Seed fills s with sample accounts, a month of transactions dated before
// now and a handful of budgets. Ids are derived from names so repeated
// seeding yields the same ids.
func Seed(s *Store, now time.Time) error {
	accounts := []Account{
		{Name: "Everyday Checking", Institution: "Harbor Bank", Type: TypeChecking, BalanceCents: 420000},
		{Name: "Rainy Day Savings", Institution: "Harbor Bank", Type: TypeSavings, BalanceCents: 1250000},
		{Name: "Brokerage", Institution: "Summit Invest", Type: TypeInvestment, BalanceCents: 3875000},
		{Name: "401(k)", Institution: "Summit Invest", Type: TypeRetirement, BalanceCents: 6210000},
		{Name: "Rewards Card", Institution: "Harbor Bank", Type: TypeCredit, BalanceCents: -84500},
	}
	for _, a := range accounts {
		a.ID = seedID("account", a.Name)
		if _, err := s.AddAccount(a); err != nil {
			return err
		}
	}

	checking := seedID("account", "Everyday Checking")
	card := seedID("account", "Rewards Card")
	brokerage := seedID("account", "Brokerage")
	month := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location())
	day := func(d int) time.Time {
		t := month.AddDate(0, 0, d-1)
		if t.After(now) {
			return now
		}
		return t
	}
	txs := []Transaction{
		{AccountID: checking, Date: day(1), Description: "ACME PAYROLL", Category: "Income", AmountCents: 480000},
		{AccountID: checking, Date: day(2), Description: "CITY APARTMENTS RENT", Category: "Housing", AmountCents: -165000},
		{AccountID: card, Date: day(3), Description: "GREEN GROCER", Category: "Groceries", AmountCents: -8642},
		{AccountID: card, Date: day(4), Description: "METRO TRANSIT", Category: "Transport", AmountCents: -4500},
		{AccountID: card, Date: day(6), Description: "CORNER BISTRO", Category: "Dining", AmountCents: -5875},
		{AccountID: checking, Date: day(7), Description: "POWER & LIGHT CO", Category: "Utilities", AmountCents: -11230},
		{AccountID: card, Date: day(9), Description: "GREEN GROCER", Category: "Groceries", AmountCents: -12318},
		{AccountID: brokerage, Date: day(10), Description: "MONTHLY INDEX BUY", Category: "Investing", AmountCents: 50000},
		{AccountID: checking, Date: day(10), Description: "TRANSFER TO BROKERAGE", Category: "Investing", AmountCents: -50000},
		{AccountID: card, Date: day(12), Description: "STREAMFLIX", Category: "Subscriptions", AmountCents: -1599},
		{AccountID: card, Date: day(14), Description: "NOODLE HOUSE", Category: "Dining", AmountCents: -3420},
		{AccountID: checking, Date: day(15), Description: "ACME PAYROLL", Category: "Income", AmountCents: 480000},
	}
	for i, t := range txs {
		t.ID = seedID("transaction", t.Description+":"+t.Date.Format("2006-01-02")+":"+string(rune('a'+i)))
		if _, err := s.ApplyTransaction(t); err != nil {
			return err
		}
	}

	budgets := []struct {
		category string
		limit    int64
	}{
		{"Groceries", 60000},
		{"Dining", 25000},
		{"Transport", 12000},
		{"Utilities", 20000},
		{"Subscriptions", 5000},
	}
	for _, b := range budgets {
		if _, err := s.addBudget(Budget{ID: seedID("budget", b.category), Category: b.category, LimitCents: b.limit}); err != nil {
			return err
		}
	}
	return nil
}
