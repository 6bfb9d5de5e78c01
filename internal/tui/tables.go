package tui

import (
	"github.com/charmbracelet/bubbles/table"
)

func newTable(cols []table.Column) table.Model {
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(10))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorSubtext0)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	return t
}

func accountColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Institution", Width: 16},
		{Title: "Type", Width: 11},
		{Title: "Balance", Width: 14},
	}
}

func transactionColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Account", Width: 18},
		{Title: "Description", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 12},
	}
}

func budgetColumns() []table.Column {
	return []table.Column{
		{Title: "Category", Width: 16},
		{Title: "Limit", Width: 12},
		{Title: "Spent", Width: 12},
		{Title: "Remaining", Width: 12},
		{Title: "", Width: 5},
	}
}

// fillTables rebuilds every table from the current snapshot, keeping the
// cursor inside the new row range.
func (a *App) fillTables() {
	names := make(map[string]string, len(a.snap.Accounts))
	accRows := make([]table.Row, 0, len(a.snap.Accounts))
	for _, acc := range a.snap.Accounts {
		names[acc.ID] = acc.Name
		accRows = append(accRows, table.Row{acc.Name, acc.Institution, acc.Type, a.money.Minor(acc.BalanceCents)})
	}
	setRows(&a.accounts, accRows)

	txRows := make([]table.Row, 0, len(a.snap.Transactions))
	for _, tx := range a.snap.Transactions {
		txRows = append(txRows, table.Row{
			tx.Date.In(a.loc).Format(dateInputLayout),
			names[tx.AccountID],
			tx.Description,
			tx.Category,
			a.money.Minor(tx.AmountCents),
		})
	}
	setRows(&a.transactions, txRows)

	budgetRows := make([]table.Row, 0, len(a.budgetLines))
	for _, l := range a.budgetLines {
		flag := "ok"
		if l.Over {
			flag = "over"
		}
		budgetRows = append(budgetRows, table.Row{
			l.Category,
			a.money.Minor(l.LimitCents),
			a.money.Minor(l.SpentCents),
			a.money.Minor(l.RemainingCents),
			flag,
		})
	}
	setRows(&a.budgets, budgetRows)
}

func setRows(t *table.Model, rows []table.Row) {
	cursor := t.Cursor()
	t.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	t.SetCursor(max(0, min(cursor, len(rows)-1)))
}
