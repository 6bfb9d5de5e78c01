package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/moneydash/internal/ledger"
	"github.com/jask/moneydash/internal/widgets"
)

const dateInputLayout = "2006-01-02"

func (a *App) openForm(kind modalKind, f *form) tea.Cmd {
	a.modal = kind
	a.form = f
	a.status = ""
	return focusCmd(f)
}

func focusCmd(f *form) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

func (a *App) openAccountForm() tea.Cmd {
	return a.openForm(modalAddAccount, newForm("Add account", []formField{
		{key: "name", label: "Name", placeholder: "Everyday Checking"},
		{key: "institution", label: "Institution", placeholder: "optional"},
		{key: "type", label: "Type", value: ledger.TypeChecking, placeholder: "checking, savings, investment, retirement, credit"},
		{key: "balance", label: "Balance", placeholder: "0.00"},
	}))
}

func (a *App) openTransactionForm() tea.Cmd {
	if len(a.snap.Accounts) == 0 {
		a.status = "add an account first"
		return nil
	}
	account := a.snap.Accounts[0].Name
	if acc, ok := a.selectedAccount(); ok && a.tab == tabAccounts {
		account = acc.Name
	}
	return a.openForm(modalAddTransaction, newForm("New transaction", []formField{
		{key: "account", label: "Account", value: account},
		{key: "description", label: "Description", placeholder: "GREEN GROCER"},
		{key: "category", label: "Category", placeholder: "Groceries"},
		{key: "amount", label: "Amount", placeholder: "-45.20"},
		{key: "date", label: "Date", value: a.now().Format(dateInputLayout)},
	}))
}

func (a *App) openBudgetForm() tea.Cmd {
	return a.openForm(modalAddBudget, newForm("Add budget", []formField{
		{key: "category", label: "Category", placeholder: "Groceries"},
		{key: "limit", label: "Monthly limit", placeholder: "600.00"},
	}))
}

func (a *App) openBudgetEditForm() tea.Cmd {
	line, ok := a.selectedBudget()
	if !ok {
		a.status = "no budget selected"
		return nil
	}
	f := newForm("Edit "+line.Category+" limit", []formField{
		{key: "limit", label: "Monthly limit", value: a.money.Minor(line.LimitCents)},
	})
	a.editingBudget = line.ID
	return a.openForm(modalEditBudget, f)
}

func (a *App) ask(prompt, done string, run func() error) {
	a.modal = modalConfirm
	a.pending = &confirmation{prompt: prompt, done: done, run: run}
}

func (a *App) confirmRemoveAccount() {
	acc, ok := a.selectedAccount()
	if !ok {
		a.status = "no account selected"
		return
	}
	a.ask(
		fmt.Sprintf("Remove %s and all of its transactions?", acc.Name),
		"account removed",
		func() error { return a.store.RemoveAccount(acc.ID) },
	)
}

func (a *App) confirmReverse() {
	tx, ok := a.selectedTransaction()
	if !ok {
		a.status = "no transaction selected"
		return
	}
	a.ask(
		fmt.Sprintf("Reverse %s %s?", tx.Description, a.money.Minor(tx.AmountCents)),
		"transaction reversed",
		func() error { return a.store.ReverseTransaction(tx.ID) },
	)
}

func (a *App) confirmRemoveBudget() {
	line, ok := a.selectedBudget()
	if !ok {
		a.status = "no budget selected"
		return
	}
	a.ask(
		fmt.Sprintf("Remove the %s budget?", line.Category),
		"budget removed",
		func() error { return a.store.RemoveBudgetRow(line.ID) },
	)
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.form = nil
	a.pending = nil
	a.editingBudget = ""
}

func (a *App) handleModalKey(m tea.KeyMsg) tea.Cmd {
	if m.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.modal == modalConfirm {
		switch {
		case key.Matches(m, a.keys.Confirm):
			p := a.pending
			a.closeModal()
			if p == nil {
				return nil
			}
			return a.mutate(p.done, p.run)
		case key.Matches(m, a.keys.Deny):
			a.closeModal()
		}
		return nil
	}

	switch {
	case key.Matches(m, a.keys.Cancel):
		a.closeModal()
		return nil
	case key.Matches(m, a.keys.Field):
		dir := 1
		if m.String() == "shift+tab" {
			dir = -1
		}
		return a.form.move(dir)
	case key.Matches(m, a.keys.Submit):
		return a.submit()
	case a.modal == modalAddTransaction && key.Matches(m, a.keys.Suggest):
		if s, ok := a.store.SuggestCategory(a.form.value("category")); ok {
			a.form.setValue("category", s)
		}
		a.updateSuggestion()
		return nil
	}
	cmd := a.form.update(m)
	if a.modal == modalAddTransaction {
		a.updateSuggestion()
	}
	return cmd
}

// updateSuggestion shows the closest known category under the form.
func (a *App) updateSuggestion() {
	a.form.hint = ""
	input := a.form.value("category")
	if input == "" {
		return
	}
	s, ok := a.store.SuggestCategory(input)
	if !ok {
		a.form.hint = "new category"
		return
	}
	if strings.EqualFold(s, input) {
		return
	}
	a.form.hint = "did you mean " + s + "? ctrl+s to use it"
}

// submit validates the open form. On a validation error the form stays
// open and the error is shown on the status line.
func (a *App) submit() tea.Cmd {
	f := a.form
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return errMsg{err} }
	}

	switch a.modal {
	case modalAddAccount:
		balance, err := a.parseOptionalAmount(f.value("balance"))
		if err != nil {
			return fail(err)
		}
		acc := ledger.Account{
			Name:         f.value("name"),
			Institution:  f.value("institution"),
			Type:         f.value("type"),
			BalanceCents: balance,
		}
		if acc.Name == "" {
			return fail(fmt.Errorf("name required"))
		}
		a.closeModal()
		return a.mutate("account added", func() error {
			_, err := a.store.AddAccount(acc)
			return err
		})

	case modalAddTransaction:
		acc, err := a.accountByName(f.value("account"))
		if err != nil {
			return fail(err)
		}
		amount, err := a.money.ParseAmount(f.value("amount"))
		if err != nil {
			return fail(err)
		}
		date := a.now()
		if raw := f.value("date"); raw != "" {
			d, err := time.ParseInLocation(dateInputLayout, raw, a.loc)
			if err != nil {
				return fail(fmt.Errorf("date %q: want YYYY-MM-DD", raw))
			}
			date = d
		}
		tx := ledger.Transaction{
			AccountID:   acc.ID,
			Date:        date,
			Description: f.value("description"),
			Category:    f.value("category"),
			AmountCents: amount,
		}
		a.closeModal()
		return a.mutate("transaction added", func() error {
			_, err := a.store.ApplyTransaction(tx)
			return err
		})

	case modalAddBudget:
		limit, err := a.money.ParseAmount(f.value("limit"))
		if err != nil {
			return fail(err)
		}
		category := f.value("category")
		a.closeModal()
		return a.mutate("budget added", func() error {
			_, err := a.store.AddBudgetRow(category, limit)
			return err
		})

	case modalEditBudget:
		limit, err := a.money.ParseAmount(f.value("limit"))
		if err != nil {
			return fail(err)
		}
		id := a.editingBudget
		a.closeModal()
		return a.mutate("budget updated", func() error {
			return a.store.UpdateBudgetLimit(id, limit)
		})
	}
	return nil
}

func (a *App) parseOptionalAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return a.money.ParseAmount(s)
}

func (a *App) renderModal() string {
	if a.modal == modalConfirm && a.pending != nil {
		return titleStyle.Render("Confirm") + "\n\n" + a.pending.prompt + "\n\n" + hintStyle.Render("y confirm  n cancel")
	}
	if a.form != nil {
		return a.form.view() + "\n\n" + hintStyle.Render("enter save  tab next field  esc cancel")
	}
	return ""
}

func (a *App) composeModal(base string) string {
	if a.width == 0 || a.height == 0 {
		return base + "\n\n" + a.renderModal()
	}
	return widgets.RenderPopup(base, a.renderModal(), a.width, a.height)
}
