// Package tui is the bubbletea front end of moneydash.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/jask/moneydash/internal/chart"
	"github.com/jask/moneydash/internal/config"
	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/ledger"
	"github.com/jask/moneydash/internal/projection"
)

const chartZone = "projection-chart"

// App ties together the ledger, the projection chart and the views.
type App struct {
	cfg   config.Config
	store *ledger.Store
	log   *zap.Logger
	clock func() time.Time
	loc   *time.Location
	money format.Formatter
	keys  keyMap
	help  help.Model
	zones *zone.Manager

	width  int
	height int
	tab    tab
	status string

	chart       *chart.Model
	hover       chart.Hover
	seenVersion uint64
	computed    bool

	snap         ledger.Snapshot
	budgetLines  []ledger.BudgetLine
	accounts     table.Model
	transactions table.Model
	budgets      table.Model

	modal         modalKind
	form          *form
	pending       *confirmation
	editingBudget string
}

type tab int

const (
	tabDashboard tab = iota
	tabAccounts
	tabTransactions
	tabBudgets
	tabCount
)

var tabNames = []string{"Dashboard", "Accounts", "Transactions", "Budgets"}

type modalKind string

const (
	modalNone           modalKind = ""
	modalAddAccount     modalKind = "addAccount"
	modalAddTransaction modalKind = "addTransaction"
	modalAddBudget      modalKind = "addBudget"
	modalEditBudget     modalKind = "editBudget"
	modalConfirm        modalKind = "confirm"
)

// confirmation is a destructive command waiting for y/n.
type confirmation struct {
	prompt string
	done   string
	run    func() error
}

// messages
type statusMsg string
type errMsg struct{ error }

// New builds the app around an existing store. A nil clock means time.Now.
func New(cfg config.Config, store *ledger.Store, log *zap.Logger, clock func() time.Time) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}
	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using local", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		loc = time.Local
	}
	a := &App{
		cfg:   cfg,
		store: store,
		log:   log,
		clock: clock,
		loc:   loc,
		money: format.NewFormatter(cfg.UI.Currency),
		keys:  newKeyMap(),
		help:  help.New(),
		zones: zone.New(),
	}
	a.help.Styles.ShortKey = helpKeyStyle
	a.help.Styles.ShortDesc = helpDescStyle
	a.help.Styles.ShortSeparator = helpSepStyle
	a.chart = chart.New(cfg.Chart.Surface(), a.money, a.onHover)
	a.chart.AttachZones(a.zones, chartZone)
	a.accounts = newTable(accountColumns())
	a.transactions = newTable(transactionColumns())
	a.budgets = newTable(budgetColumns())
	a.refresh()
	return a
}

func (a *App) now() time.Time { return a.clock().In(a.loc) }

// onHover is the chart's observer. The legend reads this copy.
func (a *App) onHover(h chart.Hover) {
	a.hover = h
	a.log.Debug("hover changed", zap.Stringer("hover", h))
}

// Close releases the zone manager.
func (a *App) Close() { a.zones.Close() }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(m.Width, m.Height)
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a, a.handleModalKey(m)
		}
		return a, a.handleKey(m)
	case tea.MouseMsg:
		if a.modal == modalNone && a.tab == tabDashboard {
			a.chart.HandleMouse(m)
		}
	case tea.BlurMsg:
		a.chart.PointerLeave()
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.NextTab):
		a.setTab((a.tab + 1) % tabCount)
		return nil
	case key.Matches(m, a.keys.PrevTab):
		a.setTab((a.tab + tabCount - 1) % tabCount)
		return nil
	case key.Matches(m, a.keys.Jump):
		a.setTab(tab(m.String()[0] - '1'))
		return nil
	case key.Matches(m, a.keys.AddTx):
		if a.tab == tabDashboard || a.tab == tabAccounts {
			return a.openTransactionForm()
		}
	}

	switch a.tab {
	case tabDashboard:
		switch {
		case key.Matches(m, a.keys.Left):
			a.chart.Step(-1)
		case key.Matches(m, a.keys.Right):
			a.chart.Step(1)
		case key.Matches(m, a.keys.Clear):
			a.chart.PointerLeave()
		}
		return nil
	case tabAccounts:
		switch {
		case key.Matches(m, a.keys.Add):
			return a.openAccountForm()
		case key.Matches(m, a.keys.Delete):
			a.confirmRemoveAccount()
			return nil
		}
		var cmd tea.Cmd
		a.accounts, cmd = a.accounts.Update(m)
		return cmd
	case tabTransactions:
		switch {
		case key.Matches(m, a.keys.Add):
			return a.openTransactionForm()
		case key.Matches(m, a.keys.Delete):
			a.confirmReverse()
			return nil
		}
		var cmd tea.Cmd
		a.transactions, cmd = a.transactions.Update(m)
		return cmd
	case tabBudgets:
		switch {
		case key.Matches(m, a.keys.Add):
			return a.openBudgetForm()
		case key.Matches(m, a.keys.Edit):
			return a.openBudgetEditForm()
		case key.Matches(m, a.keys.Delete):
			a.confirmRemoveBudget()
			return nil
		}
		var cmd tea.Cmd
		a.budgets, cmd = a.budgets.Update(m)
		return cmd
	}
	return nil
}

func (a *App) setTab(t tab) {
	if t < 0 || t >= tabCount || t == a.tab {
		return
	}
	if a.tab == tabDashboard {
		a.chart.PointerLeave()
	}
	a.tab = t
	a.status = ""
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	rows := max(3, height-8)
	for _, t := range []*table.Model{&a.accounts, &a.transactions, &a.budgets} {
		t.SetHeight(rows)
	}

	s := a.cfg.Chart.Surface()
	if width > 0 && width-2 < s.Width {
		s.Width = width - 2
	}
	if s.Width > 2*s.Padding+1 {
		a.chart.SetSurface(s)
	}
}

// refresh re-reads the store. The projection is rebuilt only when the
// store changed since the last build.
func (a *App) refresh() {
	a.snap = a.store.Snapshot()
	a.budgetLines = a.store.BudgetStatus(a.now())
	a.fillTables()
	if a.computed && a.store.Version() == a.seenVersion {
		return
	}
	a.seenVersion = a.store.Version()
	a.computed = true
	if err := a.recompute(); err != nil {
		a.log.Warn("projection rejected", zap.Error(err))
		a.status = "error: " + err.Error()
	}
}

func (a *App) projectionParams() projection.Params {
	invested := a.store.InvestedBalanceCents(a.cfg.Projection.InvestedAccountTypes)
	return projection.Params{
		StartValue:           a.money.ToMajor(invested),
		PeriodicContribution: a.cfg.Projection.AnnualContribution,
		HorizonPeriods:       a.cfg.Projection.HorizonYears,
	}
}

func (a *App) recompute() error {
	params := a.projectionParams()
	set, err := projection.BuildSeries(params, a.cfg.Projection.ProjectionScenarios(), a.now().Year())
	if err != nil {
		return err
	}
	if err := a.chart.SetSeries(set); err != nil {
		return err
	}
	a.log.Debug("projection rebuilt", zap.Float64("start_value", params.StartValue), zap.Int("series", len(set)))
	return nil
}

// mutate runs a store command and reports the outcome on the status line.
func (a *App) mutate(done string, fn func() error) tea.Cmd {
	if err := fn(); err != nil {
		a.log.Warn("command failed", zap.String("command", done), zap.Error(err))
		return func() tea.Msg { return errMsg{err} }
	}
	a.refresh()
	return func() tea.Msg { return statusMsg(done) }
}

func (a *App) View() string {
	var body string
	switch a.tab {
	case tabAccounts:
		body = a.renderAccounts()
	case tabTransactions:
		body = a.renderTransactions()
	case tabBudgets:
		body = a.renderBudgets()
	default:
		body = a.renderDashboard()
	}
	view := a.renderHeader() + "\n\n" + body + "\n\n" + a.renderStatus() + "\n" + a.renderFooter()
	if a.modal != modalNone {
		view = a.composeModal(view)
	}
	return a.zones.Scan(view)
}

func (a *App) selectedAccount() (ledger.Account, bool) {
	i := a.accounts.Cursor()
	if i < 0 || i >= len(a.snap.Accounts) {
		return ledger.Account{}, false
	}
	return a.snap.Accounts[i], true
}

func (a *App) selectedTransaction() (ledger.Transaction, bool) {
	i := a.transactions.Cursor()
	if i < 0 || i >= len(a.snap.Transactions) {
		return ledger.Transaction{}, false
	}
	return a.snap.Transactions[i], true
}

func (a *App) selectedBudget() (ledger.BudgetLine, bool) {
	i := a.budgets.Cursor()
	if i < 0 || i >= len(a.budgetLines) {
		return ledger.BudgetLine{}, false
	}
	return a.budgetLines[i], true
}

func (a *App) accountByName(name string) (ledger.Account, error) {
	for _, acc := range a.snap.Accounts {
		if strings.EqualFold(acc.Name, strings.TrimSpace(name)) {
			return acc, nil
		}
	}
	return ledger.Account{}, fmt.Errorf("account %q: %w", name, ledger.ErrUnknownAccount)
}
