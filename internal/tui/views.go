package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/moneydash/internal/chart"
	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/widgets"
)

const appName = "moneydash"

func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == a.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render(appName) + tabSepStyle.Render("  ") + strings.Join(tabs, tabSepStyle.Render("│"))
	date := headerDateStyle.Render(format.Today(a.now(), a.cfg.UI.DateFormat))
	if a.width == 0 {
		return headerBarStyle.Render(left + tabSepStyle.Render("  ") + date)
	}
	inner := a.width - 4
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(date)
	if gap < 2 {
		return headerBarStyle.Width(a.width).Render(left)
	}
	return headerBarStyle.Width(a.width).Render(left + tabSepStyle.Render(strings.Repeat(" ", gap)) + date)
}

func (a *App) renderStatus() string {
	text := a.status
	if strings.HasPrefix(text, "error: ") {
		text = errorTextStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width == 0 {
		return statusBarStyle.Render(flat)
	}
	return statusBarStyle.Width(a.width).Render(flat)
}

func (a *App) renderFooter() string {
	content := a.help.ShortHelpView(a.keys.bindingsFor(a.tab, a.modal))
	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) renderDashboard() string {
	month := a.store.MonthSummary(a.now())
	cardWidth := 22
	if a.width > 0 {
		cardWidth = max(16, (a.width-3)/4)
	}
	cards := widgets.Row(
		widgets.StatCard{Label: "Net worth", Value: a.money.Minor(a.store.NetWorthCents())}.Render(cardWidth),
		widgets.StatCard{Label: "Invested", Value: a.money.Minor(a.store.InvestedBalanceCents(a.cfg.Projection.InvestedAccountTypes)), Color: widgets.ColorAccent}.Render(cardWidth),
		widgets.StatCard{Label: "Income this month", Value: a.money.Minor(month.IncomeCents), Color: widgets.ColorSuccess}.Render(cardWidth),
		widgets.StatCard{Label: "Spent this month", Value: a.money.Minor(month.ExpenseCents), Color: widgets.ColorError}.Render(cardWidth),
	)

	surface := a.chart.Surface()
	legend := chart.RenderLegend(chart.LegendRows(a.chart.Series(), a.hover), a.money, a.hover.Active())
	proj := widgets.Panel{
		Title:   fmt.Sprintf("Projection, %s per year", a.money.Whole(a.cfg.Projection.AnnualContribution)),
		Content: a.chart.View() + "\n" + legend,
		Active:  a.hover.Active(),
	}.Render(surface.Width+2, surface.Height+lipgloss.Height(legend)+3)

	return lipgloss.JoinVertical(lipgloss.Left, cards, proj)
}

func (a *App) renderAccounts() string {
	return titleStyle.Render("Accounts") + "\n" + a.accounts.View()
}

func (a *App) renderTransactions() string {
	return titleStyle.Render("Transactions") + "\n" + a.transactions.View()
}

func (a *App) renderBudgets() string {
	title := titleStyle.Render(fmt.Sprintf("Budgets for %s", a.now().Format("January 2006")))
	return title + "\n" + a.budgets.View()
}
