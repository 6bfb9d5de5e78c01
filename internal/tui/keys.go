package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Jump     key.Binding
	Navigate key.Binding
	Left     key.Binding
	Right    key.Binding
	Clear    key.Binding
	Add      key.Binding
	AddTx    key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Field    key.Binding
	Suggest  key.Binding
	Confirm  key.Binding
	Deny     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
		Navigate: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("j/k", "navigate")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "inspect year")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		AddTx:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "new transaction")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit limit")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Field:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Suggest:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "use suggestion")),
		Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Deny:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
	}
}

// bindingsFor returns the footer help for the active tab or modal.
func (k keyMap) bindingsFor(t tab, modal modalKind) []key.Binding {
	switch modal {
	case modalNone:
	case modalConfirm:
		return []key.Binding{k.Confirm, k.Deny}
	case modalAddTransaction:
		return []key.Binding{k.Submit, k.Field, k.Suggest, k.Cancel}
	default:
		return []key.Binding{k.Submit, k.Field, k.Cancel}
	}
	switch t {
	case tabDashboard:
		return []key.Binding{k.Left, k.Clear, k.AddTx, k.NextTab, k.Jump, k.Quit}
	case tabAccounts:
		return []key.Binding{k.Navigate, k.Add, k.AddTx, k.Delete, k.NextTab, k.Quit}
	case tabTransactions:
		reverse := k.Delete
		reverse.SetHelp("x", "reverse")
		return []key.Binding{k.Navigate, k.Add, reverse, k.NextTab, k.Quit}
	case tabBudgets:
		return []key.Binding{k.Navigate, k.Add, k.Edit, k.Delete, k.NextTab, k.Quit}
	}
	return []key.Binding{k.NextTab, k.Quit}
}
