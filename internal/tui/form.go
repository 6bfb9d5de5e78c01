package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	key         string
	label       string
	value       string
	placeholder string
}

// form is a stack of text inputs with one focused at a time.
type form struct {
	title  string
	fields []formField
	inputs []textinput.Model
	focus  int
	hint   string
}

func newForm(title string, fields []formField) *form {
	inputs := make([]textinput.Model, 0, len(fields))
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = f.label + ": " + strings.Repeat(" ", width-len(f.label))
		inp.Placeholder = f.placeholder
		inp.SetValue(f.value)
		inp.Width = 28
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &form{title: title, fields: fields, inputs: inputs}
}

func (f *form) value(key string) string {
	for i, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(f.inputs[i].Value())
		}
	}
	return ""
}

func (f *form) setValue(key, v string) {
	for i, fl := range f.fields {
		if fl.key == key {
			f.inputs[i].SetValue(v)
			f.inputs[i].CursorEnd()
		}
	}
}

func (f *form) focusedKey() string {
	return f.fields[f.focus].key
}

func (f *form) move(dir int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + dir + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	lines := []string{titleStyle.Render(f.title), ""}
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	if f.hint != "" {
		lines = append(lines, "", hintStyle.Render(f.hint))
	}
	return strings.Join(lines, "\n")
}
