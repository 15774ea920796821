package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField describes one labelled text input of a form page.
type formField struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

// form is the input block shared by the sign-in, sign-up and reset pages.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		if field.charLimit > 0 {
			in.CharLimit = field.charLimit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = field.label
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// rawValue returns the input untrimmed; passwords keep their spaces.
func (f *form) rawValue(i int) string {
	return f.inputs[i].Value()
}

// handleNavigation moves focus on tab/shift+tab and reports whether msg was consumed.
func (f *form) handleNavigation(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.tab):
		f.inputs[f.focus].Blur()
		f.focus = (f.focus + 1) % len(f.inputs)
		f.inputs[f.focus].Focus()
		return true
	case key.Matches(msg, keys.backtab):
		f.inputs[f.focus].Blur()
		f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
		f.inputs[f.focus].Focus()
		return true
	}
	return false
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// view renders the inputs as a two-column "Поле │ Значение" table.
func (f *form) view(b *strings.Builder) {
	width := len([]rune("Поле"))
	for _, l := range f.labels {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	b.WriteString(padRight("Поле", width))
	b.WriteString(" │ Значение\n")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")
	for i, in := range f.inputs {
		b.WriteString(padRight(f.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
