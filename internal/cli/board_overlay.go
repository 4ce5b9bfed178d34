package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overlayResult is sent when an overlay completes.
type overlayResult struct {
	action string // "cancel" or the action the overlay was opened for
}

func overlayResultMsg(action string) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(50)
	overlayTitleStyle  = lipgloss.NewStyle().Bold(true)
	overlayActiveStyle = lipgloss.NewStyle().Reverse(true)
	overlayMutedStyle  = lipgloss.NewStyle().Faint(true)
)

// --- Form Overlay ---
// Text inputs followed by a confirm button. Used for the random pick,
// group, export and save dialogs.

type formField struct {
	label string
	value string
}

type formOverlay struct {
	title  string
	action string
	submit string
	labels []string
	inputs []textinput.Model
	field  int // len(inputs) is the confirm button
	err    string
}

func newFormOverlay(title, action, submit string, fields ...formField) *formOverlay {
	o := &formOverlay{
		title:  title,
		action: action,
		submit: submit,
	}
	for _, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 30
		ti.Cursor.SetMode(cursor.CursorStatic)
		ti.SetValue(f.value)
		o.labels = append(o.labels, f.label)
		o.inputs = append(o.inputs, ti)
	}
	o.focus()
	return o
}

func (o *formOverlay) Init() tea.Cmd { return nil }

// focus moves keyboard focus to the current field.
func (o *formOverlay) focus() {
	for i := range o.inputs {
		if i == o.field {
			o.inputs[i].Focus()
		} else {
			o.inputs[i].Blur()
		}
	}
}

func (o *formOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			return o, overlayResultMsg("cancel")
		case tea.KeyTab, tea.KeyDown:
			if o.field < len(o.inputs) {
				o.field++
				o.focus()
			}
			return o, nil
		case tea.KeyShiftTab, tea.KeyUp:
			if o.field > 0 {
				o.field--
				o.focus()
			}
			return o, nil
		case tea.KeyEnter:
			if o.field == len(o.inputs) {
				o.err = ""
				return o, overlayResultMsg(o.action)
			}
			o.field++
			o.focus()
			return o, nil
		}
	}

	if o.field >= len(o.inputs) {
		return o, nil
	}
	var cmd tea.Cmd
	o.inputs[o.field], cmd = o.inputs[o.field].Update(msg)
	return o, cmd
}

// value returns the trimmed value of the field with the given label.
func (o *formOverlay) value(label string) string {
	for i, l := range o.labels {
		if l == label {
			return strings.TrimSpace(o.inputs[i].Value())
		}
	}
	return ""
}

func (o *formOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")

	for i, label := range o.labels {
		prefix := "  "
		if o.field == i {
			prefix = overlayActiveStyle.Render(">") + " "
		}
		fmt.Fprintf(&b, "%s%s: %s\n", prefix, label, o.inputs[i].View())
	}

	b.WriteString("\n")
	button := "[" + o.submit + "]"
	if o.field == len(o.inputs) {
		b.WriteString(overlayActiveStyle.Render("> " + button))
	} else {
		b.WriteString("  " + button)
	}
	b.WriteString("\n")

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(Error(o.err))
	}

	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("tab/↑/↓ navigate  |  enter confirm  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

// --- Confirm Overlay ---

type confirmOverlay struct {
	title   string
	message string
	action  string
	cursor  int // 0 = yes, 1 = no
}

func newConfirmOverlay(title, message, action string) *confirmOverlay {
	return &confirmOverlay{title: title, message: message, action: action, cursor: 1} // default to "no"
}

func (o *confirmOverlay) Init() tea.Cmd { return nil }

func (o *confirmOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "n":
			return o, overlayResultMsg("cancel")
		case "left", "h", "right", "l", "tab":
			o.cursor = 1 - o.cursor
		case "enter":
			if o.cursor == 0 {
				return o, overlayResultMsg(o.action)
			}
			return o, overlayResultMsg("cancel")
		case "y":
			return o, overlayResultMsg(o.action)
		}
	}
	return o, nil
}

func (o *confirmOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString("  " + o.message)
	b.WriteString("\n\n")

	yes := "  [Yes]"
	no := "  [No]"
	if o.cursor == 0 {
		yes = overlayActiveStyle.Render("> [Yes]")
	}
	if o.cursor == 1 {
		no = overlayActiveStyle.Render("> [No]")
	}
	b.WriteString(yes + "    " + no)
	b.WriteString("\n\n")
	b.WriteString(overlayMutedStyle.Render("←/→ select  |  enter confirm  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}
