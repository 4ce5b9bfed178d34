package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/Flyrell/daymark/internal/export"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/Flyrell/daymark/internal/stringutil"
	tea "github.com/charmbracelet/bubbletea"
)

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If overlay is active, delegate to it
	if m.overlay != nil {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			m = m.moveCursor(1)
		case "left", "h":
			m = m.moveCursor(-1)
		case "down", "j":
			m = m.moveCursor(7)
		case "up", "k":
			m = m.moveCursor(-7)
		case " ", "enter":
			return m.toggle()
		case "n":
			return m.switchMonth(1)
		case "p":
			return m.switchMonth(-1)
		case "c":
			m.board.ClearSelected()
			m.footerMsg = "Selection cleared"
		case "]":
			if n := len(m.board.Groups()); n > 0 {
				m.groupIdx = (m.groupIdx + 1) % n
			}
		case "[":
			if n := len(m.board.Groups()); n > 0 {
				m.groupIdx = (m.groupIdx - 1 + n) % n
			}
		case "a":
			return m.assign()
		case "y":
			return m.copyResult()
		case "r":
			m.overlay = newFormOverlay("Random Pick", "pick", "Pick",
				formField{label: "Days", value: strconv.Itoa(m.cfg.PickCount)})
		case "g":
			return m.startGroup()
		case "d":
			return m.startDelete()
		case "e":
			m.overlay = newFormOverlay("Export", "export", "Export",
				formField{label: "Format", value: string(export.FormatCSV)},
				formField{label: "Path", value: ""})
		case "s":
			m.overlay = newFormOverlay("Save Session", "save", "Save",
				formField{label: "Name", value: m.sessionName})
		}
	}
	return m, nil
}

// updateOverlay delegates input to the active overlay and handles overlay results.
func (m boardModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(overlayResult); ok {
		return m.handleOverlayResult(result)
	}

	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

// handleOverlayResult processes the result when an overlay completes.
func (m boardModel) handleOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	switch result.action {
	case "pick":
		return m.handlePick()
	case "group":
		return m.handleGroup()
	case "delete":
		return m.handleDelete()
	case "export":
		return m.handleExport()
	case "save":
		return m.handleSave()
	}
	return m.closeOverlay(""), nil
}

func (m boardModel) toggle() (tea.Model, tea.Cmd) {
	on, err := m.board.Toggle(m.cursorDay)
	if err != nil {
		m.footerMsg = err.Error()
		return m, nil
	}
	state := "deselected"
	if on {
		state = "selected"
	}
	m.footerMsg = fmt.Sprintf("%s %s", calendar.FormatDay(m.board.Year(), m.board.Month(), m.cursorDay), state)
	return m, nil
}

func (m boardModel) switchMonth(delta int) (tea.Model, tea.Cmd) {
	year, month := calendar.Shift(m.board.Year(), m.board.Month(), delta)
	if err := m.board.SwitchMonth(year, month); err != nil {
		m.footerMsg = err.Error()
		return m, nil
	}
	if days := m.board.DaysInMonth(); m.cursorDay > days {
		m.cursorDay = days
	}
	m.footerMsg = ""
	return m, nil
}

func (m boardModel) assign() (tea.Model, tea.Cmd) {
	name := m.chosenGroup()
	if name == "" {
		m.footerMsg = "No group chosen (press g to add one)"
		return m, nil
	}
	n, err := m.board.Assign(name)
	if err != nil {
		m.footerMsg = "Cannot assign: " + err.Error()
		return m, nil
	}
	m.footerMsg = fmt.Sprintf("Assigned '%s' to %d days", name, n)
	return m, nil
}

func (m boardModel) copyResult() (tea.Model, tea.Cmd) {
	data := export.FromBoard(m.board, m.cfg.Title)
	if len(data.Rows) == 0 {
		m.footerMsg = "Nothing to copy: " + export.ErrEmpty.Error()
		return m, nil
	}
	if err := copyToClipboard(data); err != nil {
		m.footerMsg = "Error copying: " + err.Error()
		return m, nil
	}
	m.footerMsg = fmt.Sprintf("Copied %d rows to clipboard", len(data.Rows))
	return m, nil
}

func (m boardModel) startGroup() (tea.Model, tea.Cmd) {
	var name, options string
	if g, ok := m.board.Group(m.chosenGroup()); ok {
		name, options = g.Name, strings.Join(g.Options, ", ")
	}
	m.overlay = newFormOverlay("Group", "group", "Save",
		formField{label: "Name", value: name},
		formField{label: "Options", value: options})
	return m, nil
}

func (m boardModel) startDelete() (tea.Model, tea.Cmd) {
	name := m.chosenGroup()
	if name == "" {
		m.footerMsg = "No group to delete"
		return m, nil
	}
	m.overlay = newConfirmOverlay("Delete Group",
		fmt.Sprintf("Delete group '%s' and its assignments?", name), "delete")
	return m, nil
}

func (m boardModel) form() (*formOverlay, bool) {
	f, ok := m.overlay.(*formOverlay)
	return f, ok
}

func (m boardModel) handlePick() (tea.Model, tea.Cmd) {
	form, ok := m.form()
	if !ok {
		return m.closeOverlay(""), nil
	}
	k, err := strconv.Atoi(form.value("Days"))
	if err != nil || k < 1 {
		form.err = "Enter a number of days (at least 1)"
		return m, nil
	}
	days, err := m.board.PickRandom(k, nil)
	if err != nil {
		form.err = err.Error()
		return m, nil
	}
	return m.closeOverlay(fmt.Sprintf("Picked %d random days", len(days))), nil
}

func (m boardModel) handleGroup() (tea.Model, tea.Cmd) {
	form, ok := m.form()
	if !ok {
		return m.closeOverlay(""), nil
	}
	name := form.value("Name")
	if err := m.board.PutGroup(name, stringutil.SplitList(form.value("Options"))); err != nil {
		form.err = err.Error()
		return m, nil
	}
	for i, g := range m.board.Groups() {
		if g.Name == name {
			m.groupIdx = i
		}
	}
	return m.closeOverlay(fmt.Sprintf("Group '%s' saved", name)), nil
}

func (m boardModel) handleDelete() (tea.Model, tea.Cmd) {
	name := m.chosenGroup()
	if err := m.board.DeleteGroup(name); err != nil {
		return m.closeOverlay(err.Error()), nil
	}
	m = m.clampGroup()
	return m.closeOverlay(fmt.Sprintf("Group '%s' deleted", name)), nil
}

func (m boardModel) handleExport() (tea.Model, tea.Cmd) {
	form, ok := m.form()
	if !ok {
		return m.closeOverlay(""), nil
	}
	format, err := export.ParseFormat(form.value("Format"))
	if err != nil {
		form.err = err.Error()
		return m, nil
	}
	path := form.value("Path")
	if path == "-" {
		form.err = "Choose a file path"
		return m, nil
	}
	written, err := exportToFile(export.FromBoard(m.board, m.cfg.Title), format, path, m.sessionName, m.cfg.CSVBOM)
	if err != nil {
		form.err = err.Error()
		return m, nil
	}
	return m.closeOverlay("Exported to " + written), nil
}

func (m boardModel) handleSave() (tea.Model, tea.Cmd) {
	form, ok := m.form()
	if !ok {
		return m.closeOverlay(""), nil
	}
	name := form.value("Name")
	if name == "" {
		form.err = session.ErrEmptyName.Error()
		return m, nil
	}

	var (
		saved   *session.Session
		changed bool
	)
	err := withStore(m.dbPath, func(ctx context.Context, store session.Store) error {
		var err error
		saved, changed, err = store.Save(ctx, name, m.board.Snapshot())
		return err
	})
	if err != nil {
		form.err = "Error saving: " + err.Error()
		return m, nil
	}

	m.sessionName = saved.Name
	if !changed {
		return m.closeOverlay(fmt.Sprintf("Session '%s' unchanged", saved.Name)), nil
	}
	return m.closeOverlay(fmt.Sprintf("Session '%s' saved", saved.Name)), nil
}
