package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true)
	footerStyle      = lipgloss.NewStyle().Faint(true)
	cursorStyle      = lipgloss.NewStyle().Reverse(true)
	weekendStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	selectedDayStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#FFF1A8")).
				Foreground(lipgloss.Color("#000000"))
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const boardHelp = "←/→/↑/↓ move  |  space toggle  |  n/p month  |  r random  |  c clear  |  " +
	"g group  |  [/] choose  |  d delete  |  a assign  |  e export  |  y copy  |  s save  |  q quit"

// boardView carries the presentation state that is not part of the board.
type boardView struct {
	title     string // session name, if any
	cursorDay int    // 0 hides the cursor
	group     string // chosen group
	cellWidth int
	height    int // terminal height; 0 renders every result line
	footer    string
	help      bool
}

func (m boardModel) View() string {
	if m.overlay != nil {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, m.overlay.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	return renderBoard(m.board, boardView{
		title:     m.sessionName,
		cursorDay: m.cursorDay,
		group:     m.chosenGroup(),
		cellWidth: m.cellWidth(),
		height:    m.termHeight,
		footer:    m.footerMsg,
		help:      true,
	})
}

// renderBoard draws the month grid, the group bar, the result list and the footer.
func renderBoard(b *board.Board, v boardView) string {
	var s strings.Builder
	w := v.cellWidth

	title := fmt.Sprintf("--- %s %d ---", b.Month(), b.Year())
	if v.title != "" {
		title += "  " + v.title
	}
	s.WriteString(headerStyle.Render(title))
	s.WriteString("\n\n")

	for i, label := range weekdayLabels {
		if i > 0 {
			s.WriteString(" ")
		}
		if i >= 5 {
			s.WriteString(weekendStyle.Bold(true).Render(padCenter(label, w)))
		} else {
			s.WriteString(headerStyle.Render(padCenter(label, w)))
		}
	}
	s.WriteString("\n")
	s.WriteString(strings.Repeat("-", 7*w+6))
	s.WriteString("\n")

	for _, week := range calendar.Grid(b.Year(), b.Month()) {
		renderWeek(&s, b, week, v)
	}

	s.WriteString("\n")
	s.WriteString(renderGroupBar(b.Groups(), v.group))
	s.WriteString("\n")
	fmt.Fprintf(&s, "Selected: %d days\n", len(b.SelectedDays()))
	s.WriteString("\n")

	lines := b.ResultLines()
	if len(lines) == 0 {
		s.WriteString(footerStyle.Render("No assignments yet"))
		s.WriteString("\n")
	} else {
		limit := len(lines)
		if v.height > 0 {
			// Keep room for the footer below the list.
			limit = v.height - strings.Count(s.String(), "\n") - 4
			if limit < 2 {
				limit = 2
			}
		}
		if limit < len(lines) {
			hidden := len(lines) - limit + 1
			lines = append(lines[:limit-1:limit-1], fmt.Sprintf("... %d more", hidden))
		}
		for _, line := range lines {
			s.WriteString(line)
			s.WriteString("\n")
		}
	}

	if v.help || v.footer != "" {
		s.WriteString("\n")
		footer := ""
		if v.help {
			footer = fmt.Sprintf("%s %d  |  %s", b.Month(), b.Year(), boardHelp)
		}
		if v.footer != "" {
			if footer == "" {
				footer = v.footer
			} else {
				footer = v.footer + "  |  " + footer
			}
		}
		s.WriteString(footerStyle.Render(footer))
		s.WriteString("\n")
	}

	return s.String()
}

// renderWeek draws one calendar row: the day numbers, then one line per
// assignment of the busiest day in the week.
func renderWeek(s *strings.Builder, b *board.Board, week [7]int, v boardView) {
	var cells [7][]string
	lines := 1
	for i, day := range week {
		if day == 0 {
			continue
		}
		assigned := b.AssignmentsFor(day)
		names := make([]string, 0, len(assigned))
		for name := range assigned {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cells[i] = append(cells[i], name+":"+assigned[name])
		}
		if n := 1 + len(cells[i]); n > lines {
			lines = n
		}
	}

	for line := 0; line < lines; line++ {
		for i, day := range week {
			if i > 0 {
				s.WriteString(" ")
			}
			if day == 0 {
				s.WriteString(strings.Repeat(" ", v.cellWidth))
				continue
			}

			text := ""
			if line == 0 {
				text = strconv.Itoa(day)
				if b.IsSelected(day) {
					text += "*"
				}
			} else if line-1 < len(cells[i]) {
				text = cells[i][line-1]
			}
			cell := padRight(" "+text, v.cellWidth)

			switch {
			case day == v.cursorDay:
				s.WriteString(cursorStyle.Render(cell))
			case b.IsSelected(day):
				s.WriteString(selectedDayStyle.Render(cell))
			case line == 0 && i >= 5:
				s.WriteString(weekendStyle.Render(cell))
			default:
				s.WriteString(cell)
			}
		}
		s.WriteString("\n")
	}
}

func renderGroupBar(groups []board.Group, chosen string) string {
	if len(groups) == 0 {
		return "Groups: none (press g to add one)"
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		label := fmt.Sprintf("%s(%d)", g.Name, len(g.Options))
		if g.Name == chosen {
			parts[i] = cursorStyle.Render("[" + label + "]")
		} else {
			parts[i] = " " + label + " "
		}
	}
	return "Groups: " + strings.Join(parts, " ")
}

// truncate cuts s to at most width display cells.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

func padRight(s string, width int) string {
	s = truncate(s, width)
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func padCenter(s string, width int) string {
	s = truncate(s, width)
	total := width - lipgloss.Width(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
