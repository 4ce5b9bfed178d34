package cli

import (
	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultCellWidth = 12
	minCellWidth     = 4
	maxCellWidth     = 20
)

type boardModel struct {
	board       *board.Board
	cfg         *config.Config
	dbPath      string
	sessionName string // name the board was opened from or last saved as
	cursorDay   int    // 1-based day under the cursor
	groupIdx    int    // chosen group (index into board.Groups())
	termWidth   int
	termHeight  int
	overlay     tea.Model // active overlay (nil in normal mode)
	footerMsg   string    // temporary message shown in footer
}

func newBoardModel(b *board.Board, cfg *config.Config, dbPath, sessionName string) boardModel {
	return boardModel{
		board:       b,
		cfg:         cfg,
		dbPath:      dbPath,
		sessionName: sessionName,
		cursorDay:   1,
		termWidth:   100,
		termHeight:  40,
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

// cellWidth fits seven columns and their separators into the terminal.
func (m boardModel) cellWidth() int {
	w := (m.termWidth - 6) / 7
	if w < minCellWidth {
		return minCellWidth
	}
	if w > maxCellWidth {
		return maxCellWidth
	}
	return w
}

// chosenGroup returns the name of the chosen group, or "" when there are none.
func (m boardModel) chosenGroup() string {
	groups := m.board.Groups()
	if m.groupIdx < 0 || m.groupIdx >= len(groups) {
		return ""
	}
	return groups[m.groupIdx].Name
}

// clampGroup keeps the group choice in range after groups change.
func (m boardModel) clampGroup() boardModel {
	n := len(m.board.Groups())
	if m.groupIdx >= n {
		m.groupIdx = n - 1
	}
	if m.groupIdx < 0 {
		m.groupIdx = 0
	}
	return m
}

// moveCursor shifts the cursor by delta days, staying inside the month.
func (m boardModel) moveCursor(delta int) boardModel {
	day := m.cursorDay + delta
	if day >= 1 && day <= m.board.DaysInMonth() {
		m.cursorDay = day
	}
	return m
}

// closeOverlay returns to normal mode with the given footer message.
func (m boardModel) closeOverlay(msg string) boardModel {
	m.overlay = nil
	m.footerMsg = msg
	return m
}
