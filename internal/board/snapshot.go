package board

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Flyrell/daymark/internal/hashutil"
)

// Snapshot is the serializable form of a board.
type Snapshot struct {
	Year        int                       `json:"year"`
	Month       int                       `json:"month"`
	Groups      []Group                   `json:"groups"`
	Selected    []int                     `json:"selected"`
	Assignments map[int]map[string]string `json:"assignments"`
}

// Snapshot captures the current board state.
func (b *Board) Snapshot() Snapshot {
	assignments := make(map[int]map[string]string, len(b.assignments))
	for d := range b.assignments {
		assignments[d] = b.AssignmentsFor(d)
	}
	return Snapshot{
		Year:        b.year,
		Month:       int(b.month),
		Groups:      b.Groups(),
		Selected:    b.SelectedDays(),
		Assignments: assignments,
	}
}

// Restore builds a board from a snapshot. Days must fall inside the month and
// every assigned group must be defined.
func Restore(s Snapshot, opts ...Option) (*Board, error) {
	b, err := New(s.Year, time.Month(s.Month), s.Groups, opts...)
	if err != nil {
		return nil, err
	}
	for _, d := range s.Selected {
		if !b.validDay(d) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDay, d)
		}
		b.selected[d] = true
	}
	for d, inner := range s.Assignments {
		if !b.validDay(d) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDay, d)
		}
		for g, c := range inner {
			if b.groupIndex(g) < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
			}
			if b.assignments[d] == nil {
				b.assignments[d] = make(map[string]string)
			}
			b.assignments[d][g] = c
		}
	}
	return b, nil
}

// Digest is a short content fingerprint of the snapshot. Equal boards have
// equal digests.
func (s Snapshot) Digest() string {
	// encoding/json sorts map keys, so the encoding is canonical.
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return hashutil.Short(data)
}
