// Package board holds the month board: the group definitions, the selected
// days and the random assignments made from them.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/Flyrell/daymark/internal/calendar"
	"go.uber.org/zap"
)

var (
	ErrEmptyGroupName = errors.New("group name is required")
	ErrNoOptions      = errors.New("at least one option is required")
	ErrUnknownGroup   = errors.New("unknown group")
	ErrEmptyGroup     = errors.New("group has no options")
	ErrNoSelection    = errors.New("no days selected")
	ErrInvalidDay     = errors.New("day out of range")
	ErrInvalidCount   = errors.New("pick count must be at least 1")
	ErrNoCandidates   = errors.New("no candidate days in this month")
)

// Group is a named, ordered list of options.
type Group struct {
	Name    string   `json:"name" yaml:"name"`
	Options []string `json:"options" yaml:"options"`
}

// Source is the randomness used for sampling days and choosing options.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Option configures a Board.
type Option func(*Board)

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(b *Board) { b.rnd = src }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) { b.log = logger }
}

// Board is the in-memory state for one month.
type Board struct {
	year        int
	month       time.Month
	groups      []Group
	selected    map[int]bool
	assignments map[int]map[string]string
	rnd         Source
	log         *zap.Logger
}

// New creates a board for the given month seeded with a copy of groups.
func New(year int, month time.Month, groups []Group, opts ...Option) (*Board, error) {
	if err := calendar.Validate(year, month); err != nil {
		return nil, err
	}
	b := &Board{
		year:        year,
		month:       month,
		selected:    make(map[int]bool),
		assignments: make(map[int]map[string]string),
		rnd:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, g := range groups {
		if err := b.PutGroup(g.Name, g.Options); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
	}
	return b, nil
}

// Year returns the board's year.
func (b *Board) Year() int { return b.year }

// Month returns the board's month.
func (b *Board) Month() time.Month { return b.month }

// DaysInMonth returns the number of days of the board's month.
func (b *Board) DaysInMonth() int { return calendar.DaysIn(b.year, b.month) }

// SwitchMonth moves the board to another month. Selection and assignments
// are cleared; groups are kept.
func (b *Board) SwitchMonth(year int, month time.Month) error {
	if err := calendar.Validate(year, month); err != nil {
		return err
	}
	b.year = year
	b.month = month
	b.reset()
	b.log.Debug("switched month", zap.Int("year", year), zap.Int("month", int(month)))
	return nil
}

// ClearSelected drops the selection together with every assignment.
func (b *Board) ClearSelected() {
	b.reset()
	b.log.Debug("cleared selection")
}

func (b *Board) reset() {
	b.selected = make(map[int]bool)
	b.assignments = make(map[int]map[string]string)
}

func (b *Board) validDay(day int) bool {
	return day >= 1 && day <= b.DaysInMonth()
}

// Toggle flips the selection state of a day and reports the new state.
func (b *Board) Toggle(day int) (bool, error) {
	if !b.validDay(day) {
		return false, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if b.selected[day] {
		delete(b.selected, day)
	} else {
		b.selected[day] = true
	}
	b.log.Debug("toggled day", zap.Int("day", day), zap.Bool("selected", b.selected[day]))
	return b.selected[day], nil
}

// IsSelected reports whether the day is selected.
func (b *Board) IsSelected(day int) bool {
	return b.selected[day]
}

// SelectedDays returns the selected days in ascending order.
func (b *Board) SelectedDays() []int {
	days := make([]int, 0, len(b.selected))
	for d := range b.selected {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// PickRandom replaces the selection with min(k, len(candidates)) distinct
// days sampled without replacement. A nil candidates slice means every day
// of the month. Out-of-range and duplicate candidates are ignored.
// A k below 1 is an error; it is not raised to one.
func (b *Board) PickRandom(k int, candidates []int) ([]int, error) {
	if k < 1 {
		return nil, ErrInvalidCount
	}

	var pool []int
	if candidates == nil {
		pool = make([]int, b.DaysInMonth())
		for i := range pool {
			pool[i] = i + 1
		}
	} else {
		seen := make(map[int]bool, len(candidates))
		for _, d := range candidates {
			if b.validDay(d) && !seen[d] {
				seen[d] = true
				pool = append(pool, d)
			}
		}
	}
	if len(pool) == 0 {
		return nil, ErrNoCandidates
	}

	n := min(k, len(pool))
	// Partial Fisher-Yates: the first n slots end up as the sample.
	for i := 0; i < n; i++ {
		j := i + b.rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	b.selected = make(map[int]bool, n)
	for _, d := range pool[:n] {
		b.selected[d] = true
	}
	b.log.Debug("picked random days", zap.Int("requested", k), zap.Int("picked", n))
	return b.SelectedDays(), nil
}

// Groups returns a copy of the groups in insertion order.
func (b *Board) Groups() []Group {
	out := make([]Group, len(b.groups))
	for i, g := range b.groups {
		out[i] = Group{Name: g.Name, Options: append([]string(nil), g.Options...)}
	}
	return out
}

// Group looks up a group by name.
func (b *Board) Group(name string) (Group, bool) {
	if i := b.groupIndex(name); i >= 0 {
		g := b.groups[i]
		return Group{Name: g.Name, Options: append([]string(nil), g.Options...)}, true
	}
	return Group{}, false
}

func (b *Board) groupIndex(name string) int {
	for i, g := range b.groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}

// PutGroup adds a group or replaces the options of an existing one, keeping
// its position. Names and options are trimmed; blank options are dropped.
func (b *Board) PutGroup(name string, options []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyGroupName
	}
	var opts []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		return ErrNoOptions
	}

	if i := b.groupIndex(name); i >= 0 {
		b.groups[i].Options = opts
		b.log.Debug("updated group", zap.String("group", name), zap.Int("options", len(opts)))
		return nil
	}
	b.groups = append(b.groups, Group{Name: name, Options: opts})
	b.log.Debug("added group", zap.String("group", name), zap.Int("options", len(opts)))
	return nil
}

// DeleteGroup removes a group and prunes it from every assignment.
func (b *Board) DeleteGroup(name string) error {
	i := b.groupIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	b.groups = append(b.groups[:i], b.groups[i+1:]...)

	pruned := 0
	for day, inner := range b.assignments {
		if _, ok := inner[name]; ok {
			delete(inner, name)
			pruned++
		}
		if len(inner) == 0 {
			delete(b.assignments, day)
		}
	}
	b.log.Debug("deleted group", zap.String("group", name), zap.Int("pruned", pruned))
	return nil
}

// Assign gives every selected day one random option of the named group,
// replacing any earlier choice for that day and group. It returns the
// number of days assigned.
func (b *Board) Assign(name string) (int, error) {
	if len(b.selected) == 0 {
		return 0, ErrNoSelection
	}
	i := b.groupIndex(name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	options := b.groups[i].Options
	if len(options) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrEmptyGroup, name)
	}

	days := b.SelectedDays()
	for _, d := range days {
		inner := b.assignments[d]
		if inner == nil {
			inner = make(map[string]string)
			b.assignments[d] = inner
		}
		inner[name] = options[b.rnd.IntN(len(options))]
	}
	b.log.Debug("assigned group", zap.String("group", name), zap.Int("days", len(days)))
	return len(days), nil
}

// AssignmentsFor returns a copy of the assignments of a day.
func (b *Board) AssignmentsFor(day int) map[string]string {
	inner := b.assignments[day]
	if len(inner) == 0 {
		return nil
	}
	out := make(map[string]string, len(inner))
	for g, c := range inner {
		out[g] = c
	}
	return out
}

// AssignedDays returns the number of days carrying at least one assignment.
func (b *Board) AssignedDays() int {
	return len(b.assignments)
}
