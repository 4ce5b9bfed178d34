package board

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstSource always picks index 0, making sampling and choice predictable.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

// lastSource always picks the last index.
type lastSource struct{}

func (lastSource) IntN(n int) int { return n - 1 }

func seeded() Option {
	return WithSource(rand.New(rand.NewPCG(42, 7)))
}

func newFeb(t *testing.T, opts ...Option) *Board {
	t.Helper()
	b, err := New(2026, time.February, []Group{
		{Name: "flag", Options: []string{"yes", "no"}},
		{Name: "color", Options: []string{"red", "green", "blue"}},
	}, opts...)
	require.NoError(t, err)
	return b
}

func TestNewRejectsInvalidPeriod(t *testing.T) {
	_, err := New(2026, 13, nil)
	assert.Error(t, err)

	_, err = New(0, time.January, nil)
	assert.Error(t, err)
}

func TestNewRejectsInvalidGroup(t *testing.T) {
	_, err := New(2026, time.January, []Group{{Name: "empty"}})
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestToggleTwiceRestoresSelection(t *testing.T) {
	b := newFeb(t)

	on, err := b.Toggle(5)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, b.IsSelected(5))

	on, err = b.Toggle(5)
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, b.IsSelected(5))
	assert.Empty(t, b.SelectedDays())
}

func TestToggleOutOfRange(t *testing.T) {
	b := newFeb(t)

	_, err := b.Toggle(0)
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = b.Toggle(29)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestSelectedDaysSorted(t *testing.T) {
	b := newFeb(t)
	for _, d := range []int{20, 3, 11} {
		_, err := b.Toggle(d)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{3, 11, 20}, b.SelectedDays())
}

func TestPickRandomCount(t *testing.T) {
	for _, k := range []int{1, 5, 28, 29, 100} {
		b := newFeb(t, seeded())

		days, err := b.PickRandom(k, nil)
		require.NoError(t, err)

		expected := min(k, 28)
		assert.Len(t, days, expected, "k=%d", k)
		assert.Len(t, b.SelectedDays(), expected, "k=%d", k)

		seen := map[int]bool{}
		for _, d := range days {
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 28)
			assert.False(t, seen[d], "duplicate day %d", d)
			seen[d] = true
		}
	}
}

func TestPickRandomReplacesSelection(t *testing.T) {
	b := newFeb(t, WithSource(firstSource{}))
	_, err := b.Toggle(28)
	require.NoError(t, err)

	days, err := b.PickRandom(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, days)
	assert.False(t, b.IsSelected(28))
}

func TestPickRandomCandidates(t *testing.T) {
	b := newFeb(t, seeded())

	days, err := b.PickRandom(10, []int{2, 9, 16, 23, 23, 40})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 9, 16, 23}, days)
}

func TestPickRandomErrors(t *testing.T) {
	b := newFeb(t)

	_, err := b.PickRandom(0, nil)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = b.PickRandom(3, []int{})
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = b.PickRandom(3, []int{31})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestPutGroup(t *testing.T) {
	b := newFeb(t)

	t.Run("trims and drops blanks", func(t *testing.T) {
		require.NoError(t, b.PutGroup("  size ", []string{" s", "", "m ", "  "}))
		g, ok := b.Group("size")
		require.True(t, ok)
		assert.Equal(t, []string{"s", "m"}, g.Options)
	})

	t.Run("update keeps position", func(t *testing.T) {
		require.NoError(t, b.PutGroup("flag", []string{"maybe"}))
		groups := b.Groups()
		assert.Equal(t, "flag", groups[0].Name)
		assert.Equal(t, []string{"maybe"}, groups[0].Options)
		assert.Len(t, groups, 3)
	})

	t.Run("empty name", func(t *testing.T) {
		assert.ErrorIs(t, b.PutGroup("   ", []string{"a"}), ErrEmptyGroupName)
	})

	t.Run("no options", func(t *testing.T) {
		assert.ErrorIs(t, b.PutGroup("x", []string{" ", ""}), ErrNoOptions)
	})
}

func TestGroupsReturnsCopy(t *testing.T) {
	b := newFeb(t)
	groups := b.Groups()
	groups[0].Options[0] = "mutated"

	g, _ := b.Group("flag")
	assert.Equal(t, "yes", g.Options[0])
}

func TestAssign(t *testing.T) {
	b := newFeb(t, WithSource(lastSource{}))
	for _, d := range []int{4, 1} {
		_, err := b.Toggle(d)
		require.NoError(t, err)
	}

	n, err := b.Assign("color")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, map[string]string{"color": "blue"}, b.AssignmentsFor(1))
	assert.Equal(t, map[string]string{"color": "blue"}, b.AssignmentsFor(4))
	assert.Nil(t, b.AssignmentsFor(2))
}

func TestAssignOnePerDayAndGroup(t *testing.T) {
	b := newFeb(t, seeded())
	_, err := b.Toggle(7)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := b.Assign("flag")
		require.NoError(t, err)
	}
	assert.Len(t, b.AssignmentsFor(7), 1)
	assert.Equal(t, 1, b.Summary().Rows)
}

func TestAssignChoosesFromOptions(t *testing.T) {
	b := newFeb(t, seeded())
	_, err := b.PickRandom(28, nil)
	require.NoError(t, err)

	_, err = b.Assign("color")
	require.NoError(t, err)
	for _, r := range b.Rows() {
		assert.Contains(t, []string{"red", "green", "blue"}, r.Content)
	}
}

func TestAssignErrors(t *testing.T) {
	b := newFeb(t)

	_, err := b.Assign("flag")
	assert.ErrorIs(t, err, ErrNoSelection)

	_, err = b.Toggle(1)
	require.NoError(t, err)
	_, err = b.Assign("missing")
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestDeleteGroupPrunesAssignments(t *testing.T) {
	b := newFeb(t, seeded())
	for _, d := range []int{1, 2, 3} {
		_, err := b.Toggle(d)
		require.NoError(t, err)
	}
	_, err := b.Assign("flag")
	require.NoError(t, err)
	_, err = b.Toggle(3)
	require.NoError(t, err)
	_, err = b.Assign("color")
	require.NoError(t, err)

	require.NoError(t, b.DeleteGroup("flag"))

	_, ok := b.Group("flag")
	assert.False(t, ok)
	for _, r := range b.Rows() {
		assert.NotEqual(t, "flag", r.Group)
	}
	// Day 3 only had "flag", so its entry is gone entirely.
	assert.Nil(t, b.AssignmentsFor(3))
	assert.Equal(t, 2, b.AssignedDays())
}

func TestDeleteUnknownGroup(t *testing.T) {
	b := newFeb(t)
	assert.ErrorIs(t, b.DeleteGroup("missing"), ErrUnknownGroup)
}

func TestSwitchMonthClearsState(t *testing.T) {
	b := newFeb(t, seeded())
	_, err := b.PickRandom(5, nil)
	require.NoError(t, err)
	_, err = b.Assign("flag")
	require.NoError(t, err)

	require.NoError(t, b.SwitchMonth(2026, time.March))

	assert.Equal(t, time.March, b.Month())
	assert.Equal(t, 31, b.DaysInMonth())
	assert.Empty(t, b.SelectedDays())
	assert.Empty(t, b.Rows())
	assert.Len(t, b.Groups(), 2)
}

func TestSwitchMonthInvalid(t *testing.T) {
	b := newFeb(t)
	assert.Error(t, b.SwitchMonth(2026, 0))
	assert.Equal(t, time.February, b.Month())
}

func TestClearSelectedDropsAssignments(t *testing.T) {
	b := newFeb(t, seeded())
	_, err := b.PickRandom(5, nil)
	require.NoError(t, err)
	_, err = b.Assign("flag")
	require.NoError(t, err)

	b.ClearSelected()

	assert.Empty(t, b.SelectedDays())
	assert.Equal(t, 0, b.AssignedDays())
}
