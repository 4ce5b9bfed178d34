package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsOrderedByDayThenGroup(t *testing.T) {
	b := newFeb(t, WithSource(firstSource{}))
	for _, d := range []int{12, 3} {
		_, err := b.Toggle(d)
		require.NoError(t, err)
	}
	_, err := b.Assign("flag")
	require.NoError(t, err)
	_, err = b.Assign("color")
	require.NoError(t, err)

	rows := b.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, Row{Day: 3, Date: "2026-02-03", Group: "color", Content: "red"}, rows[0])
	assert.Equal(t, Row{Day: 3, Date: "2026-02-03", Group: "flag", Content: "yes"}, rows[1])
	assert.Equal(t, Row{Day: 12, Date: "2026-02-12", Group: "color", Content: "red"}, rows[2])
	assert.Equal(t, Row{Day: 12, Date: "2026-02-12", Group: "flag", Content: "yes"}, rows[3])
}

func TestRowCountMatchesAssignments(t *testing.T) {
	b := newFeb(t, seeded())
	_, err := b.PickRandom(6, nil)
	require.NoError(t, err)
	_, err = b.Assign("flag")
	require.NoError(t, err)
	_, err = b.PickRandom(4, nil)
	require.NoError(t, err)
	_, err = b.Assign("color")
	require.NoError(t, err)

	total := 0
	for d := 1; d <= b.DaysInMonth(); d++ {
		total += len(b.AssignmentsFor(d))
	}
	assert.Len(t, b.Rows(), total)
	assert.Equal(t, total, b.Summary().Rows)
}

func TestResultLines(t *testing.T) {
	b, err := New(2026, time.October, []Group{{Name: "flag", Options: []string{"yes"}}})
	require.NoError(t, err)

	assert.Nil(t, b.ResultLines())

	_, err = b.Toggle(9)
	require.NoError(t, err)
	_, err = b.Assign("flag")
	require.NoError(t, err)

	lines := b.ResultLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1 rows (covering 1 days)", lines[0])
	assert.Equal(t, "2026-10-09  ->  flag / yes", lines[1])
}
