package board

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore(t *testing.T) {
	b := newFeb(t, seeded())
	_, err := b.PickRandom(4, nil)
	require.NoError(t, err)
	_, err = b.Assign("color")
	require.NoError(t, err)

	snap := b.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := Restore(decoded)
	require.NoError(t, err)

	assert.Equal(t, time.February, restored.Month())
	assert.Equal(t, b.SelectedDays(), restored.SelectedDays())
	assert.Equal(t, b.Rows(), restored.Rows())
	assert.Equal(t, b.Groups(), restored.Groups())
	assert.Equal(t, snap.Digest(), restored.Snapshot().Digest())
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Errorf("restored snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreRejectsInvalidDay(t *testing.T) {
	_, err := Restore(Snapshot{Year: 2026, Month: 2, Selected: []int{30}})
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestRestoreRejectsUnknownGroup(t *testing.T) {
	_, err := Restore(Snapshot{
		Year:        2026,
		Month:       2,
		Assignments: map[int]map[string]string{1: {"ghost": "x"}},
	})
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestDigestChangesWithState(t *testing.T) {
	b := newFeb(t)
	before := b.Snapshot().Digest()

	_, err := b.Toggle(1)
	require.NoError(t, err)

	assert.NotEqual(t, before, b.Snapshot().Digest())
	assert.Len(t, before, 7)
}
