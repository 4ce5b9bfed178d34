package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/export"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) session.Store {
	t.Helper()
	store, err := session.NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedSession(t *testing.T, store session.Store, name string, days ...int) *session.Session {
	t.Helper()
	b, err := board.New(2026, time.October, []board.Group{{Name: "flag", Options: []string{"yes"}}})
	require.NoError(t, err)
	for _, d := range days {
		_, err := b.Toggle(d)
		require.NoError(t, err)
	}
	if len(days) > 0 {
		_, err = b.Assign("flag")
		require.NoError(t, err)
	}
	sess, _, err := store.Save(context.Background(), name, b.Snapshot())
	require.NoError(t, err)
	return sess
}

func TestSessionListEmpty(t *testing.T) {
	store := newTestStore(t)
	stdout := new(bytes.Buffer)
	cmd := sessionListCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionList(context.Background(), cmd, store))
	assert.Contains(t, stdout.String(), "no saved sessions")
}

func TestSessionList(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "oncall", 1, 2)
	seedSession(t, store, "standup", 5)

	stdout := new(bytes.Buffer)
	cmd := sessionListCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionList(context.Background(), cmd, store))
	out := stdout.String()
	assert.Contains(t, out, "oncall")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "2026-10")
	assert.Contains(t, out, "2 rows")
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("standup")), bytes.Index(stdout.Bytes(), []byte("oncall")))
}

func TestSessionShow(t *testing.T) {
	store := newTestStore(t)
	sess := seedSession(t, store, "oncall", 3, 1)

	for _, ref := range []string{"oncall", sess.ID} {
		stdout := new(bytes.Buffer)
		cmd := sessionShowCmd
		cmd.SetOut(stdout)

		require.NoError(t, runSessionShow(context.Background(), cmd, store, ref, false))
		out := stdout.String()
		assert.Contains(t, out, "groups: flag")
		assert.Contains(t, out, "selected: 1, 3")
		assert.Contains(t, out, "2 rows (covering 2 days)")
		assert.Contains(t, out, "2026-10-03  ->  flag / yes")
	}
}

func TestSessionShowTable(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "oncall", 9)

	stdout := new(bytes.Buffer)
	cmd := sessionShowCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionShow(context.Background(), cmd, store, "oncall", true))
	out := stdout.String()
	assert.Contains(t, out, "selected: 9")
	assert.Contains(t, out, "2026-10-09")
	assert.NotContains(t, out, "2026-10-09  ->  flag / yes")
}

func TestSessionShowWithoutAssignments(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "blank")

	stdout := new(bytes.Buffer)
	cmd := sessionShowCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionShow(context.Background(), cmd, store, "blank", false))
	assert.Contains(t, stdout.String(), "selected: none")
	assert.Contains(t, stdout.String(), "no assignments")
}

func TestSessionShowNotFound(t *testing.T) {
	store := newTestStore(t)
	cmd := sessionShowCmd
	cmd.SetOut(new(bytes.Buffer))

	err := runSessionShow(context.Background(), cmd, store, "ghost", false)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionExportFile(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "oncall", 2)
	path := filepath.Join(t.TempDir(), "oncall.csv")

	stdout := new(bytes.Buffer)
	cmd := sessionExportCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionExport(context.Background(), cmd, store, "oncall", "", "csv", path, false, false))
	assert.Contains(t, stdout.String(), "exported 1 rows")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Group,Content\r\n2026-10-02,flag,yes\r\n", string(data))
}

func TestSessionExportEmpty(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "blank")
	cmd := sessionExportCmd
	cmd.SetOut(new(bytes.Buffer))

	err := runSessionExport(context.Background(), cmd, store, "blank", "", "text", filepath.Join(t.TempDir(), "x.txt"), false, false)
	assert.ErrorIs(t, err, export.ErrEmpty)
}

func TestSessionExportCopy(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "oncall", 2)

	var copied export.Data
	orig := copyToClipboard
	copyToClipboard = func(d export.Data) error {
		copied = d
		return nil
	}
	defer func() { copyToClipboard = orig }()

	stdout := new(bytes.Buffer)
	cmd := sessionExportCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionExport(context.Background(), cmd, store, "oncall", "Rota", "csv", "", true, false))
	assert.Contains(t, stdout.String(), "copied to clipboard")
	assert.Equal(t, "Rota", copied.Title)
	assert.Len(t, copied.Rows, 1)
}

func TestSessionRemoveByName(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "oncall", 1)

	stdout := new(bytes.Buffer)
	cmd := sessionRemoveCmd
	cmd.SetOut(stdout)

	pk := PromptKit{Confirm: AlwaysYes()}
	require.NoError(t, runSessionRemove(context.Background(), cmd, store, "oncall", pk))
	assert.Contains(t, stdout.String(), "session 'oncall' removed")

	_, err := store.Get(context.Background(), "oncall")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionRemoveDeclined(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "oncall", 1)

	stdout := new(bytes.Buffer)
	cmd := sessionRemoveCmd
	cmd.SetOut(stdout)

	pk := PromptKit{Confirm: mockConfirm(false)}
	require.NoError(t, runSessionRemove(context.Background(), cmd, store, "oncall", pk))
	assert.Contains(t, stdout.String(), "cancelled")

	_, err := store.Get(context.Background(), "oncall")
	assert.NoError(t, err)
}

func TestSessionRemoveSelectsWhenNoArg(t *testing.T) {
	store := newTestStore(t)
	seedSession(t, store, "first", 1)
	seedSession(t, store, "second", 2)

	var offered []string
	pk := PromptKit{
		Confirm: AlwaysYes(),
		Select: func(_ string, options []string) (int, error) {
			offered = options
			return 0, nil
		},
	}

	stdout := new(bytes.Buffer)
	cmd := sessionRemoveCmd
	cmd.SetOut(stdout)

	require.NoError(t, runSessionRemove(context.Background(), cmd, store, "", pk))
	assert.Equal(t, []string{"second (2026-10)", "first (2026-10)"}, offered)

	sessions, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "first", sessions[0].Name)
}

func TestSessionRemoveNoSessions(t *testing.T) {
	store := newTestStore(t)
	cmd := sessionRemoveCmd
	cmd.SetOut(new(bytes.Buffer))

	err := runSessionRemove(context.Background(), cmd, store, "", PromptKit{})
	assert.EqualError(t, err, "no saved sessions")
}

func TestSessionSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range sessionCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "show", "export", "remove"} {
		assert.True(t, names[want], want)
	}
}
