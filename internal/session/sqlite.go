package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
	log     *zap.Logger
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     logger,
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		year        INTEGER NOT NULL,
		month       INTEGER NOT NULL,
		digest      TEXT NOT NULL,
		row_count   INTEGER NOT NULL DEFAULT 0,
		snapshot    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at DESC);
	`)
	return err
}

func (s *SQLiteStore) Save(ctx context.Context, name string, snap board.Snapshot) (*Session, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrEmptyName
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, false, fmt.Errorf("encode snapshot: %w", err)
	}
	digest := snap.Digest()
	rows := 0
	for _, inner := range snap.Assignments {
		rows += len(inner)
	}
	now := time.Now().UTC().Format(timeLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	var id, prevDigest string
	err = tx.QueryRowContext(ctx, `SELECT id, digest FROM sessions WHERE name = ?`, name).Scan(&id, &prevDigest)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = s.newID()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sessions (id, name, year, month, digest, row_count, snapshot, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, name, snap.Year, snap.Month, digest, rows, string(data), now, now)
		if err != nil {
			return nil, false, fmt.Errorf("insert session: %w", err)
		}
	case err != nil:
		return nil, false, fmt.Errorf("lookup session: %w", err)
	case prevDigest == digest:
		if err := tx.Commit(); err != nil {
			return nil, false, err
		}
		sess, err := s.Get(ctx, id)
		return sess, false, err
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE sessions SET year = ?, month = ?, digest = ?, row_count = ?, snapshot = ?, updated_at = ?
			 WHERE id = ?`,
			snap.Year, snap.Month, digest, rows, string(data), now, id)
		if err != nil {
			return nil, false, fmt.Errorf("update session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	s.log.Debug("saved session", zap.String("id", id), zap.String("name", name), zap.String("digest", digest))

	sess, err := s.Get(ctx, id)
	return sess, true, err
}

const selectSession = `SELECT id, name, year, month, digest, row_count, snapshot, created_at, updated_at FROM sessions`

func (s *SQLiteStore) Get(ctx context.Context, ref string) (*Session, error) {
	// An ID match wins over a session whose name happens to equal it.
	row := s.db.QueryRowContext(ctx, selectSession+` WHERE id = ? OR name = ? ORDER BY id = ? DESC LIMIT 1`, ref, ref, ref)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: '%s'", ErrNotFound, ref)
	}
	return sess, err
}

func (s *SQLiteStore) List(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, selectSession+` ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sess)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, ref string) error {
	sess, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sess.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: '%s'", ErrNotFound, ref)
	}
	s.log.Debug("deleted session", zap.String("id", sess.ID), zap.String("name", sess.Name))
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (*Session, error) {
	var (
		sess               Session
		month              int
		snapshot           string
		createdAt, updated string
	)
	if err := sc.Scan(&sess.ID, &sess.Name, &sess.Year, &month, &sess.Digest, &sess.Rows, &snapshot, &createdAt, &updated); err != nil {
		return nil, err
	}
	sess.Month = time.Month(month)
	if err := json.Unmarshal([]byte(snapshot), &sess.Snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", sess.ID, err)
	}
	sess.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	sess.UpdatedAt, _ = time.Parse(timeLayout, updated)
	return &sess, nil
}
