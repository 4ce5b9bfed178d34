// Package session persists named board snapshots.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/Flyrell/daymark/internal/board"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrEmptyName = errors.New("session name is required")
)

// Session is a saved board.
type Session struct {
	ID        string
	Name      string
	Year      int
	Month     time.Month
	Digest    string
	Rows      int
	CreatedAt time.Time
	UpdatedAt time.Time
	Snapshot  board.Snapshot
}

// Store is the persistence contract for sessions.
type Store interface {
	// Save stores the snapshot under name, replacing an existing session of
	// that name. It reports whether anything changed.
	Save(ctx context.Context, name string, snap board.Snapshot) (*Session, bool, error)
	// Get looks a session up by ID or name.
	Get(ctx context.Context, ref string) (*Session, error)
	List(ctx context.Context) ([]Session, error)
	Delete(ctx context.Context, ref string) error
	Close() error
}
