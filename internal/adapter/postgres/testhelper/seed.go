package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedNote inserts a note with optlock 0 and returns it as stored.
// An empty title is replaced with a unique one.
func SeedNote(t *testing.T, pool *pgxpool.Pool, title string, content *string) domain.Note {
	t.Helper()

	if title == "" {
		title = "Note " + uniqueSuffix()
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	note := domain.Note{
		ID:        uuid.New(),
		Version:   0,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, optlock, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.Version, note.Title, note.Content, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert: %v", err)
	}

	return note
}

// SeedNoteAt inserts a note whose timestamps are both set to at.
func SeedNoteAt(t *testing.T, pool *pgxpool.Pool, title string, at time.Time) domain.Note {
	t.Helper()

	at = at.UTC().Truncate(time.Microsecond)
	note := domain.Note{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: at,
		UpdatedAt: at,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, optlock, title, content, created_at, updated_at)
		 VALUES ($1, 0, $2, NULL, $3, $3)`,
		note.ID, note.Title, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNoteAt insert: %v", err)
	}

	return note
}

// TruncateNotes removes every row from notes. Callers that use it must not
// run in parallel with other tests of the same package.
func TruncateNotes(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE notes`); err != nil {
		t.Fatalf("testhelper: TruncateNotes: %v", err)
	}
}

// NoteVersion reads the optlock column of a note directly.
func NoteVersion(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) int {
	t.Helper()

	var v int
	err := pool.QueryRow(context.Background(), `SELECT optlock FROM notes WHERE id = $1`, id).Scan(&v)
	if err != nil {
		t.Fatalf("testhelper: NoteVersion: %v", err)
	}
	return v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
