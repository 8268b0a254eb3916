// Package note implements the Note store using PostgreSQL.
// Every mutation is a single statement; updates and deletes are guarded by
// the optlock column so that a writer holding a stale version never wins.
package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/notes-api/internal/adapter/postgres"
	"github.com/heartmarshall/notes-api/internal/domain"
)

const (
	tableNotes = "notes"
	entityNote = "note"
)

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	noteColumns    = []string{"id", "optlock", "title", "content", "created_at", "updated_at"}
	summaryColumns = []string{"id", "title", "updated_at"}

	returningNote = "RETURNING " + strings.Join(noteColumns, ", ")
)

// noteRow mirrors a row of the notes table.
type noteRow struct {
	ID        uuid.UUID `db:"id"`
	Optlock   int       `db:"optlock"`
	Title     string    `db:"title"`
	Content   *string   `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type summaryRow struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository. db is usually a *pgxpool.Pool; inside
// TxManager.RunInTx the transaction from the context is used instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns a summary of every note, most recently updated first.
// Returns an empty slice (not nil) when there are no notes.
func (r *Repo) List(ctx context.Context) ([]domain.NoteSummary, error) {
	query, args, err := psql.
		Select(summaryColumns...).
		From(tableNotes).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	summaries := make([]domain.NoteSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.NoteSummary{
			ID:        row.ID,
			Title:     row.Title,
			UpdatedAt: row.UpdatedAt,
		}
	}

	return summaries, nil
}

// GetByID returns a note by primary key.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return r.get(ctx, postgres.QuerierFromCtx(ctx, r.db), id)
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, id uuid.UUID) (*domain.Note, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(tableNotes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get note query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entityNote, id)
	}

	return toDomainNote(row), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new note with version 0 and returns it as stored.
// Both timestamps are assigned by the database.
func (r *Repo) Create(ctx context.Context, title string, content *string) (*domain.Note, error) {
	id := uuid.New()

	query, args, err := psql.
		Insert(tableNotes).
		Columns("id", "optlock", "title", "content").
		Values(id, 0, title, content).
		Suffix(returningNote).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create note query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entityNote, id)
	}

	return toDomainNote(row), nil
}

// Update applies the present fields of params to the note and bumps its
// version. The write only succeeds if the stored version still equals the
// one read here (or params.ExpectedVersion when set).
//
// Returns domain.ErrNotFound if the note does not exist (or was deleted
// concurrently) and domain.ErrConflict if another writer advanced it first.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	current, err := r.get(ctx, q, id)
	if err != nil {
		return nil, err
	}

	version := current.Version
	if params.ExpectedVersion != nil {
		if *params.ExpectedVersion != current.Version {
			return nil, fmt.Errorf("note %s: version %d, expected %d: %w",
				id, current.Version, *params.ExpectedVersion, domain.ErrConflict)
		}
		version = *params.ExpectedVersion
	}

	builder := psql.Update(tableNotes)
	if params.Title.Set {
		if params.Title.IsNull() {
			return nil, domain.NewValidationError("title", "must not be null")
		}
		builder = builder.Set("title", *params.Title.Value)
	}
	if params.Content.Set {
		builder = builder.Set("content", params.Content.Value)
	}

	query, args, err := builder.
		Set("optlock", squirrel.Expr("optlock + 1")).
		Set("updated_at", squirrel.Expr("GREATEST(clock_timestamp(), created_at)")).
		Where(squirrel.Eq{"id": id, "optlock": version}).
		Suffix(returningNote).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update note query: %w", err)
	}

	var row noteRow
	err = pgxscan.Get(ctx, q, &row, query, args...)
	if err == nil {
		return toDomainNote(row), nil
	}

	mapped := postgres.MapError(err, entityNote, id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	return nil, r.lostRace(ctx, q, id, version)
}

// Delete removes a note permanently.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.
		Delete(tableNotes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete note query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entityNote, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteVersion removes a note only if its stored version equals version.
// Returns domain.ErrNotFound if the note does not exist and
// domain.ErrConflict if it exists with a different version.
func (r *Repo) DeleteVersion(ctx context.Context, id uuid.UUID, version int) error {
	query, args, err := psql.
		Delete(tableNotes).
		Where(squirrel.Eq{"id": id, "optlock": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete note query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entityNote, id)
	}
	if tag.RowsAffected() == 0 {
		return r.lostRace(ctx, q, id, version)
	}

	return nil
}

// lostRace explains why a conditional write on (id, version) matched no row:
// the note is gone, or it now carries another version.
func (r *Repo) lostRace(ctx context.Context, q postgres.Querier, id uuid.UUID, version int) error {
	query, args, err := psql.
		Select("optlock").
		From(tableNotes).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build note version query: %w", err)
	}

	var current int
	if err := q.QueryRow(ctx, query, args...).Scan(&current); err != nil {
		return postgres.MapError(err, entityNote, id)
	}

	return fmt.Errorf("note %s: version %d, expected %d: %w", id, current, version, domain.ErrConflict)
}

func toDomainNote(row noteRow) *domain.Note {
	return &domain.Note{
		ID:        row.ID,
		Version:   row.Optlock,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
