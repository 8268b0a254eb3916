package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoteTitleMaxLength is the upper bound for Note.Title, in characters.
// It matches the varchar(255) column.
const NoteTitleMaxLength = 255

// Note is the only persisted entity of the service.
type Note struct {
	ID uuid.UUID
	// Version is the optimistic-lock counter (column "optlock").
	// It starts at 0 and grows by exactly one on every successful update.
	Version   int
	Title     string
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteSummary is the list projection of a Note.
type NoteSummary struct {
	ID        uuid.UUID
	Title     string
	UpdatedAt time.Time
}

// NoteUpdateParams is a sparse set of changes for a Note.
// Unset fields are left untouched. A set Content with a nil value clears it.
type NoteUpdateParams struct {
	Title   Optional[string]
	Content Optional[string]

	// ExpectedVersion pins the version the update must start from.
	// When nil the store uses the version it has just read.
	ExpectedVersion *int
}
