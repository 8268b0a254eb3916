package note

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// CreateNoteInput holds the parameters for creating a note.
// Title is a pointer so that a missing or null title can be told apart from "".
type CreateNoteInput struct {
	Title   *string
	Content *string
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate(titleMax int) error {
	var errs []domain.FieldError

	if i.Title == nil {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if fe, ok := checkTitle(*i.Title, titleMax); !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateNoteInput holds the parameters for a partial update.
type UpdateNoteInput struct {
	ID      uuid.UUID
	Title   domain.Optional[string] // absent = keep; null is rejected
	Content domain.Optional[string] // absent = keep; null = clear

	// ExpectedVersion, when set, is the version the client last saw.
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate(titleMax int) error {
	var errs []domain.FieldError

	if i.Title.IsNull() {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be null"})
	} else if i.Title.Set {
		if fe, ok := checkTitle(*i.Title.Value, titleMax); !ok {
			errs = append(errs, fe)
		}
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateNoteInput) params() domain.NoteUpdateParams {
	return domain.NoteUpdateParams{
		Title:           i.Title,
		Content:         i.Content,
		ExpectedVersion: i.ExpectedVersion,
	}
}

// DeleteNoteInput holds the parameters for deleting a note.
type DeleteNoteInput struct {
	ID              uuid.UUID
	ExpectedVersion *int
}

// Validate checks all fields and collects all errors.
func (i DeleteNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.ExpectedVersion != nil && *i.ExpectedVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// checkTitle enforces the length bound in Unicode code points.
// An empty title is accepted.
func checkTitle(title string, limit int) (domain.FieldError, bool) {
	if utf8.RuneCountInString(title) > limit {
		return domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", limit)}, false
	}
	return domain.FieldError{}, true
}
