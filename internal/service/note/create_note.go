package note

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// CreateNote validates the input and stores a new note at version 0.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	if err := input.Validate(s.titleMax); err != nil {
		return nil, err
	}

	created, err := s.notes.Create(ctx, *input.Title, input.Content)
	if err != nil {
		return nil, s.storageFailure(ctx, "create note", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("note_id", created.ID.String()),
	)

	return created, nil
}
