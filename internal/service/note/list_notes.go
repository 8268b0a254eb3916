package note

import (
	"context"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// ListNotes returns a summary of every note, most recently updated first.
func (s *Service) ListNotes(ctx context.Context) ([]domain.NoteSummary, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, s.storageFailure(ctx, "list notes", err)
	}

	if notes == nil {
		notes = []domain.NoteSummary{}
	}

	return notes, nil
}
