package note

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// GetNote returns a single note by id.
func (s *Service) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, s.storageFailure(ctx, "get note", err)
	}

	return note, nil
}
