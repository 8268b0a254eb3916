package note

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notes-api/internal/domain"
)

// UpdateNote applies a partial update inside a transaction.
// Only the fields present in input change; the version always advances by one.
// A stale input.ExpectedVersion, or losing a race with another writer,
// yields domain.ErrConflict.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	if err := input.Validate(s.titleMax); err != nil {
		return nil, err
	}

	var updated *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.notes.Update(txCtx, input.ID, input.params())
		return updateErr
	})
	if err != nil {
		return nil, s.storageFailure(ctx, "update note", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("note_id", input.ID.String()),
		slog.Int("version", updated.Version),
	)

	return updated, nil
}
