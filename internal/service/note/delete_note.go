package note

import (
	"context"
	"log/slog"
)

// DeleteNote removes a note permanently. With input.ExpectedVersion set the
// delete only happens if the stored version still matches.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var err error
	if input.ExpectedVersion != nil {
		err = s.notes.DeleteVersion(ctx, input.ID, *input.ExpectedVersion)
	} else {
		err = s.notes.Delete(ctx, input.ID)
	}
	if err != nil {
		return s.storageFailure(ctx, "delete note", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("note_id", input.ID.String()),
	)

	return nil
}
