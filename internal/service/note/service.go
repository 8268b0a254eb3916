// Package note implements the Note use cases: validation, transaction
// boundaries and the mapping of store outcomes onto domain errors.
package note

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-api/internal/domain"
)

type noteStore interface {
	List(ctx context.Context) ([]domain.NoteSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, title string, content *string) (*domain.Note, error)
	Update(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteVersion(ctx context.Context, id uuid.UUID, version int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note management operations.
type Service struct {
	notes    noteStore
	tx       txManager
	log      *slog.Logger
	titleMax int
}

// NewService creates a new Note service. titleMax bounds Title length in
// characters; values outside 1..domain.NoteTitleMaxLength fall back to the
// column limit.
func NewService(log *slog.Logger, notes noteStore, tx txManager, titleMax int) *Service {
	if titleMax <= 0 || titleMax > domain.NoteTitleMaxLength {
		titleMax = domain.NoteTitleMaxLength
	}
	return &Service{
		notes:    notes,
		tx:       tx,
		log:      log.With("service", "note"),
		titleMax: titleMax,
	}
}

// storageFailure passes domain outcomes through untouched and hides
// everything else behind a *domain.StorageError, logging the cause.
func (s *Service) storageFailure(ctx context.Context, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.log.WarnContext(ctx, "note operation aborted",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	} else {
		s.log.ErrorContext(ctx, "note storage failure",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}

	return domain.NewStorageError(op, err)
}
