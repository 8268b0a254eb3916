package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-api/internal/domain"
	"github.com/heartmarshall/notes-api/internal/service/note"
)

// maxBodyBytes caps request bodies. Content is unbounded in the model but
// not on the wire.
const maxBodyBytes = 8 << 20

// noteService defines the minimal interface needed by NoteHandler.
type noteService interface {
	ListNotes(ctx context.Context) ([]domain.NoteSummary, error)
	GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, input note.DeleteNoteInput) error
}

// NoteHandler serves the note REST endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type createNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type updateNoteRequest struct {
	Title   optional[string] `json:"title"`
	Content optional[string] `json:"content"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type noteSummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List handles GET /v1/note.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]noteSummaryResponse, len(notes))
	for i, n := range notes {
		resp[i] = noteSummaryResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			UpdatedAt: n.UpdatedAt.UTC(),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/note/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeNote(w, http.StatusOK, n)
}

// Create handles POST /v1/note.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+n.ID.String())
	writeNote(w, http.StatusCreated, n)
}

// Update handles PATCH /v1/note/{id}. Only members present in the body are
// changed; "content": null clears the content.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	expected, err := ifMatchVersion(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateNoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), note.UpdateNoteInput{
		ID:              id,
		Title:           req.Title.toDomain(),
		Content:         req.Content.toDomain(),
		ExpectedVersion: expected,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeNote(w, http.StatusOK, n)
}

// Delete handles DELETE /v1/note/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	expected, err := ifMatchVersion(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	err = h.svc.DeleteNote(r.Context(), note.DeleteNoteInput{
		ID:              id,
		ExpectedVersion: expected,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON object body into dst. A member of the wrong type is a
// 422 naming that member; any other decode failure is a 400. Either way the
// response is written and false returned.
func (h *NoteHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	h.log.DebugContext(r.Context(), "invalid request body", slog.String("error", err.Error()))

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeValidationError(w, domain.NewValidationError(
			typeErr.Field,
			fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		))
		return false
	}

	writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

func (h *NoteHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "invalid input")
	case errors.Is(err, domain.ErrNotFound):
		h.log.DebugContext(r.Context(), "note not found", slog.String("error", err.Error()))
		writeError(w, http.StatusNotFound, "note not found")
	case errors.Is(err, domain.ErrConflict):
		h.log.InfoContext(r.Context(), "note version conflict", slog.String("error", err.Error()))
		writeError(w, http.StatusConflict, "version conflict")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeNote(w http.ResponseWriter, status int, n *domain.Note) {
	w.Header().Set("ETag", etag(n.Version))
	writeJSON(w, status, noteResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		Version:   n.Version,
		CreatedAt: n.CreatedAt.UTC(),
		UpdatedAt: n.UpdatedAt.UTC(),
	})
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid UUID")
	}
	return id, nil
}

func etag(version int) string {
	return `"` + strconv.Itoa(version) + `"`
}

// ifMatchVersion parses an If-Match header carrying a note version.
// A missing header or "*" means no precondition.
func ifMatchVersion(r *http.Request) (*int, error) {
	raw := strings.TrimSpace(r.Header.Get("If-Match"))
	if raw == "" || raw == "*" {
		return nil, nil
	}

	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, domain.NewValidationError("If-Match", "must be a note version")
	}
	return &v, nil
}
