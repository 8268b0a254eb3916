package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-api/internal/domain"
	"github.com/heartmarshall/notes-api/internal/service/note"
)

var _ noteService = &noteServiceMock{}

type noteServiceMock struct {
	ListNotesFunc  func(ctx context.Context) ([]domain.NoteSummary, error)
	GetNoteFunc    func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateNoteFunc func(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	UpdateNoteFunc func(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	DeleteNoteFunc func(ctx context.Context, input note.DeleteNoteInput) error

	calls struct {
		ListNotes []struct {
			Ctx context.Context
		}
		GetNote []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateNote []struct {
			Ctx   context.Context
			Input note.CreateNoteInput
		}
		UpdateNote []struct {
			Ctx   context.Context
			Input note.UpdateNoteInput
		}
		DeleteNote []struct {
			Ctx   context.Context
			Input note.DeleteNoteInput
		}
	}
	lockListNotes  sync.RWMutex
	lockGetNote    sync.RWMutex
	lockCreateNote sync.RWMutex
	lockUpdateNote sync.RWMutex
	lockDeleteNote sync.RWMutex
}

func (mock *noteServiceMock) ListNotes(ctx context.Context) ([]domain.NoteSummary, error) {
	if mock.ListNotesFunc == nil {
		panic("noteServiceMock.ListNotesFunc: method is nil but noteService.ListNotes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListNotes.Lock()
	mock.calls.ListNotes = append(mock.calls.ListNotes, callInfo)
	mock.lockListNotes.Unlock()
	return mock.ListNotesFunc(ctx)
}

func (mock *noteServiceMock) ListNotesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListNotes.RLock()
	calls := mock.calls.ListNotes
	mock.lockListNotes.RUnlock()
	return calls
}

func (mock *noteServiceMock) GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	if mock.GetNoteFunc == nil {
		panic("noteServiceMock.GetNoteFunc: method is nil but noteService.GetNote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetNote.Lock()
	mock.calls.GetNote = append(mock.calls.GetNote, callInfo)
	mock.lockGetNote.Unlock()
	return mock.GetNoteFunc(ctx, id)
}

func (mock *noteServiceMock) GetNoteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetNote.RLock()
	calls := mock.calls.GetNote
	mock.lockGetNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error) {
	if mock.CreateNoteFunc == nil {
		panic("noteServiceMock.CreateNoteFunc: method is nil but noteService.CreateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.CreateNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateNote.Lock()
	mock.calls.CreateNote = append(mock.calls.CreateNote, callInfo)
	mock.lockCreateNote.Unlock()
	return mock.CreateNoteFunc(ctx, input)
}

func (mock *noteServiceMock) CreateNoteCalls() []struct {
	Ctx   context.Context
	Input note.CreateNoteInput
} {
	mock.lockCreateNote.RLock()
	calls := mock.calls.CreateNote
	mock.lockCreateNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error) {
	if mock.UpdateNoteFunc == nil {
		panic("noteServiceMock.UpdateNoteFunc: method is nil but noteService.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.UpdateNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, input)
}

func (mock *noteServiceMock) UpdateNoteCalls() []struct {
	Ctx   context.Context
	Input note.UpdateNoteInput
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) DeleteNote(ctx context.Context, input note.DeleteNoteInput) error {
	if mock.DeleteNoteFunc == nil {
		panic("noteServiceMock.DeleteNoteFunc: method is nil but noteService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.DeleteNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, input)
}

func (mock *noteServiceMock) DeleteNoteCalls() []struct {
	Ctx   context.Context
	Input note.DeleteNoteInput
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}
