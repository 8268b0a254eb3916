package note

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-api/internal/domain"
)

var _ noteStore = &noteStoreMock{}

type noteStoreMock struct {
	ListFunc          func(ctx context.Context) ([]domain.NoteSummary, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateFunc        func(ctx context.Context, title string, content *string) (*domain.Note, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteVersionFunc func(ctx context.Context, id uuid.UUID, version int) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx     context.Context
			Title   string
			Content *string
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.NoteUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteVersion []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Version int
		}
	}
	lockList          sync.RWMutex
	lockGetByID       sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteVersion sync.RWMutex
}

func (mock *noteStoreMock) List(ctx context.Context) ([]domain.NoteSummary, error) {
	if mock.ListFunc == nil {
		panic("noteStoreMock.ListFunc: method is nil but noteStore.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *noteStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *noteStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	if mock.GetByIDFunc == nil {
		panic("noteStoreMock.GetByIDFunc: method is nil but noteStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *noteStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *noteStoreMock) Create(ctx context.Context, title string, content *string) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteStoreMock.CreateFunc: method is nil but noteStore.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Title   string
		Content *string
	}{Ctx: ctx, Title: title, Content: content}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, title, content)
}

func (mock *noteStoreMock) CreateCalls() []struct {
	Ctx     context.Context
	Title   string
	Content *string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteStoreMock) Update(ctx context.Context, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
	if mock.UpdateFunc == nil {
		panic("noteStoreMock.UpdateFunc: method is nil but noteStore.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.NoteUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *noteStoreMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.NoteUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *noteStoreMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteStoreMock.DeleteFunc: method is nil but noteStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *noteStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *noteStoreMock) DeleteVersion(ctx context.Context, id uuid.UUID, version int) error {
	if mock.DeleteVersionFunc == nil {
		panic("noteStoreMock.DeleteVersionFunc: method is nil but noteStore.DeleteVersion was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Version int
	}{Ctx: ctx, ID: id, Version: version}
	mock.lockDeleteVersion.Lock()
	mock.calls.DeleteVersion = append(mock.calls.DeleteVersion, callInfo)
	mock.lockDeleteVersion.Unlock()
	return mock.DeleteVersionFunc(ctx, id, version)
}

func (mock *noteStoreMock) DeleteVersionCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Version int
} {
	mock.lockDeleteVersion.RLock()
	calls := mock.calls.DeleteVersion
	mock.lockDeleteVersion.RUnlock()
	return calls
}
