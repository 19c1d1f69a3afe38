package batchadmin

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

var _ batchRepo = &batchRepoMock{}

type batchRepoMock struct {
	CreateFunc     func(ctx context.Context, b *domain.Batch) (*domain.Batch, error)
	DeactivateFunc func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	ListFunc       func(ctx context.Context) ([]domain.Batch, error)

	calls struct {
		Create []struct {
			B *domain.Batch
		}
		Deactivate []struct {
			ID uuid.UUID
		}
		List []struct{}
	}
	lockCreate     sync.RWMutex
	lockDeactivate sync.RWMutex
	lockList       sync.RWMutex
}

func (mock *batchRepoMock) Create(ctx context.Context, b *domain.Batch) (*domain.Batch, error) {
	if mock.CreateFunc == nil {
		panic("batchRepoMock.CreateFunc: method is nil but batchRepo.Create was just called")
	}
	callInfo := struct{ B *domain.Batch }{B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *batchRepoMock) CreateCalls() []struct {
	B *domain.Batch
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *batchRepoMock) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	if mock.DeactivateFunc == nil {
		panic("batchRepoMock.DeactivateFunc: method is nil but batchRepo.Deactivate was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, callInfo)
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, id)
}

func (mock *batchRepoMock) DeactivateCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}

func (mock *batchRepoMock) List(ctx context.Context) ([]domain.Batch, error) {
	if mock.ListFunc == nil {
		panic("batchRepoMock.ListFunc: method is nil but batchRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *batchRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
