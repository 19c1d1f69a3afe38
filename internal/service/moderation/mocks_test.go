package moderation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SuspendFunc          func(ctx context.Context, id uuid.UUID, reason string, now time.Time) (*domain.User, error)
	UnsuspendFunc        func(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error)

	calls struct {
		GetByIDForUpdate []struct {
			ID uuid.UUID
		}
		Suspend []struct {
			ID     uuid.UUID
			Reason string
			Now    time.Time
		}
		Unsuspend []struct {
			ID      uuid.UUID
			BatchID uuid.UUID
			Now     time.Time
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockSuspend          sync.RWMutex
	lockUnsuspend        sync.RWMutex
}

func (mock *userRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("userRepoMock.GetByIDForUpdateFunc: method is nil but userRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDForUpdateCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Suspend(ctx context.Context, id uuid.UUID, reason string, now time.Time) (*domain.User, error) {
	if mock.SuspendFunc == nil {
		panic("userRepoMock.SuspendFunc: method is nil but userRepo.Suspend was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Reason string
		Now    time.Time
	}{ID: id, Reason: reason, Now: now}
	mock.lockSuspend.Lock()
	mock.calls.Suspend = append(mock.calls.Suspend, callInfo)
	mock.lockSuspend.Unlock()
	return mock.SuspendFunc(ctx, id, reason, now)
}

func (mock *userRepoMock) SuspendCalls() []struct {
	ID     uuid.UUID
	Reason string
	Now    time.Time
} {
	mock.lockSuspend.RLock()
	calls := mock.calls.Suspend
	mock.lockSuspend.RUnlock()
	return calls
}

func (mock *userRepoMock) Unsuspend(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error) {
	if mock.UnsuspendFunc == nil {
		panic("userRepoMock.UnsuspendFunc: method is nil but userRepo.Unsuspend was just called")
	}
	callInfo := struct {
		ID      uuid.UUID
		BatchID uuid.UUID
		Now     time.Time
	}{ID: id, BatchID: batchID, Now: now}
	mock.lockUnsuspend.Lock()
	mock.calls.Unsuspend = append(mock.calls.Unsuspend, callInfo)
	mock.lockUnsuspend.Unlock()
	return mock.UnsuspendFunc(ctx, id, batchID, now)
}

func (mock *userRepoMock) UnsuspendCalls() []struct {
	ID      uuid.UUID
	BatchID uuid.UUID
	Now     time.Time
} {
	mock.lockUnsuspend.RLock()
	calls := mock.calls.Unsuspend
	mock.lockUnsuspend.RUnlock()
	return calls
}

var _ batchRepo = &batchRepoMock{}

type batchRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *batchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	if mock.GetByIDFunc == nil {
		panic("batchRepoMock.GetByIDFunc: method is nil but batchRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *batchRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ switchLedger = &switchLedgerMock{}

type switchLedgerMock struct {
	AppendFunc func(ctx context.Context, rec *domain.SwitchRecord) (*domain.SwitchRecord, error)

	calls struct {
		Append []struct {
			Rec *domain.SwitchRecord
		}
	}
	lockAppend sync.RWMutex
}

func (mock *switchLedgerMock) Append(ctx context.Context, rec *domain.SwitchRecord) (*domain.SwitchRecord, error) {
	if mock.AppendFunc == nil {
		panic("switchLedgerMock.AppendFunc: method is nil but switchLedger.Append was just called")
	}
	callInfo := struct{ Rec *domain.SwitchRecord }{Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *switchLedgerMock) AppendCalls() []struct {
	Rec *domain.SwitchRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
