package membership

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateBatchFunc      func(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByIDForUpdate []struct {
			ID uuid.UUID
		}
		UpdateBatch []struct {
			ID      uuid.UUID
			BatchID uuid.UUID
			Now     time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateBatch      sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *userRepoMock) UpdateBatch(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error) {
	if mock.UpdateBatchFunc == nil {
		panic("userRepoMock.UpdateBatchFunc: method is nil but userRepo.UpdateBatch was just called")
	}
	callInfo := struct {
		ID      uuid.UUID
		BatchID uuid.UUID
		Now     time.Time
	}{ID: id, BatchID: batchID, Now: now}
	mock.lockUpdateBatch.Lock()
	mock.calls.UpdateBatch = append(mock.calls.UpdateBatch, callInfo)
	mock.lockUpdateBatch.Unlock()
	return mock.UpdateBatchFunc(ctx, id, batchID, now)
}

func (mock *userRepoMock) UpdateBatchCalls() []struct {
	ID      uuid.UUID
	BatchID uuid.UUID
	Now     time.Time
} {
	mock.lockUpdateBatch.RLock()
	calls := mock.calls.UpdateBatch
	mock.lockUpdateBatch.RUnlock()
	return calls
}

var _ batchRepo = &batchRepoMock{}

type batchRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	ListActiveFunc func(ctx context.Context) ([]domain.Batch, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		ListActive []struct{}
	}
	lockGetByID    sync.RWMutex
	lockListActive sync.RWMutex
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

func (mock *batchRepoMock) ListActive(ctx context.Context) ([]domain.Batch, error) {
	if mock.ListActiveFunc == nil {
		panic("batchRepoMock.ListActiveFunc: method is nil but batchRepo.ListActive was just called")
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, struct{}{})
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *batchRepoMock) ListActiveCalls() []struct{} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

var _ switchLedger = &switchLedgerMock{}

type switchLedgerMock struct {
	AppendFunc      func(ctx context.Context, rec *domain.SwitchRecord) (*domain.SwitchRecord, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error)

	calls struct {
		Append []struct {
			Rec *domain.SwitchRecord
		}
		CountByUser []struct {
			UserID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
	}
	lockAppend      sync.RWMutex
	lockCountByUser sync.RWMutex
	lockListByUser  sync.RWMutex
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

func (mock *switchLedgerMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("switchLedgerMock.CountByUserFunc: method is nil but switchLedger.CountByUser was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *switchLedgerMock) CountByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *switchLedgerMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error) {
	if mock.ListByUserFunc == nil {
		panic("switchLedgerMock.ListByUserFunc: method is nil but switchLedger.ListByUser was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *switchLedgerMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
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
