package antitheft

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct{ IDs []uuid.UUID }{IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

var _ batchRepo = &batchRepoMock{}

type batchRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Batch, error)

	calls struct {
		GetByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *batchRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Batch, error) {
	if mock.GetByIDsFunc == nil {
		panic("batchRepoMock.GetByIDsFunc: method is nil but batchRepo.GetByIDs was just called")
	}
	callInfo := struct{ IDs []uuid.UUID }{IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *batchRepoMock) GetByIDsCalls() []struct {
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

var _ switchLedger = &switchLedgerMock{}

type switchLedgerMock struct {
	CountsPerUserFunc func(ctx context.Context, minSwitches int) ([]domain.UserSwitchCount, error)
	ListAllFunc       func(ctx context.Context, limit int) ([]domain.SwitchRecordDetail, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error)

	calls struct {
		CountsPerUser []struct {
			MinSwitches int
		}
		ListAll []struct {
			Limit int
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
	}
	lockCountsPerUser sync.RWMutex
	lockListAll       sync.RWMutex
	lockListByUser    sync.RWMutex
}

func (mock *switchLedgerMock) CountsPerUser(ctx context.Context, minSwitches int) ([]domain.UserSwitchCount, error) {
	if mock.CountsPerUserFunc == nil {
		panic("switchLedgerMock.CountsPerUserFunc: method is nil but switchLedger.CountsPerUser was just called")
	}
	callInfo := struct{ MinSwitches int }{MinSwitches: minSwitches}
	mock.lockCountsPerUser.Lock()
	mock.calls.CountsPerUser = append(mock.calls.CountsPerUser, callInfo)
	mock.lockCountsPerUser.Unlock()
	return mock.CountsPerUserFunc(ctx, minSwitches)
}

func (mock *switchLedgerMock) CountsPerUserCalls() []struct {
	MinSwitches int
} {
	mock.lockCountsPerUser.RLock()
	calls := mock.calls.CountsPerUser
	mock.lockCountsPerUser.RUnlock()
	return calls
}

func (mock *switchLedgerMock) ListAll(ctx context.Context, limit int) ([]domain.SwitchRecordDetail, error) {
	if mock.ListAllFunc == nil {
		panic("switchLedgerMock.ListAllFunc: method is nil but switchLedger.ListAll was just called")
	}
	callInfo := struct{ Limit int }{Limit: limit}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, limit)
}

func (mock *switchLedgerMock) ListAllCalls() []struct {
	Limit int
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
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
