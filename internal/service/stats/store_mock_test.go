package stats

import (
	"context"
	"sync"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

var _ cardStore = &cardStoreMock{}

type cardStoreMock struct {
	ListFunc func(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.CardFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *cardStoreMock) List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	if mock.ListFunc == nil {
		panic("cardStoreMock.ListFunc: method is nil but cardStore.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.CardFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *cardStoreMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.CardFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ textStore = &textStoreMock{}

type textStoreMock struct {
	GetFunc              func(ctx context.Context, id string) (domain.Text, error)
	ListFunc             func(ctx context.Context) ([]domain.Text, error)
	ListByCollectionFunc func(ctx context.Context, collectionID string) ([]domain.Text, error)
	UpdateStatsFunc      func(ctx context.Context, id string, stats domain.TextStats) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx context.Context
		}
		ListByCollection []struct {
			Ctx          context.Context
			CollectionID string
		}
		UpdateStats []struct {
			Ctx   context.Context
			ID    string
			Stats domain.TextStats
		}
	}
	lockGet              sync.RWMutex
	lockList             sync.RWMutex
	lockListByCollection sync.RWMutex
	lockUpdateStats      sync.RWMutex
}

func (mock *textStoreMock) Get(ctx context.Context, id string) (domain.Text, error) {
	if mock.GetFunc == nil {
		panic("textStoreMock.GetFunc: method is nil but textStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *textStoreMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *textStoreMock) List(ctx context.Context) ([]domain.Text, error) {
	if mock.ListFunc == nil {
		panic("textStoreMock.ListFunc: method is nil but textStore.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *textStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *textStoreMock) ListByCollection(ctx context.Context, collectionID string) ([]domain.Text, error) {
	if mock.ListByCollectionFunc == nil {
		panic("textStoreMock.ListByCollectionFunc: method is nil but textStore.ListByCollection was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID string
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockListByCollection.Lock()
	mock.calls.ListByCollection = append(mock.calls.ListByCollection, callInfo)
	mock.lockListByCollection.Unlock()
	return mock.ListByCollectionFunc(ctx, collectionID)
}

func (mock *textStoreMock) ListByCollectionCalls() []struct {
	Ctx          context.Context
	CollectionID string
} {
	mock.lockListByCollection.RLock()
	calls := mock.calls.ListByCollection
	mock.lockListByCollection.RUnlock()
	return calls
}

func (mock *textStoreMock) UpdateStats(ctx context.Context, id string, stats domain.TextStats) error {
	if mock.UpdateStatsFunc == nil {
		panic("textStoreMock.UpdateStatsFunc: method is nil but textStore.UpdateStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Stats domain.TextStats
	}{Ctx: ctx, ID: id, Stats: stats}
	mock.lockUpdateStats.Lock()
	mock.calls.UpdateStats = append(mock.calls.UpdateStats, callInfo)
	mock.lockUpdateStats.Unlock()
	return mock.UpdateStatsFunc(ctx, id, stats)
}

func (mock *textStoreMock) UpdateStatsCalls() []struct {
	Ctx   context.Context
	ID    string
	Stats domain.TextStats
} {
	mock.lockUpdateStats.RLock()
	calls := mock.calls.UpdateStats
	mock.lockUpdateStats.RUnlock()
	return calls
}

var _ collectionStore = &collectionStoreMock{}

type collectionStoreMock struct {
	ListFunc        func(ctx context.Context) ([]domain.Collection, error)
	UpdateStatsFunc func(ctx context.Context, id string, stats domain.CollectionStats) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		UpdateStats []struct {
			Ctx   context.Context
			ID    string
			Stats domain.CollectionStats
		}
	}
	lockList        sync.RWMutex
	lockUpdateStats sync.RWMutex
}

func (mock *collectionStoreMock) List(ctx context.Context) ([]domain.Collection, error) {
	if mock.ListFunc == nil {
		panic("collectionStoreMock.ListFunc: method is nil but collectionStore.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *collectionStoreMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *collectionStoreMock) UpdateStats(ctx context.Context, id string, stats domain.CollectionStats) error {
	if mock.UpdateStatsFunc == nil {
		panic("collectionStoreMock.UpdateStatsFunc: method is nil but collectionStore.UpdateStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Stats domain.CollectionStats
	}{Ctx: ctx, ID: id, Stats: stats}
	mock.lockUpdateStats.Lock()
	mock.calls.UpdateStats = append(mock.calls.UpdateStats, callInfo)
	mock.lockUpdateStats.Unlock()
	return mock.UpdateStatsFunc(ctx, id, stats)
}

func (mock *collectionStoreMock) UpdateStatsCalls() []struct {
	Ctx   context.Context
	ID    string
	Stats domain.CollectionStats
} {
	mock.lockUpdateStats.RLock()
	calls := mock.calls.UpdateStats
	mock.lockUpdateStats.RUnlock()
	return calls
}
