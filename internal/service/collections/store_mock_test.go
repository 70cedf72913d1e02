package collections

import (
	"context"
	"sync"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

var _ collectionStore = &collectionStoreMock{}

type collectionStoreMock struct {
	GetFunc    func(ctx context.Context, id string) (domain.Collection, error)
	ListFunc   func(ctx context.Context) ([]domain.Collection, error)
	CreateFunc func(ctx context.Context, collection domain.Collection) (domain.Collection, error)
	UpdateFunc func(ctx context.Context, collection domain.Collection) error
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx        context.Context
			Collection domain.Collection
		}
		Update []struct {
			Ctx        context.Context
			Collection domain.Collection
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *collectionStoreMock) Get(ctx context.Context, id string) (domain.Collection, error) {
	if mock.GetFunc == nil {
		panic("collectionStoreMock.GetFunc: method is nil but collectionStore.Get was just called")
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

func (mock *collectionStoreMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
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

func (mock *collectionStoreMock) Create(ctx context.Context, collection domain.Collection) (domain.Collection, error) {
	if mock.CreateFunc == nil {
		panic("collectionStoreMock.CreateFunc: method is nil but collectionStore.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection domain.Collection
	}{Ctx: ctx, Collection: collection}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, collection)
}

func (mock *collectionStoreMock) CreateCalls() []struct {
	Ctx        context.Context
	Collection domain.Collection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *collectionStoreMock) Update(ctx context.Context, collection domain.Collection) error {
	if mock.UpdateFunc == nil {
		panic("collectionStoreMock.UpdateFunc: method is nil but collectionStore.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection domain.Collection
	}{Ctx: ctx, Collection: collection}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, collection)
}

func (mock *collectionStoreMock) UpdateCalls() []struct {
	Ctx        context.Context
	Collection domain.Collection
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *collectionStoreMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("collectionStoreMock.DeleteFunc: method is nil but collectionStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *collectionStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ textStore = &textStoreMock{}

type textStoreMock struct {
	DetachCollectionFunc func(ctx context.Context, collectionID string) (int, error)

	calls struct {
		DetachCollection []struct {
			Ctx          context.Context
			CollectionID string
		}
	}
	lockDetachCollection sync.RWMutex
}

func (mock *textStoreMock) DetachCollection(ctx context.Context, collectionID string) (int, error) {
	if mock.DetachCollectionFunc == nil {
		panic("textStoreMock.DetachCollectionFunc: method is nil but textStore.DetachCollection was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID string
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockDetachCollection.Lock()
	mock.calls.DetachCollection = append(mock.calls.DetachCollection, callInfo)
	mock.lockDetachCollection.Unlock()
	return mock.DetachCollectionFunc(ctx, collectionID)
}

func (mock *textStoreMock) DetachCollectionCalls() []struct {
	Ctx          context.Context
	CollectionID string
} {
	mock.lockDetachCollection.RLock()
	calls := mock.calls.DetachCollection
	mock.lockDetachCollection.RUnlock()
	return calls
}
