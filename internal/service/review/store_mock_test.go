package review

import (
	"context"
	"sync"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

var _ cardStore = &cardStoreMock{}

type cardStoreMock struct {
	ListFunc   func(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	UpdateFunc func(ctx context.Context, card domain.Card) error

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.CardFilter
		}
		Update []struct {
			Ctx  context.Context
			Card domain.Card
		}
	}
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
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

func (mock *cardStoreMock) Update(ctx context.Context, card domain.Card) error {
	if mock.UpdateFunc == nil {
		panic("cardStoreMock.UpdateFunc: method is nil but cardStore.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, card)
}

func (mock *cardStoreMock) UpdateCalls() []struct {
	Ctx  context.Context
	Card domain.Card
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ textStore = &textStoreMock{}

type textStoreMock struct {
	ListByCollectionFunc func(ctx context.Context, collectionID string) ([]domain.Text, error)

	calls struct {
		ListByCollection []struct {
			Ctx          context.Context
			CollectionID string
		}
	}
	lockListByCollection sync.RWMutex
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
