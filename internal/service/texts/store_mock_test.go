package texts

import (
	"context"
	"sync"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

var _ textStore = &textStoreMock{}

type textStoreMock struct {
	GetFunc              func(ctx context.Context, id string) (domain.Text, error)
	ListFunc             func(ctx context.Context) ([]domain.Text, error)
	ListByCollectionFunc func(ctx context.Context, collectionID string) ([]domain.Text, error)
	CreateFunc           func(ctx context.Context, text domain.Text) (domain.Text, error)
	UpdateFunc           func(ctx context.Context, text domain.Text) error
	DeleteFunc           func(ctx context.Context, id string) error

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
		Create []struct {
			Ctx  context.Context
			Text domain.Text
		}
		Update []struct {
			Ctx  context.Context
			Text domain.Text
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGet              sync.RWMutex
	lockList             sync.RWMutex
	lockListByCollection sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
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

func (mock *textStoreMock) Create(ctx context.Context, text domain.Text) (domain.Text, error) {
	if mock.CreateFunc == nil {
		panic("textStoreMock.CreateFunc: method is nil but textStore.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text domain.Text
	}{Ctx: ctx, Text: text}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, text)
}

func (mock *textStoreMock) CreateCalls() []struct {
	Ctx  context.Context
	Text domain.Text
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *textStoreMock) Update(ctx context.Context, text domain.Text) error {
	if mock.UpdateFunc == nil {
		panic("textStoreMock.UpdateFunc: method is nil but textStore.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text domain.Text
	}{Ctx: ctx, Text: text}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, text)
}

func (mock *textStoreMock) UpdateCalls() []struct {
	Ctx  context.Context
	Text domain.Text
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *textStoreMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("textStoreMock.DeleteFunc: method is nil but textStore.Delete was just called")
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

func (mock *textStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ cardStore = &cardStoreMock{}

type cardStoreMock struct {
	DetachTextFunc func(ctx context.Context, textID string) (int, error)

	calls struct {
		DetachText []struct {
			Ctx    context.Context
			TextID string
		}
	}
	lockDetachText sync.RWMutex
}

func (mock *cardStoreMock) DetachText(ctx context.Context, textID string) (int, error) {
	if mock.DetachTextFunc == nil {
		panic("cardStoreMock.DetachTextFunc: method is nil but cardStore.DetachText was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TextID string
	}{Ctx: ctx, TextID: textID}
	mock.lockDetachText.Lock()
	mock.calls.DetachText = append(mock.calls.DetachText, callInfo)
	mock.lockDetachText.Unlock()
	return mock.DetachTextFunc(ctx, textID)
}

func (mock *cardStoreMock) DetachTextCalls() []struct {
	Ctx    context.Context
	TextID string
} {
	mock.lockDetachText.RLock()
	calls := mock.calls.DetachText
	mock.lockDetachText.RUnlock()
	return calls
}

var _ recomputer = &recomputerMock{}

type recomputerMock struct {
	RecomputeTextFunc       func(ctx context.Context, textID string) (domain.TextStats, error)
	RecomputeCollectionFunc func(ctx context.Context, collectionID string) (domain.CollectionStats, error)

	calls struct {
		RecomputeText []struct {
			Ctx    context.Context
			TextID string
		}
		RecomputeCollection []struct {
			Ctx          context.Context
			CollectionID string
		}
	}
	lockRecomputeText       sync.RWMutex
	lockRecomputeCollection sync.RWMutex
}

func (mock *recomputerMock) RecomputeText(ctx context.Context, textID string) (domain.TextStats, error) {
	if mock.RecomputeTextFunc == nil {
		panic("recomputerMock.RecomputeTextFunc: method is nil but recomputer.RecomputeText was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TextID string
	}{Ctx: ctx, TextID: textID}
	mock.lockRecomputeText.Lock()
	mock.calls.RecomputeText = append(mock.calls.RecomputeText, callInfo)
	mock.lockRecomputeText.Unlock()
	return mock.RecomputeTextFunc(ctx, textID)
}

func (mock *recomputerMock) RecomputeTextCalls() []struct {
	Ctx    context.Context
	TextID string
} {
	mock.lockRecomputeText.RLock()
	calls := mock.calls.RecomputeText
	mock.lockRecomputeText.RUnlock()
	return calls
}

func (mock *recomputerMock) RecomputeCollection(ctx context.Context, collectionID string) (domain.CollectionStats, error) {
	if mock.RecomputeCollectionFunc == nil {
		panic("recomputerMock.RecomputeCollectionFunc: method is nil but recomputer.RecomputeCollection was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CollectionID string
	}{Ctx: ctx, CollectionID: collectionID}
	mock.lockRecomputeCollection.Lock()
	mock.calls.RecomputeCollection = append(mock.calls.RecomputeCollection, callInfo)
	mock.lockRecomputeCollection.Unlock()
	return mock.RecomputeCollectionFunc(ctx, collectionID)
}

func (mock *recomputerMock) RecomputeCollectionCalls() []struct {
	Ctx          context.Context
	CollectionID string
} {
	mock.lockRecomputeCollection.RLock()
	calls := mock.calls.RecomputeCollection
	mock.lockRecomputeCollection.RUnlock()
	return calls
}
