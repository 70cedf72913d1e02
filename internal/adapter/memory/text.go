package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// TextStore is an in-memory text repository.
type TextStore struct {
	mu    sync.RWMutex
	texts map[string]domain.Text
}

// NewTextStore creates an empty text store.
func NewTextStore() *TextStore {
	return &TextStore{texts: make(map[string]domain.Text)}
}

func copyText(t domain.Text) domain.Text {
	out := t
	if t.Audio != nil {
		audio := *t.Audio
		out.Audio = &audio
	}
	return out
}

// Get returns one text by id.
func (s *TextStore) Get(_ context.Context, id string) (domain.Text, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.texts[id]
	if !ok {
		return domain.Text{}, fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}
	return copyText(t), nil
}

// List returns all texts, newest first.
func (s *TextStore) List(_ context.Context) ([]domain.Text, error) {
	return s.list(func(domain.Text) bool { return true })
}

// ListByCollection returns the member texts of a collection.
func (s *TextStore) ListByCollection(_ context.Context, collectionID string) ([]domain.Text, error) {
	return s.list(func(t domain.Text) bool { return t.CollectionID == collectionID })
}

func (s *TextStore) list(keep func(domain.Text) bool) ([]domain.Text, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var texts []domain.Text
	for _, t := range s.texts {
		if keep(t) {
			texts = append(texts, copyText(t))
		}
	}

	sort.Slice(texts, func(i, j int) bool {
		if !texts[i].DateAdded.Equal(texts[j].DateAdded) {
			return texts[i].DateAdded.After(texts[j].DateAdded)
		}
		return texts[i].ID < texts[j].ID
	})
	return texts, nil
}

// Create inserts a new text and returns it with the assigned id.
func (s *TextStore) Create(_ context.Context, text domain.Text) (domain.Text, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text.ID = uuid.NewString()
	s.texts[text.ID] = copyText(text)
	return text, nil
}

// Update replaces the stored text.
func (s *TextStore) Update(_ context.Context, text domain.Text) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.texts[text.ID]; !ok {
		return fmt.Errorf("text %s: %w", text.ID, domain.ErrNotFound)
	}
	s.texts[text.ID] = copyText(text)
	return nil
}

// UpdateStats writes only the cached statistics block.
func (s *TextStore) UpdateStats(_ context.Context, id string, stats domain.TextStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.texts[id]
	if !ok {
		return fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}
	t.TotalWords = stats.TotalWords
	t.KnownWords = stats.KnownWords
	t.Comprehension = stats.Comprehension
	s.texts[id] = t
	return nil
}

// Delete removes a text.
func (s *TextStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.texts[id]; !ok {
		return fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}
	delete(s.texts, id)
	return nil
}

// DetachCollection removes the collection reference from all member texts
// of a deleted collection. Returns the number of detached texts.
func (s *TextStore) DetachCollection(_ context.Context, collectionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, t := range s.texts {
		if t.CollectionID == collectionID {
			t.CollectionID = ""
			s.texts[id] = t
			n++
		}
	}
	return n, nil
}
