package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// CollectionStore is an in-memory collection repository.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]domain.Collection
}

// NewCollectionStore creates an empty collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{collections: make(map[string]domain.Collection)}
}

func copyCollection(c domain.Collection) domain.Collection {
	out := c
	out.Stats = copyStats(c.Stats)
	return out
}

func copyStats(s domain.CollectionStats) domain.CollectionStats {
	out := s
	out.DifficultyDistribution = make(map[domain.Difficulty]int, len(s.DifficultyDistribution))
	for d, n := range s.DifficultyDistribution {
		out.DifficultyDistribution[d] = n
	}
	return out
}

// Get returns one collection by id.
func (s *CollectionStore) Get(_ context.Context, id string) (domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	if !ok {
		return domain.Collection{}, fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return copyCollection(c), nil
}

// List returns all collections, newest first.
func (s *CollectionStore) List(_ context.Context) ([]domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var collections []domain.Collection
	for _, c := range s.collections {
		collections = append(collections, copyCollection(c))
	}

	sort.Slice(collections, func(i, j int) bool {
		if !collections[i].DateCreated.Equal(collections[j].DateCreated) {
			return collections[i].DateCreated.After(collections[j].DateCreated)
		}
		return collections[i].ID < collections[j].ID
	})
	return collections, nil
}

// Create inserts a new collection and returns it with the assigned id.
func (s *CollectionStore) Create(_ context.Context, collection domain.Collection) (domain.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection.ID = uuid.NewString()
	s.collections[collection.ID] = copyCollection(collection)
	return collection, nil
}

// Update replaces the stored collection.
func (s *CollectionStore) Update(_ context.Context, collection domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection.ID]; !ok {
		return fmt.Errorf("collection %s: %w", collection.ID, domain.ErrNotFound)
	}
	s.collections[collection.ID] = copyCollection(collection)
	return nil
}

// UpdateStats writes only the cached statistics block.
func (s *CollectionStore) UpdateStats(_ context.Context, id string, stats domain.CollectionStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[id]
	if !ok {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	c.Stats = copyStats(stats)
	s.collections[id] = c
	return nil
}

// Delete removes a collection.
func (s *CollectionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	delete(s.collections, id)
	return nil
}
