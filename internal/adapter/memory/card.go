// Package memory provides map-backed stores with the same contract as the
// MongoDB repositories. They back service tests and offline single-user runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// CardStore is an in-memory card repository.
type CardStore struct {
	mu    sync.RWMutex
	cards map[string]domain.Card
}

// NewCardStore creates an empty card store.
func NewCardStore() *CardStore {
	return &CardStore{cards: make(map[string]domain.Card)}
}

// copyCard detaches the aliased history slice and time pointers so callers
// can never mutate stored state through a returned card.
func copyCard(c domain.Card) domain.Card {
	out := c
	if c.NextReview != nil {
		next := *c.NextReview
		out.NextReview = &next
	}
	if c.LastReviewed != nil {
		last := *c.LastReviewed
		out.LastReviewed = &last
	}
	if len(c.History) > 0 {
		out.History = make([]domain.ReviewEvent, len(c.History))
		copy(out.History, c.History)
	}
	return out
}

// Get returns one card by id.
func (s *CardStore) Get(_ context.Context, id string) (domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cards[id]
	if !ok {
		return domain.Card{}, fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return copyCard(c), nil
}

// List returns cards matching the filter, newest first.
func (s *CardStore) List(_ context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cards []domain.Card
	for _, c := range s.cards {
		if filter.SourceTextID != "" && c.SourceTextID != filter.SourceTextID {
			continue
		}
		if filter.Level != nil && c.Level != *filter.Level {
			continue
		}
		cards = append(cards, copyCard(c))
	}

	sort.Slice(cards, func(i, j int) bool {
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		}
		return cards[i].ID < cards[j].ID
	})
	return cards, nil
}

// Create inserts a new card and returns it with the assigned id.
func (s *CardStore) Create(_ context.Context, card domain.Card) (domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card.ID = uuid.NewString()
	s.cards[card.ID] = copyCard(card)
	return card, nil
}

// Update replaces the stored card.
func (s *CardStore) Update(_ context.Context, card domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[card.ID]; !ok {
		return fmt.Errorf("card %s: %w", card.ID, domain.ErrNotFound)
	}
	s.cards[card.ID] = copyCard(card)
	return nil
}

// Delete removes a card.
func (s *CardStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[id]; !ok {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	delete(s.cards, id)
	return nil
}

// DetachText clears the source-text reference on all cards of a deleted
// text. Returns the number of detached cards.
func (s *CardStore) DetachText(_ context.Context, textID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, c := range s.cards {
		if c.SourceTextID == textID {
			c.SourceTextID = ""
			s.cards[id] = c
			n++
		}
	}
	return n, nil
}
