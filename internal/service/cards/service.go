package cards

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardStore interface {
	Get(ctx context.Context, id string) (domain.Card, error)
	List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	Update(ctx context.Context, card domain.Card) error
	Delete(ctx context.Context, id string) error
}

type recomputer interface {
	RecomputeText(ctx context.Context, textID string) (domain.TextStats, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements card management. Mutations that can change a text's
// comprehension (creating, re-leveling, or deleting a card) refresh the
// cached statistics of the card's source text.
type Service struct {
	store cardStore
	stats recomputer
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new cards service.
func NewService(log *slog.Logger, store cardStore, stats recomputer) *Service {
	return &Service{
		store: store,
		stats: stats,
		log:   log.With("service", "cards"),
		now:   time.Now,
	}
}

// Create validates and stores a new card. A card with the same normalized
// word from the same source text already existing is a conflict.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Card, error) {
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	word := domain.NormalizeWord(input.Word)

	siblings, err := s.store.List(ctx, domain.CardFilter{SourceTextID: input.SourceTextID})
	if err != nil {
		return domain.Card{}, fmt.Errorf("list cards: %w", err)
	}
	for _, c := range siblings {
		// An empty SourceTextID filter means "no restriction" to the store,
		// so re-check membership here: a standalone card only conflicts with
		// other standalone cards, never with one harvested from a text.
		if c.SourceTextID != input.SourceTextID {
			continue
		}
		if domain.NormalizeWord(c.Word) == word {
			return domain.Card{}, fmt.Errorf("word %q: %w", input.Word, domain.ErrAlreadyExists)
		}
	}

	now := s.now()
	card := domain.Card{
		Word:         input.Word,
		Translation:  input.Translation,
		Notes:        input.Notes,
		Context:      input.Context,
		SourceTextID: input.SourceTextID,
		Level:        domain.MinLevel,
		EaseFactor:   domain.DefaultEaseFactor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.store.Create(ctx, card)
	if err != nil {
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", created.ID),
		slog.String("word", created.Word),
		slog.String("source_text_id", created.SourceTextID),
	)

	if err := s.recompute(ctx, created.SourceTextID); err != nil {
		return domain.Card{}, err
	}
	return created, nil
}

// Get returns one card by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Card, error) {
	if id == "" {
		return domain.Card{}, domain.NewValidationError("id", "required")
	}
	card, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// List returns cards matching the filter.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	cards, err := s.store.List(ctx, domain.CardFilter{
		SourceTextID: input.SourceTextID,
		Level:        input.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// Update applies a manual edit to a card. Review state (counters, scheduling,
// history) is owned by the review engine and cannot be edited here, except
// for the level which the app exposes as a manual override.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Card, error) {
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	card, err := s.store.Get(ctx, input.ID)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get card: %w", err)
	}

	levelChanged := false
	if input.Word != nil {
		card.Word = *input.Word
	}
	if input.Translation != nil {
		card.Translation = *input.Translation
	}
	if input.Notes != nil {
		card.Notes = *input.Notes
	}
	if input.Context != nil {
		card.Context = *input.Context
	}
	if input.Level != nil && *input.Level != card.Level {
		card.Level = *input.Level
		levelChanged = true
	}
	card.UpdatedAt = s.now()

	if err := s.store.Update(ctx, card); err != nil {
		return domain.Card{}, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("card_id", card.ID),
		slog.Bool("level_changed", levelChanged),
	)

	// Word and level edits both shift the source text's known-word set.
	if input.Word != nil || levelChanged {
		if err := s.recompute(ctx, card.SourceTextID); err != nil {
			return domain.Card{}, err
		}
	}
	return card, nil
}

// Delete removes a card and refreshes its source text's statistics.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	card, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get card: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted", slog.String("card_id", id))

	return s.recompute(ctx, card.SourceTextID)
}

func (s *Service) recompute(ctx context.Context, textID string) error {
	if textID == "" {
		return nil
	}
	if _, err := s.stats.RecomputeText(ctx, textID); err != nil {
		return fmt.Errorf("recompute text stats: %w", err)
	}
	return nil
}
