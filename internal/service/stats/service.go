package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardStore interface {
	List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
}

type textStore interface {
	Get(ctx context.Context, id string) (domain.Text, error)
	List(ctx context.Context) ([]domain.Text, error)
	ListByCollection(ctx context.Context, collectionID string) ([]domain.Text, error)
	UpdateStats(ctx context.Context, id string, stats domain.TextStats) error
}

type collectionStore interface {
	List(ctx context.Context) ([]domain.Collection, error)
	UpdateStats(ctx context.Context, id string, stats domain.CollectionStats) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service recomputes the cached text and collection statistics. Every
// recompute works from the full current state; there is no incremental path,
// which keeps the caches reproducible at any time.
type Service struct {
	cards       cardStore
	texts       textStore
	collections collectionStore
	log         *slog.Logger
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, cards cardStore, texts textStore, collections collectionStore) *Service {
	return &Service{
		cards:       cards,
		texts:       texts,
		collections: collections,
		log:         log.With("service", "stats"),
	}
}

// RecomputeText recomputes and persists one text's statistics. If the text
// belongs to a collection, the collection's statistics are refreshed too,
// since its average depends on the text's comprehension.
func (s *Service) RecomputeText(ctx context.Context, textID string) (domain.TextStats, error) {
	text, err := s.texts.Get(ctx, textID)
	if err != nil {
		return domain.TextStats{}, fmt.Errorf("get text: %w", err)
	}

	cards, err := s.cards.List(ctx, domain.CardFilter{SourceTextID: textID})
	if err != nil {
		return domain.TextStats{}, fmt.Errorf("list cards: %w", err)
	}

	stats := ComputeTextStats(text, cards)
	if err := s.texts.UpdateStats(ctx, textID, stats); err != nil {
		return domain.TextStats{}, fmt.Errorf("update text stats: %w", err)
	}

	s.log.InfoContext(ctx, "text stats recomputed",
		slog.String("text_id", textID),
		slog.Int("total_words", stats.TotalWords),
		slog.Int("known_words", stats.KnownWords),
		slog.Int("comprehension", stats.Comprehension),
	)

	if text.CollectionID != "" {
		if _, err := s.RecomputeCollection(ctx, text.CollectionID); err != nil {
			return domain.TextStats{}, fmt.Errorf("cascade to collection: %w", err)
		}
	}

	return stats, nil
}

// RecomputeCollection recomputes and persists one collection's statistics
// from its current member texts.
func (s *Service) RecomputeCollection(ctx context.Context, collectionID string) (domain.CollectionStats, error) {
	members, err := s.texts.ListByCollection(ctx, collectionID)
	if err != nil {
		return domain.CollectionStats{}, fmt.Errorf("list member texts: %w", err)
	}

	stats := ComputeCollectionStats(collectionID, members)
	if err := s.collections.UpdateStats(ctx, collectionID, stats); err != nil {
		return domain.CollectionStats{}, fmt.Errorf("update collection stats: %w", err)
	}

	s.log.InfoContext(ctx, "collection stats recomputed",
		slog.String("collection_id", collectionID),
		slog.Int("total_texts", stats.TotalTexts),
		slog.Int("average_comprehension", stats.AverageComprehension),
	)

	return stats, nil
}

// RecomputeAll rebuilds every cached statistic from scratch: all texts
// first, then all collections over the fresh text values.
func (s *Service) RecomputeAll(ctx context.Context) error {
	texts, err := s.texts.List(ctx)
	if err != nil {
		return fmt.Errorf("list texts: %w", err)
	}

	for _, text := range texts {
		cards, err := s.cards.List(ctx, domain.CardFilter{SourceTextID: text.ID})
		if err != nil {
			return fmt.Errorf("list cards for text %s: %w", text.ID, err)
		}
		stats := ComputeTextStats(text, cards)
		if err := s.texts.UpdateStats(ctx, text.ID, stats); err != nil {
			return fmt.Errorf("update stats for text %s: %w", text.ID, err)
		}
	}

	collections, err := s.collections.List(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	for _, col := range collections {
		if _, err := s.RecomputeCollection(ctx, col.ID); err != nil {
			return fmt.Errorf("recompute collection %s: %w", col.ID, err)
		}
	}

	s.log.InfoContext(ctx, "full stats recompute finished",
		slog.Int("texts", len(texts)),
		slog.Int("collections", len(collections)),
	)

	return nil
}
