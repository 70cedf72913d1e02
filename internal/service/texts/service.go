package texts

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

type textStore interface {
	Get(ctx context.Context, id string) (domain.Text, error)
	List(ctx context.Context) ([]domain.Text, error)
	ListByCollection(ctx context.Context, collectionID string) ([]domain.Text, error)
	Create(ctx context.Context, text domain.Text) (domain.Text, error)
	Update(ctx context.Context, text domain.Text) error
	Delete(ctx context.Context, id string) error
}

type cardStore interface {
	DetachText(ctx context.Context, textID string) (int, error)
}

type recomputer interface {
	RecomputeText(ctx context.Context, textID string) (domain.TextStats, error)
	RecomputeCollection(ctx context.Context, collectionID string) (domain.CollectionStats, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements text management. Texts never own their cards: deleting
// a text detaches its cards instead of removing them, and the affected
// collection statistics are refreshed after every membership change.
type Service struct {
	store textStore
	cards cardStore
	stats recomputer
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new texts service.
func NewService(log *slog.Logger, store textStore, cards cardStore, stats recomputer) *Service {
	return &Service{
		store: store,
		cards: cards,
		stats: stats,
		log:   log.With("service", "texts"),
		now:   time.Now,
	}
}

// Create validates and stores a new text. The word count is computed at
// upload; comprehension starts at zero until cards are harvested.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Text, error) {
	if err := input.Validate(); err != nil {
		return domain.Text{}, err
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyIntermediate
	}

	text := domain.Text{
		Title:        input.Title,
		Content:      input.Content,
		Difficulty:   difficulty,
		CollectionID: input.CollectionID,
		TotalWords:   len(domain.Tokenize(input.Content)),
		DateAdded:    s.now(),
	}

	created, err := s.store.Create(ctx, text)
	if err != nil {
		return domain.Text{}, fmt.Errorf("create text: %w", err)
	}

	s.log.InfoContext(ctx, "text created",
		slog.String("text_id", created.ID),
		slog.String("title", created.Title),
		slog.Int("total_words", created.TotalWords),
	)

	if created.CollectionID != "" {
		if _, err := s.stats.RecomputeCollection(ctx, created.CollectionID); err != nil {
			return domain.Text{}, fmt.Errorf("recompute collection stats: %w", err)
		}
	}
	return created, nil
}

// Get returns one text by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Text, error) {
	if id == "" {
		return domain.Text{}, domain.NewValidationError("id", "required")
	}
	text, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Text{}, fmt.Errorf("get text: %w", err)
	}
	return text, nil
}

// List returns all texts, or only a collection's members when the filter
// names one.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Text, error) {
	var (
		texts []domain.Text
		err   error
	)
	if input.CollectionID != "" {
		texts, err = s.store.ListByCollection(ctx, input.CollectionID)
	} else {
		texts, err = s.store.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}
	return texts, nil
}

// Update applies an edit to a text. A content change refreshes the text's
// own statistics; a collection move refreshes both the old and the new
// collection.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Text, error) {
	if err := input.Validate(); err != nil {
		return domain.Text{}, err
	}

	text, err := s.store.Get(ctx, input.ID)
	if err != nil {
		return domain.Text{}, fmt.Errorf("get text: %w", err)
	}

	oldCollection := text.CollectionID
	contentChanged := false

	if input.Title != nil {
		text.Title = *input.Title
	}
	if input.Content != nil && *input.Content != text.Content {
		text.Content = *input.Content
		text.TotalWords = len(domain.Tokenize(text.Content))
		contentChanged = true
	}
	if input.Difficulty != nil {
		text.Difficulty = *input.Difficulty
	}
	if input.CollectionID != nil {
		text.CollectionID = *input.CollectionID
	}

	if err := s.store.Update(ctx, text); err != nil {
		return domain.Text{}, fmt.Errorf("update text: %w", err)
	}

	s.log.InfoContext(ctx, "text updated",
		slog.String("text_id", text.ID),
		slog.Bool("content_changed", contentChanged),
		slog.Bool("collection_changed", oldCollection != text.CollectionID),
	)

	if contentChanged {
		if _, err := s.stats.RecomputeText(ctx, text.ID); err != nil {
			return domain.Text{}, fmt.Errorf("recompute text stats: %w", err)
		}
	}

	if oldCollection != text.CollectionID {
		for _, colID := range []string{oldCollection, text.CollectionID} {
			if colID == "" {
				continue
			}
			if _, err := s.stats.RecomputeCollection(ctx, colID); err != nil {
				return domain.Text{}, fmt.Errorf("recompute collection stats: %w", err)
			}
		}
	}

	// Re-read so the caller sees the refreshed cached statistics.
	updated, err := s.store.Get(ctx, text.ID)
	if err != nil {
		return domain.Text{}, fmt.Errorf("reload text: %w", err)
	}
	return updated, nil
}

// AttachAudio stores recording metadata on a text. The media itself lives
// elsewhere; only the opaque description is kept.
func (s *Service) AttachAudio(ctx context.Context, id string, audio domain.AudioMeta) (domain.Text, error) {
	if id == "" {
		return domain.Text{}, domain.NewValidationError("id", "required")
	}
	if audio.URL == "" {
		return domain.Text{}, domain.NewValidationError("audio.url", "required")
	}

	text, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Text{}, fmt.Errorf("get text: %w", err)
	}

	text.Audio = &audio
	if err := s.store.Update(ctx, text); err != nil {
		return domain.Text{}, fmt.Errorf("update text: %w", err)
	}

	s.log.InfoContext(ctx, "audio attached",
		slog.String("text_id", id),
		slog.String("file_name", audio.FileName),
	)
	return text, nil
}

// Delete removes a text. Its cards survive as standalone cards, and the
// text's former collection is refreshed.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	text, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get text: %w", err)
	}

	detached, err := s.cards.DetachText(ctx, id)
	if err != nil {
		return fmt.Errorf("detach cards: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete text: %w", err)
	}

	s.log.InfoContext(ctx, "text deleted",
		slog.String("text_id", id),
		slog.Int("cards_detached", detached),
	)

	if text.CollectionID != "" {
		if _, err := s.stats.RecomputeCollection(ctx, text.CollectionID); err != nil {
			return fmt.Errorf("recompute collection stats: %w", err)
		}
	}
	return nil
}
