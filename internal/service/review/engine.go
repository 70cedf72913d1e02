package review

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/linguareader-backend/internal/config"
	"github.com/mpetrenko/linguareader-backend/internal/domain"
	"github.com/mpetrenko/linguareader-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardStore interface {
	List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	Update(ctx context.Context, card domain.Card) error
}

type textStore interface {
	ListByCollection(ctx context.Context, collectionID string) ([]domain.Text, error)
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Engine drives one review session at a time through its lifecycle:
// Idle -> Configuring -> InProgress -> Complete -> Idle.
//
// All methods are safe for concurrent use; Answer is additionally
// non-reentrant and rejects overlapping calls with ErrConflict.
type Engine struct {
	cards cardStore
	texts textStore
	log   *slog.Logger
	cfg   config.ReviewConfig

	now func() time.Time
	rng *rand.Rand

	mu        sync.Mutex
	state     domain.SessionState
	filters   Filters
	sessionID string
	queue     []domain.Card
	pos       int
	stats     SessionStats
	startedAt time.Time
	answering bool
}

// NewEngine creates a review engine. A zero ShuffleSeed seeds the queue
// shuffle from the wall clock; any other value makes sessions reproducible.
func NewEngine(log *slog.Logger, cards cardStore, texts textStore, cfg config.ReviewConfig) *Engine {
	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cards: cards,
		texts: texts,
		log:   log.With("service", "review"),
		cfg:   cfg,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(seed)),
		state: domain.SessionStateIdle,
	}
}

// Configure validates and stores the session setup. It has no side effects
// and may be called again to adjust the setup before Start. It is rejected
// while a session is in progress.
func (e *Engine) Configure(f Filters) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == domain.SessionStateInProgress {
		return fmt.Errorf("configure: session in progress: %w", domain.ErrConflict)
	}

	e.applyDefaults(&f)
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Size > e.cfg.MaxSessionSize {
		return domain.NewValidationError("size", fmt.Sprintf("max %d", e.cfg.MaxSessionSize))
	}
	if f.Mode == domain.ReviewModeDeep {
		if f.Duration < e.cfg.MinDuration || f.Duration > e.cfg.MaxDuration {
			return domain.NewValidationError("duration",
				fmt.Sprintf("must be between %v and %v", e.cfg.MinDuration, e.cfg.MaxDuration))
		}
	}

	e.filters = f
	e.state = domain.SessionStateConfiguring
	return nil
}

// applyDefaults fills zero-value filter fields from the engine config.
func (e *Engine) applyDefaults(f *Filters) {
	if f.Size == 0 {
		f.Size = e.cfg.DefaultSessionSize
	}
	if f.Format == "" {
		f.Format = domain.CardFormatNormal
	}
	if f.Method == "" {
		f.Method = domain.ReviewMethodSpaced
	}
	if f.Mode == "" {
		f.Mode = domain.ReviewModeQuick
	}
	if f.Mode == domain.ReviewModeDeep {
		if f.Duration == 0 {
			f.Duration = e.cfg.DefaultDuration
		}
		if !f.EnforceDuration {
			f.EnforceDuration = e.cfg.EnforceDuration
		}
	}
}

// Start builds the session queue from the configured filters and moves the
// session to InProgress. An empty queue returns ErrNoCardsAvailable and
// leaves the state unchanged so the setup can be adjusted.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != domain.SessionStateConfiguring {
		return fmt.Errorf("start: session not configured: %w", domain.ErrConflict)
	}

	now := e.now()

	pool, err := e.loadPool(ctx)
	if err != nil {
		return fmt.Errorf("load card pool: %w", err)
	}

	queue := buildQueue(pool, e.filters.Method, e.filters.Size, now, e.rng)
	if len(queue) == 0 {
		return domain.ErrNoCardsAvailable
	}

	e.sessionID = uuid.NewString()
	e.queue = queue
	e.pos = 0
	e.stats = SessionStats{}
	e.startedAt = now
	e.state = domain.SessionStateInProgress

	e.log.InfoContext(ctxutil.WithSessionID(ctx, e.sessionID), "review session started",
		slog.String("mode", e.filters.Mode.String()),
		slog.String("method", e.filters.Method.String()),
		slog.Int("queue_size", len(queue)),
	)

	return nil
}

// loadPool fetches the candidate cards for the configured filters.
// The collection filter is resolved through its member texts because cards
// only reference their source text.
func (e *Engine) loadPool(ctx context.Context) ([]domain.Card, error) {
	pool, err := e.cards.List(ctx, domain.CardFilter{
		SourceTextID: e.filters.TextID,
		Level:        e.filters.Level,
	})
	if err != nil {
		return nil, err
	}

	if e.filters.CollectionID == "" {
		return pool, nil
	}

	texts, err := e.texts.ListByCollection(ctx, e.filters.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("list collection texts: %w", err)
	}
	member := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		member[t.ID] = struct{}{}
	}

	filtered := make([]domain.Card, 0, len(pool))
	for _, c := range pool {
		if _, ok := member[c.SourceTextID]; ok {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Answer grades the current card, persists the new card state, and advances
// the queue. The position and stats move only after a successful store
// write, so a failed write can be retried with the same card.
func (e *Engine) Answer(ctx context.Context, correct bool) (domain.Card, error) {
	e.mu.Lock()
	if e.state != domain.SessionStateInProgress || e.pos >= len(e.queue) {
		e.mu.Unlock()
		return domain.Card{}, domain.ErrNoActiveSession
	}
	if e.answering {
		e.mu.Unlock()
		return domain.Card{}, fmt.Errorf("answer already in flight: %w", domain.ErrConflict)
	}

	ctx = ctxutil.WithSessionID(ctx, e.sessionID)

	now := e.now()
	if e.expiredLocked(now) {
		e.completeLocked(ctx, "duration enforced")
		e.mu.Unlock()
		return domain.Card{}, domain.ErrSessionExpired
	}

	card := e.queue[e.pos]
	updated := NextState(card, correct, e.filters.Mode, now).Apply(card)
	e.answering = true
	e.mu.Unlock()

	// Store call happens outside the lock; the answering flag keeps the
	// session frozen meanwhile.
	err := e.cards.Update(ctx, updated)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.answering = false

	if err != nil {
		return domain.Card{}, fmt.Errorf("persist review: %w", err)
	}

	// The second showing of this card must build on the state just written.
	for i := e.pos; i < len(e.queue); i++ {
		if e.queue[i].ID == updated.ID {
			e.queue[i] = updated
		}
	}

	e.pos++
	e.stats.TotalReviewed++
	e.stats.LevelChanges[updated.Level]++
	if correct {
		e.stats.CorrectCount++
		e.stats.Streak++
		if e.stats.Streak > e.stats.BestStreak {
			e.stats.BestStreak = e.stats.Streak
		}
	} else {
		e.stats.Streak = 0
	}

	if e.pos >= len(e.queue) {
		e.completeLocked(ctx, "queue exhausted")
	}

	return updated, nil
}

// TimeRemaining reports the countdown for timed sessions. The second return
// is false when the session is untimed or not running.
func (e *Engine) TimeRemaining() (time.Duration, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != domain.SessionStateInProgress || e.filters.Duration == 0 {
		return 0, false
	}
	left := e.filters.Duration - e.now().Sub(e.startedAt)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Restart returns a completed session to Idle. Filters are kept so the same
// setup can be offered again on the next configuration step.
func (e *Engine) Restart() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != domain.SessionStateComplete {
		return fmt.Errorf("restart: session not complete: %w", domain.ErrConflict)
	}

	e.queue = nil
	e.pos = 0
	e.stats = SessionStats{}
	e.sessionID = ""
	e.state = domain.SessionStateIdle
	return nil
}

// Current returns the card awaiting an answer.
func (e *Engine) Current() (domain.Card, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != domain.SessionStateInProgress || e.pos >= len(e.queue) {
		return domain.Card{}, false
	}
	return e.queue[e.pos], true
}

// Progress reports the answered/total position in the queue.
func (e *Engine) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Progress{Position: e.pos, Total: len(e.queue)}
}

// Stats returns the session accounting so far.
func (e *Engine) Stats() SessionStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// State returns the current lifecycle state.
func (e *Engine) State() domain.SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SessionID returns the identifier of the running or just-completed session,
// empty when idle.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// Filters returns the active session setup, defaults applied.
func (e *Engine) Filters() Filters {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filters
}

func (e *Engine) expiredLocked(now time.Time) bool {
	return e.filters.EnforceDuration &&
		e.filters.Duration > 0 &&
		now.Sub(e.startedAt) >= e.filters.Duration
}

func (e *Engine) completeLocked(ctx context.Context, reason string) {
	e.state = domain.SessionStateComplete
	e.log.InfoContext(ctx, "review session complete",
		slog.String("reason", reason),
		slog.Int("reviewed", e.stats.TotalReviewed),
		slog.Int("correct", e.stats.CorrectCount),
		slog.Int("best_streak", e.stats.BestStreak),
	)
}
