package domain

import (
	"time"
)

// Level bounds and the default SM-2 ease factor for new cards.
const (
	MinLevel = 0
	MaxLevel = 5

	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5
)

// Card is a flashcard harvested from a text: a word with its translation,
// level progression, and spaced-repetition scheduling state.
type Card struct {
	ID           string
	Word         string
	Translation  string
	Notes        string
	Context      string
	SourceTextID string // weak reference; empty when the card was created standalone
	Level        int    // 0 = New .. 5 = Known, always clamped
	ReviewCount  int
	CorrectCount int
	EaseFactor   float64
	IntervalDays int
	NextReview   *time.Time // nil means eligible immediately
	LastReviewed *time.Time
	History      []ReviewEvent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReviewEvent is one append-only entry of a card's review history.
type ReviewEvent struct {
	Date         time.Time
	Correct      bool
	IntervalDays int
	Mode         ReviewMode
}

// IsDue returns true if the card is eligible for a spaced review at the
// given time. A card without a scheduled next review is always due.
func (c *Card) IsDue(now time.Time) bool {
	if c.NextReview == nil {
		return true
	}
	return !c.NextReview.After(now)
}

// ReviewUpdate holds the card fields recomputed by the scheduling policy
// after a single answer. Quick-mode updates leave the scheduling fields nil.
type ReviewUpdate struct {
	Level        int
	ReviewCount  int
	CorrectCount int
	LastReviewed time.Time

	// Deep-mode scheduling fields; nil in quick mode.
	EaseFactor   *float64
	IntervalDays *int
	NextReview   *time.Time
	HistoryEntry *ReviewEvent
}

// Apply returns a copy of the card with the update applied, the same way a
// store materializes it after persisting.
func (u ReviewUpdate) Apply(c Card) Card {
	c.Level = u.Level
	c.ReviewCount = u.ReviewCount
	c.CorrectCount = u.CorrectCount
	t := u.LastReviewed
	c.LastReviewed = &t
	if u.EaseFactor != nil {
		c.EaseFactor = *u.EaseFactor
	}
	if u.IntervalDays != nil {
		c.IntervalDays = *u.IntervalDays
	}
	if u.NextReview != nil {
		nr := *u.NextReview
		c.NextReview = &nr
	}
	if u.HistoryEntry != nil {
		c.History = append(c.History, *u.HistoryEntry)
	}
	c.UpdatedAt = u.LastReviewed
	return c
}

// ClampLevel forces a level into the [MinLevel, MaxLevel] range.
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ClampEase forces an ease factor into the [MinEaseFactor, MaxEaseFactor] range.
func ClampEase(ease float64) float64 {
	if ease < MinEaseFactor {
		return MinEaseFactor
	}
	if ease > MaxEaseFactor {
		return MaxEaseFactor
	}
	return ease
}

// CardFilter restricts card listings. Zero values mean "no restriction".
type CardFilter struct {
	SourceTextID string
	Level        *int
}
