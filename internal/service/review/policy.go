package review

import (
	"math"
	"time"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// Answers are binary, so only the two extreme SM-2 performance grades are used.
const (
	performanceCorrect   = 5.0
	performanceIncorrect = 1.0
)

// NextState computes the card changes for a single answer.
// Pure function. No DB, no context, no logger.
//
// Both modes move the level and the counters. Deep mode additionally runs
// the SM-2 scheduling step: interval, ease factor, next review date, and
// one appended history event.
func NextState(card domain.Card, correct bool, mode domain.ReviewMode, now time.Time) domain.ReviewUpdate {
	update := domain.ReviewUpdate{
		Level:        nextLevel(card, correct),
		ReviewCount:  card.ReviewCount + 1,
		CorrectCount: card.CorrectCount,
		LastReviewed: now,
	}
	if correct {
		update.CorrectCount++
	}

	if mode != domain.ReviewModeDeep {
		return update
	}

	perf := performanceIncorrect
	if correct {
		perf = performanceCorrect
	}

	ease := card.EaseFactor
	if ease == 0 {
		// Cards written before scheduling existed carry no ease factor.
		ease = domain.DefaultEaseFactor
	}

	interval := nextInterval(card.IntervalDays, ease, perf)
	newEase := nextEase(ease, perf)
	next := now.AddDate(0, 0, interval)

	update.IntervalDays = &interval
	update.EaseFactor = &newEase
	update.NextReview = &next
	update.HistoryEntry = &domain.ReviewEvent{
		Date:         now,
		Correct:      correct,
		IntervalDays: interval,
		Mode:         domain.ReviewModeDeep,
	}

	return update
}

// nextLevel applies the level ladder. A correct answer raises the level only
// when the pre-answer correct count is even, so repeated correct answers
// alternate between advancing and holding. An incorrect answer always lowers.
func nextLevel(card domain.Card, correct bool) int {
	if !correct {
		return domain.ClampLevel(card.Level - 1)
	}
	if card.CorrectCount%2 == 0 {
		return domain.ClampLevel(card.Level + 1)
	}
	return card.Level
}

// nextInterval is the SM-2 interval step. A zero stored interval means the
// card was never scheduled and counts as 1 day.
func nextInterval(intervalDays int, ease, perf float64) int {
	if intervalDays == 0 {
		intervalDays = 1
	}
	switch {
	case perf >= 4:
		return int(math.Round(float64(intervalDays) * ease))
	case perf >= 2:
		return intervalDays
	default:
		return 1
	}
}

// nextEase is the SM-2 ease update, clamped to the domain bounds.
func nextEase(ease, perf float64) float64 {
	q := 5 - perf
	return domain.ClampEase(ease + (0.1 - q*(0.08+q*0.02)))
}
