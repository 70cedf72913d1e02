package review

import (
	"math/rand"
	"sort"
	"time"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// buildQueue samples the eligible pool and doubles the sample, so every card
// is seen twice per session with the second pass in an independent order.
func buildQueue(pool []domain.Card, method domain.ReviewMethod, size int, now time.Time, rng *rand.Rand) []domain.Card {
	var eligible []domain.Card
	switch method {
	case domain.ReviewMethodSpaced:
		eligible = dueCards(pool, now)
		sortByNextReview(eligible)
	default:
		eligible = shuffled(pool, rng)
	}

	if size > len(eligible) {
		size = len(eligible)
	}
	sample := eligible[:size]

	queue := make([]domain.Card, 0, 2*size)
	queue = append(queue, sample...)
	queue = append(queue, shuffled(sample, rng)...)
	return queue
}

func dueCards(pool []domain.Card, now time.Time) []domain.Card {
	out := make([]domain.Card, 0, len(pool))
	for _, c := range pool {
		if c.IsDue(now) {
			out = append(out, c)
		}
	}
	return out
}

// sortByNextReview orders most overdue first. Cards that were never
// scheduled (nil NextReview) sort before everything else, keeping their
// relative order.
func sortByNextReview(cards []domain.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i].NextReview, cards[j].NextReview
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
}

// shuffled returns a Fisher-Yates shuffled copy, leaving the input intact.
func shuffled(cards []domain.Card, rng *rand.Rand) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
