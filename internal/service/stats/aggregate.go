package stats

import (
	"math"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// KnownLevelThreshold is the level a card must exceed for its word to count
// as known when computing comprehension.
const KnownLevelThreshold = 3

// ComputeTextStats derives the word counters and comprehension percentage
// for a text from the current card set. Pure function. Cards belonging to
// other texts are ignored, so callers may pass an unfiltered slice.
//
// Comprehension is the share of distinct normalized words covered by a
// known card, rounded to a whole percent. An empty text scores zero.
func ComputeTextStats(text domain.Text, cards []domain.Card) domain.TextStats {
	tokens := domain.Tokenize(text.Content)
	total := len(tokens)
	if total == 0 {
		return domain.TextStats{}
	}

	knownWords := make(map[string]struct{})
	for _, c := range cards {
		if c.SourceTextID != text.ID || c.Level <= KnownLevelThreshold {
			continue
		}
		if w := domain.NormalizeWord(c.Word); w != "" {
			knownWords[w] = struct{}{}
		}
	}

	distinct := make(map[string]struct{}, total)
	for _, tok := range tokens {
		if w := domain.NormalizeWord(tok); w != "" {
			distinct[w] = struct{}{}
		}
	}

	known := 0
	for w := range distinct {
		if _, ok := knownWords[w]; ok {
			known++
		}
	}

	return domain.TextStats{
		TotalWords:    total,
		KnownWords:    known,
		Comprehension: int(math.Round(100 * float64(known) / float64(total))),
	}
}

// ComputeCollectionStats derives the cached statistics block for a
// collection from its member texts. Pure function. Membership is strict
// CollectionID equality; texts from other collections are ignored.
func ComputeCollectionStats(collectionID string, texts []domain.Text) domain.CollectionStats {
	stats := domain.NewCollectionStats()

	sum := 0
	for _, t := range texts {
		if t.CollectionID != collectionID {
			continue
		}
		stats.TotalTexts++
		sum += t.Comprehension
		if t.Difficulty.IsValid() {
			stats.DifficultyDistribution[t.Difficulty]++
		}
	}

	if stats.TotalTexts > 0 {
		stats.AverageComprehension = int(math.Round(float64(sum) / float64(stats.TotalTexts)))
	}
	return stats
}
