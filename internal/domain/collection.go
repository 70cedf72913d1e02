package domain

import (
	"time"
)

// Collection is a named grouping of texts. Stats are a cache over the
// current member set, recomputed on every membership or comprehension change.
type Collection struct {
	ID          string
	Name        string
	Description string
	DateCreated time.Time
	Stats       CollectionStats
}

// CollectionStats is the derived statistics block written back onto a
// Collection. DifficultyDistribution always carries all five buckets,
// zero-filled.
type CollectionStats struct {
	TotalTexts             int
	AverageComprehension   int // percent, 0..100; 0 for an empty collection
	DifficultyDistribution map[Difficulty]int
}

// NewCollectionStats returns an empty stats block with all buckets present.
func NewCollectionStats() CollectionStats {
	dist := make(map[Difficulty]int, len(AllDifficulties()))
	for _, d := range AllDifficulties() {
		dist[d] = 0
	}
	return CollectionStats{DifficultyDistribution: dist}
}
