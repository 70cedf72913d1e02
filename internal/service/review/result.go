package review

import "github.com/mpetrenko/linguareader-backend/internal/domain"

// SessionStats accumulates per-session review accounting. It is reset on
// every Start and frozen once the session completes.
type SessionStats struct {
	TotalReviewed int
	CorrectCount  int
	// LevelChanges counts answers that left the card at each level.
	LevelChanges [domain.MaxLevel + 1]int
	// Streak is the current run of consecutive correct answers;
	// BestStreak is the longest run seen this session.
	Streak     int
	BestStreak int
}

// Progress reports how far into the queue a session is.
type Progress struct {
	Position int
	Total    int
}
