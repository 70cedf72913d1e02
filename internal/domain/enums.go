package domain

// Difficulty represents the declared reading difficulty of a text.
// The literal values double as the difficulty-distribution bucket names.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyElementary   Difficulty = "Elementary"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyElementary, DifficultyIntermediate,
		DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// AllDifficulties returns the five fixed buckets in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyElementary,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}

// ReviewMode selects how much of the card is updated per answer.
// Quick reviews only move the level; deep reviews also run the
// spaced-repetition scheduling.
type ReviewMode string

const (
	ReviewModeQuick ReviewMode = "QUICK"
	ReviewModeDeep  ReviewMode = "DEEP"
)

func (m ReviewMode) String() string { return string(m) }

func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeQuick, ReviewModeDeep:
		return true
	}
	return false
}

// ReviewMethod selects how the session queue is built and ordered.
type ReviewMethod string

const (
	ReviewMethodSpaced ReviewMethod = "SPACED"
	ReviewMethodRandom ReviewMethod = "RANDOM"
)

func (m ReviewMethod) String() string { return string(m) }

func (m ReviewMethod) IsValid() bool {
	switch m {
	case ReviewMethodSpaced, ReviewMethodRandom:
		return true
	}
	return false
}

// CardFormat selects which side of a card the presentation layer reveals
// first. The engine carries it through unchanged.
type CardFormat string

const (
	CardFormatNormal          CardFormat = "NORMAL"
	CardFormatSoundOnly       CardFormat = "SOUND_ONLY"
	CardFormatTranslationOnly CardFormat = "TRANSLATION_ONLY"
)

func (f CardFormat) String() string { return string(f) }

func (f CardFormat) IsValid() bool {
	switch f {
	case CardFormatNormal, CardFormatSoundOnly, CardFormatTranslationOnly:
		return true
	}
	return false
}

// SessionState represents the lifecycle state of a review session.
type SessionState string

const (
	SessionStateIdle        SessionState = "IDLE"
	SessionStateConfiguring SessionState = "CONFIGURING"
	SessionStateInProgress  SessionState = "IN_PROGRESS"
	SessionStateComplete    SessionState = "COMPLETE"
)

func (s SessionState) String() string { return string(s) }

func (s SessionState) IsValid() bool {
	switch s {
	case SessionStateIdle, SessionStateConfiguring, SessionStateInProgress, SessionStateComplete:
		return true
	}
	return false
}
