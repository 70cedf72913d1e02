package domain

import (
	"time"
)

// Text is an uploaded reading text. The word counters and comprehension
// percentage are caches derived from the current card set; they are always
// reproducible by a full recompute and never feed back into it.
type Text struct {
	ID           string
	Title        string
	Content      string
	Difficulty   Difficulty
	CollectionID string // weak reference; empty when not grouped
	TotalWords   int
	KnownWords   int
	Comprehension int // percent, 0..100
	Audio        *AudioMeta
	DateAdded    time.Time
}

// AudioMeta is an opaque description of an attached recording. Storage and
// playback of the actual media are outside the engine.
type AudioMeta struct {
	URL         string
	FileName    string
	MimeType    string
	DurationSec int
}

// TextStats is the derived statistics block written back onto a Text.
type TextStats struct {
	TotalWords    int
	KnownWords    int
	Comprehension int
}
