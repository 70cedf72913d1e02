package review

import (
	"time"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// Filters holds the session setup chosen on the configuration step.
// Zero values are filled with configured defaults by Engine.Configure.
type Filters struct {
	// Pool restriction. Level, TextID, and CollectionID combine with AND.
	Level        *int
	TextID       string
	CollectionID string

	// Size is the number of distinct cards to sample. The queue is twice
	// this long because every card is shown a second time.
	Size int

	Format domain.CardFormat
	Method domain.ReviewMethod
	Mode   domain.ReviewMode

	// Duration applies to deep sessions only. The countdown is advisory
	// unless EnforceDuration is set.
	Duration        time.Duration
	EnforceDuration bool
}

// Validate checks all fields and collects all errors.
func (f *Filters) Validate() error {
	var errs []domain.FieldError

	if f.Level != nil && (*f.Level < domain.MinLevel || *f.Level > domain.MaxLevel) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be between 0 and 5"})
	}
	if f.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be positive"})
	}
	if !f.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be NORMAL, SOUND_ONLY, or TRANSLATION_ONLY"})
	}
	if !f.Method.IsValid() {
		errs = append(errs, domain.FieldError{Field: "method", Message: "must be SPACED or RANDOM"})
	}
	if !f.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be QUICK or DEEP"})
	}
	if f.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be non-negative"})
	}
	if f.Mode == domain.ReviewModeQuick && f.Duration != 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "quick sessions are untimed"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
