package cards

import (
	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// CreateInput holds the parameters for creating a card.
type CreateInput struct {
	Word         string
	Translation  string
	Notes        string
	Context      string
	SourceTextID string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeWord(i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if i.Translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing cards.
type ListInput struct {
	SourceTextID string
	Level        *int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Level != nil && (*i.Level < domain.MinLevel || *i.Level > domain.MaxLevel) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for a manual card edit. Nil fields are
// left unchanged.
type UpdateInput struct {
	ID          string
	Word        *string
	Translation *string
	Notes       *string
	Context     *string
	Level       *int
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Word != nil && domain.NormalizeWord(*i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "must not be empty"})
	}
	if i.Translation != nil && *i.Translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "must not be empty"})
	}
	if i.Level != nil && (*i.Level < domain.MinLevel || *i.Level > domain.MaxLevel) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
