package texts

import (
	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// CreateInput holds the parameters for uploading a text.
type CreateInput struct {
	Title        string
	Content      string
	Difficulty   domain.Difficulty // empty means Intermediate
	CollectionID string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing texts.
type ListInput struct {
	CollectionID string
}

// UpdateInput holds the parameters for editing a text. Nil fields are left
// unchanged; an empty CollectionID pointer removes the text from its
// collection.
type UpdateInput struct {
	ID           string
	Title        *string
	Content      *string
	Difficulty   *domain.Difficulty
	CollectionID *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil && *i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if i.Content != nil && *i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
