package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// MapError converts driver errors into domain sentinels. Errors without a
// domain meaning pass through unchanged so callers can wrap them.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrAlreadyExists
	default:
		return err
	}
}
