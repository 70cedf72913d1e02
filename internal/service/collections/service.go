package collections

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type collectionStore interface {
	Get(ctx context.Context, id string) (domain.Collection, error)
	List(ctx context.Context) ([]domain.Collection, error)
	Create(ctx context.Context, collection domain.Collection) (domain.Collection, error)
	Update(ctx context.Context, collection domain.Collection) error
	Delete(ctx context.Context, id string) error
}

type textStore interface {
	DetachCollection(ctx context.Context, collectionID string) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements collection management. Collections are a grouping
// layer only: deleting one detaches its texts, it never deletes them.
type Service struct {
	store collectionStore
	texts textStore
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new collections service.
func NewService(log *slog.Logger, store collectionStore, texts textStore) *Service {
	return &Service{
		store: store,
		texts: texts,
		log:   log.With("service", "collections"),
		now:   time.Now,
	}
}

// Create validates and stores a new collection with an empty, fully
// bucketed stats block.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Collection, error) {
	if err := input.Validate(); err != nil {
		return domain.Collection{}, err
	}

	collection := domain.Collection{
		Name:        input.Name,
		Description: input.Description,
		DateCreated: s.now(),
		Stats:       domain.NewCollectionStats(),
	}

	created, err := s.store.Create(ctx, collection)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("create collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection created",
		slog.String("collection_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// Get returns one collection by id.
func (s *Service) Get(ctx context.Context, id string) (domain.Collection, error) {
	if id == "" {
		return domain.Collection{}, domain.NewValidationError("id", "required")
	}
	collection, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return collection, nil
}

// List returns all collections.
func (s *Service) List(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

// Update edits a collection's name or description. Stats are owned by the
// stats service and cannot be edited here.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Collection, error) {
	if err := input.Validate(); err != nil {
		return domain.Collection{}, err
	}

	collection, err := s.store.Get(ctx, input.ID)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("get collection: %w", err)
	}

	if input.Name != nil {
		collection.Name = *input.Name
	}
	if input.Description != nil {
		collection.Description = *input.Description
	}

	if err := s.store.Update(ctx, collection); err != nil {
		return domain.Collection{}, fmt.Errorf("update collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection updated", slog.String("collection_id", collection.ID))
	return collection, nil
}

// Delete removes a collection after detaching its member texts.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if _, err := s.store.Get(ctx, id); err != nil {
		return fmt.Errorf("get collection: %w", err)
	}

	detached, err := s.texts.DetachCollection(ctx, id)
	if err != nil {
		return fmt.Errorf("detach texts: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("collection_id", id),
		slog.Int("texts_detached", detached),
	)
	return nil
}
