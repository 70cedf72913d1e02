// Package collection implements the collection repository on MongoDB.
package collection

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mpetrenko/linguareader-backend/internal/adapter/mongodb"
	"github.com/mpetrenko/linguareader-backend/internal/domain"
)

const collectionName = "collections"

// Repo provides collection persistence backed by MongoDB.
type Repo struct {
	col *mongo.Collection
}

// New creates a new collection repository.
func New(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(collectionName)}
}

type statsDoc struct {
	TotalTexts             int            `bson:"totalTexts"`
	AverageComprehension   int            `bson:"averageComprehension"`
	DifficultyDistribution map[string]int `bson:"difficultyDistribution"`
}

type collectionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	DateCreated time.Time          `bson:"dateCreated"`
	Stats       statsDoc           `bson:"stats"`
}

func fromDomain(c domain.Collection) (collectionDoc, error) {
	doc := collectionDoc{
		Name:        c.Name,
		Description: c.Description,
		DateCreated: c.DateCreated,
		Stats:       statsFromDomain(c.Stats),
	}

	if c.ID != "" {
		oid, err := primitive.ObjectIDFromHex(c.ID)
		if err != nil {
			return collectionDoc{}, fmt.Errorf("collection id %q: %w", c.ID, domain.ErrNotFound)
		}
		doc.ID = oid
	}
	return doc, nil
}

func statsFromDomain(s domain.CollectionStats) statsDoc {
	doc := statsDoc{
		TotalTexts:           s.TotalTexts,
		AverageComprehension: s.AverageComprehension,
		DifficultyDistribution: make(map[string]int, len(s.DifficultyDistribution)),
	}
	for d, n := range s.DifficultyDistribution {
		doc.DifficultyDistribution[d.String()] = n
	}
	return doc
}

func (d collectionDoc) toDomain() domain.Collection {
	// Always hand out a fully bucketed stats block, even for documents
	// written before some buckets existed.
	stats := domain.NewCollectionStats()
	stats.TotalTexts = d.Stats.TotalTexts
	stats.AverageComprehension = d.Stats.AverageComprehension
	for name, n := range d.Stats.DifficultyDistribution {
		stats.DifficultyDistribution[domain.Difficulty(name)] = n
	}

	return domain.Collection{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		DateCreated: d.DateCreated,
		Stats:       stats,
	}
}

// Get returns one collection by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.Collection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("collection id %q: %w", id, domain.ErrNotFound)
	}

	var doc collectionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.Collection{}, fmt.Errorf("find collection: %w", mongodb.MapError(err))
	}
	return doc.toDomain(), nil
}

// List returns all collections, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Collection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateCreated", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find collections: %w", err)
	}
	defer cur.Close(ctx)

	var collections []domain.Collection
	for cur.Next(ctx) {
		var doc collectionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		collections = append(collections, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return collections, nil
}

// Create inserts a new collection and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, collection domain.Collection) (domain.Collection, error) {
	doc, err := fromDomain(collection)
	if err != nil {
		return domain.Collection{}, err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return domain.Collection{}, fmt.Errorf("insert collection: %w", mongodb.MapError(err))
	}
	return doc.toDomain(), nil
}

// Update replaces the stored collection.
func (r *Repo) Update(ctx context.Context, collection domain.Collection) error {
	doc, err := fromDomain(collection)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("replace collection: %w", mongodb.MapError(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("collection %s: %w", collection.ID, domain.ErrNotFound)
	}
	return nil
}

// UpdateStats writes only the cached statistics block.
func (r *Repo) UpdateStats(ctx context.Context, id string, stats domain.CollectionStats) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("collection id %q: %w", id, domain.ErrNotFound)
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"stats": statsFromDomain(stats),
	}})
	if err != nil {
		return fmt.Errorf("update collection stats: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a collection.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("collection id %q: %w", id, domain.ErrNotFound)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
