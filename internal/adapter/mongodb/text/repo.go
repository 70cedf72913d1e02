// Package text implements the text repository on MongoDB.
package text

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

const collectionName = "texts"

// Repo provides text persistence backed by MongoDB.
type Repo struct {
	col *mongo.Collection
}

// New creates a new text repository.
func New(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(collectionName)}
}

type audioDoc struct {
	URL         string `bson:"url"`
	FileName    string `bson:"fileName,omitempty"`
	MimeType    string `bson:"mimeType,omitempty"`
	DurationSec int    `bson:"durationSec,omitempty"`
}

type textDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       string             `bson:"content"`
	Difficulty    string             `bson:"difficulty"`
	CollectionID  string             `bson:"collectionId,omitempty"`
	TotalWords    int                `bson:"totalWords"`
	KnownWords    int                `bson:"knownWords"`
	Comprehension int                `bson:"comprehension"`
	Audio         *audioDoc          `bson:"audio,omitempty"`
	DateAdded     time.Time          `bson:"dateAdded"`
}

func fromDomain(t domain.Text) (textDoc, error) {
	doc := textDoc{
		Title:         t.Title,
		Content:       t.Content,
		Difficulty:    t.Difficulty.String(),
		CollectionID:  t.CollectionID,
		TotalWords:    t.TotalWords,
		KnownWords:    t.KnownWords,
		Comprehension: t.Comprehension,
		DateAdded:     t.DateAdded,
	}

	if t.ID != "" {
		oid, err := primitive.ObjectIDFromHex(t.ID)
		if err != nil {
			return textDoc{}, fmt.Errorf("text id %q: %w", t.ID, domain.ErrNotFound)
		}
		doc.ID = oid
	}

	if t.Audio != nil {
		doc.Audio = &audioDoc{
			URL:         t.Audio.URL,
			FileName:    t.Audio.FileName,
			MimeType:    t.Audio.MimeType,
			DurationSec: t.Audio.DurationSec,
		}
	}
	return doc, nil
}

func (d textDoc) toDomain() domain.Text {
	t := domain.Text{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Content:       d.Content,
		Difficulty:    domain.Difficulty(d.Difficulty),
		CollectionID:  d.CollectionID,
		TotalWords:    d.TotalWords,
		KnownWords:    d.KnownWords,
		Comprehension: d.Comprehension,
		DateAdded:     d.DateAdded,
	}
	if d.Audio != nil {
		t.Audio = &domain.AudioMeta{
			URL:         d.Audio.URL,
			FileName:    d.Audio.FileName,
			MimeType:    d.Audio.MimeType,
			DurationSec: d.Audio.DurationSec,
		}
	}
	return t
}

// Get returns one text by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.Text, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Text{}, fmt.Errorf("text id %q: %w", id, domain.ErrNotFound)
	}

	var doc textDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.Text{}, fmt.Errorf("find text: %w", mongodb.MapError(err))
	}
	return doc.toDomain(), nil
}

// List returns all texts, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Text, error) {
	return r.find(ctx, bson.M{})
}

// ListByCollection returns the member texts of a collection.
func (r *Repo) ListByCollection(ctx context.Context, collectionID string) ([]domain.Text, error) {
	return r.find(ctx, bson.M{"collectionId": collectionID})
}

func (r *Repo) find(ctx context.Context, query bson.M) ([]domain.Text, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateAdded", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find texts: %w", err)
	}
	defer cur.Close(ctx)

	var texts []domain.Text
	for cur.Next(ctx) {
		var doc textDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode text: %w", err)
		}
		texts = append(texts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate texts: %w", err)
	}
	return texts, nil
}

// Create inserts a new text and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, text domain.Text) (domain.Text, error) {
	doc, err := fromDomain(text)
	if err != nil {
		return domain.Text{}, err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return domain.Text{}, fmt.Errorf("insert text: %w", mongodb.MapError(err))
	}
	return doc.toDomain(), nil
}

// Update replaces the stored text.
func (r *Repo) Update(ctx context.Context, text domain.Text) error {
	doc, err := fromDomain(text)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("replace text: %w", mongodb.MapError(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("text %s: %w", text.ID, domain.ErrNotFound)
	}
	return nil
}

// UpdateStats writes only the cached statistics block.
func (r *Repo) UpdateStats(ctx context.Context, id string, stats domain.TextStats) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("text id %q: %w", id, domain.ErrNotFound)
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"totalWords":    stats.TotalWords,
		"knownWords":    stats.KnownWords,
		"comprehension": stats.Comprehension,
	}})
	if err != nil {
		return fmt.Errorf("update text stats: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a text.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("text id %q: %w", id, domain.ErrNotFound)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete text: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DetachCollection removes the collection reference from all member texts
// of a deleted collection. Returns the number of detached texts.
func (r *Repo) DetachCollection(ctx context.Context, collectionID string) (int, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"collectionId": collectionID},
		bson.M{"$unset": bson.M{"collectionId": ""}},
	)
	if err != nil {
		return 0, fmt.Errorf("detach texts: %w", err)
	}
	return int(res.ModifiedCount), nil
}
