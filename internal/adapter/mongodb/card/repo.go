// Package card implements the card repository on MongoDB. Field names
// mirror the document layout the web app always used, so both can run
// against the same database.
package card

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

const collectionName = "cards"

// Repo provides card persistence backed by MongoDB.
type Repo struct {
	col *mongo.Collection
}

// New creates a new card repository.
func New(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(collectionName)}
}

type reviewEventDoc struct {
	Date         time.Time `bson:"date"`
	Correct      bool      `bson:"correct"`
	IntervalDays int       `bson:"interval"`
	Mode         string    `bson:"mode"`
}

type cardDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Word         string             `bson:"word"`
	Translation  string             `bson:"translation"`
	Notes        string             `bson:"notes,omitempty"`
	Context      string             `bson:"context,omitempty"`
	SourceTextID string             `bson:"sourceTextId,omitempty"`
	Level        int                `bson:"level"`
	ReviewCount  int                `bson:"reviewCount"`
	CorrectCount int                `bson:"correctCount"`
	EaseFactor   float64            `bson:"easeFactor"`
	IntervalDays int                `bson:"interval"`
	NextReview   *time.Time         `bson:"nextReview,omitempty"`
	LastReviewed *time.Time         `bson:"lastReviewed,omitempty"`
	History      []reviewEventDoc   `bson:"history,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func fromDomain(c domain.Card) (cardDoc, error) {
	doc := cardDoc{
		Word:         c.Word,
		Translation:  c.Translation,
		Notes:        c.Notes,
		Context:      c.Context,
		SourceTextID: c.SourceTextID,
		Level:        c.Level,
		ReviewCount:  c.ReviewCount,
		CorrectCount: c.CorrectCount,
		EaseFactor:   c.EaseFactor,
		IntervalDays: c.IntervalDays,
		NextReview:   c.NextReview,
		LastReviewed: c.LastReviewed,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.ID != "" {
		oid, err := primitive.ObjectIDFromHex(c.ID)
		if err != nil {
			return cardDoc{}, fmt.Errorf("card id %q: %w", c.ID, domain.ErrNotFound)
		}
		doc.ID = oid
	}

	for _, ev := range c.History {
		doc.History = append(doc.History, reviewEventDoc{
			Date:         ev.Date,
			Correct:      ev.Correct,
			IntervalDays: ev.IntervalDays,
			Mode:         ev.Mode.String(),
		})
	}
	return doc, nil
}

func (d cardDoc) toDomain() domain.Card {
	c := domain.Card{
		ID:           d.ID.Hex(),
		Word:         d.Word,
		Translation:  d.Translation,
		Notes:        d.Notes,
		Context:      d.Context,
		SourceTextID: d.SourceTextID,
		Level:        d.Level,
		ReviewCount:  d.ReviewCount,
		CorrectCount: d.CorrectCount,
		EaseFactor:   d.EaseFactor,
		IntervalDays: d.IntervalDays,
		NextReview:   d.NextReview,
		LastReviewed: d.LastReviewed,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	for _, ev := range d.History {
		c.History = append(c.History, domain.ReviewEvent{
			Date:         ev.Date,
			Correct:      ev.Correct,
			IntervalDays: ev.IntervalDays,
			Mode:         domain.ReviewMode(ev.Mode),
		})
	}
	return c
}

// Get returns one card by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("card id %q: %w", id, domain.ErrNotFound)
	}

	var doc cardDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.Card{}, fmt.Errorf("find card: %w", mongodb.MapError(err))
	}
	return doc.toDomain(), nil
}

// List returns cards matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	query := bson.M{}
	if filter.SourceTextID != "" {
		query["sourceTextId"] = filter.SourceTextID
	}
	if filter.Level != nil {
		query["level"] = *filter.Level
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find cards: %w", err)
	}
	defer cur.Close(ctx)

	var cards []domain.Card
	for cur.Next(ctx) {
		var doc cardDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode card: %w", err)
		}
		cards = append(cards, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return cards, nil
}

// Create inserts a new card and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	doc, err := fromDomain(card)
	if err != nil {
		return domain.Card{}, err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return domain.Card{}, fmt.Errorf("insert card: %w", mongodb.MapError(err))
	}
	return doc.toDomain(), nil
}

// Update replaces the stored card.
func (r *Repo) Update(ctx context.Context, card domain.Card) error {
	doc, err := fromDomain(card)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("replace card: %w", mongodb.MapError(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("card %s: %w", card.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a card.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("card id %q: %w", id, domain.ErrNotFound)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DetachText clears the source-text reference on all cards of a deleted
// text, keeping the cards themselves. Returns the number of detached cards.
func (r *Repo) DetachText(ctx context.Context, textID string) (int, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"sourceTextId": textID},
		bson.M{"$unset": bson.M{"sourceTextId": ""}},
	)
	if err != nil {
		return 0, fmt.Errorf("detach cards: %w", err)
	}
	return int(res.ModifiedCount), nil
}
