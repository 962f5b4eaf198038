// Package repo implements the MongoDB collections behind the studio:
// class, instructor, and customer.
package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type ClassRepo struct {
	Coll *mongo.Collection
}

func NewClassRepo(coll *mongo.Collection) *ClassRepo {
	ctx := context.Background()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "classId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	// Conflict checks filter on slot day+time over active classes.
	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "daytime.day", Value: 1},
			{Key: "daytime.time", Value: 1},
			{Key: "active", Value: 1},
		},
	})

	return &ClassRepo{Coll: coll}
}

func (r *ClassRepo) Insert(ctx context.Context, cls *models.Class) error {
	_, err := r.Coll.InsertOne(ctx, cls)
	return err
}

func (r *ClassRepo) FindByClassID(ctx context.Context, classID string) (*models.Class, error) {
	var cls models.Class
	if err := r.Coll.FindOne(ctx, bson.M{"classId": classID}).Decode(&cls); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cls, nil
}

// FindActiveByDaytime returns an active class holding a slot at (day, start),
// or nil when none exists. excludeClassID removes that class from the match,
// so updates do not conflict with their own stored slots.
func (r *ClassRepo) FindActiveByDaytime(ctx context.Context, day, start, excludeClassID string) (*models.Class, error) {
	filter := bson.M{
		"daytime": bson.M{"$elemMatch": bson.M{"day": day, "time": start}},
		"active":  true,
	}
	if excludeClassID != "" {
		filter["classId"] = bson.M{"$ne": excludeClassID}
	}

	var cls models.Class
	if err := r.Coll.FindOne(ctx, filter).Decode(&cls); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cls, nil
}

// FindNewestByClassID returns the class with the lexicographically greatest
// classId, or nil when the collection is empty. Used for next-ID generation.
func (r *ClassRepo) FindNewestByClassID(ctx context.Context) (*models.Class, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "classId", Value: -1}})

	var cls models.Class
	if err := r.Coll.FindOne(ctx, bson.M{}, opts).Decode(&cls); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cls, nil
}

func (r *ClassRepo) ListActiveIDs(ctx context.Context) ([]models.ClassIDName, error) {
	opts := options.Find().
		SetProjection(bson.M{"classId": 1, "className": 1, "_id": 0}).
		SetSort(bson.D{{Key: "classId", Value: 1}})

	cur, err := r.Coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ClassIDName
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClassRepo) ListActive(ctx context.Context) ([]models.Class, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "daytime.day", Value: 1},
		{Key: "daytime.time", Value: 1},
	})

	cur, err := r.Coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Class
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate logically deletes a class by flipping active to false. The
// document stays in the collection but drops out of conflict checks and
// schedule listings.
func (r *ClassRepo) Deactivate(ctx context.Context, classID string) (*models.Class, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cls models.Class
	err := r.Coll.FindOneAndUpdate(ctx,
		bson.M{"classId": classID},
		bson.M{"$set": bson.M{"active": false}},
		opts,
	).Decode(&cls)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cls, nil
}
