package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
)

type InstructorRepo struct {
	Coll *mongo.Collection
}

func NewInstructorRepo(coll *mongo.Collection) *InstructorRepo {
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "instructorId", Value: 1}},
	})
	return &InstructorRepo{Coll: coll}
}

func (r *InstructorRepo) Insert(ctx context.Context, inst *models.Instructor) error {
	_, err := r.Coll.InsertOne(ctx, inst)
	return err
}

func (r *InstructorRepo) FindByID(ctx context.Context, instructorID string) (*models.Instructor, error) {
	var inst models.Instructor
	if err := r.Coll.FindOne(ctx, bson.M{"instructorId": instructorID}).Decode(&inst); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inst, nil
}

// FindByName is the duplicate-name probe used before creation. It returns
// nil, nil when no instructor has the given name.
func (r *InstructorRepo) FindByName(ctx context.Context, firstname, lastname string) (*models.Instructor, error) {
	var inst models.Instructor
	err := r.Coll.FindOne(ctx, bson.M{"firstname": firstname, "lastname": lastname}).Decode(&inst)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

// SearchByFirstname returns the first instructor whose firstname matches the
// query, case-insensitively.
func (r *InstructorRepo) SearchByFirstname(ctx context.Context, query string) (*models.Instructor, error) {
	filter := bson.M{"firstname": primitive.Regex{Pattern: query, Options: "i"}}

	var inst models.Instructor
	if err := r.Coll.FindOne(ctx, filter).Decode(&inst); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inst, nil
}

func (r *InstructorRepo) ListIDs(ctx context.Context) ([]models.InstructorIDName, error) {
	opts := options.Find().
		SetProjection(bson.M{"instructorId": 1, "firstname": 1, "lastname": 1, "_id": 0}).
		SetSort(bson.D{{Key: "instructorId", Value: 1}})

	cur, err := r.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.InstructorIDName
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindNewestByID returns the instructor with the lexicographically greatest
// instructorId, or nil when the collection is empty.
func (r *InstructorRepo) FindNewestByID(ctx context.Context) (*models.Instructor, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "instructorId", Value: -1}})

	var inst models.Instructor
	if err := r.Coll.FindOne(ctx, bson.M{}, opts).Decode(&inst); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

func (r *InstructorRepo) DeleteByID(ctx context.Context, instructorID string) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"instructorId": instructorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
