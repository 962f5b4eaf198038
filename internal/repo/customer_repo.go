package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rghamilton3/yogitrack-prototype/internal/models"
)

type CustomerRepo struct {
	Coll *mongo.Collection
}

func NewCustomerRepo(coll *mongo.Collection) *CustomerRepo {
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "customerId", Value: 1}},
	})
	return &CustomerRepo{Coll: coll}
}

func (r *CustomerRepo) Insert(ctx context.Context, cust *models.Customer) error {
	_, err := r.Coll.InsertOne(ctx, cust)
	return err
}

func (r *CustomerRepo) FindByID(ctx context.Context, customerID string) (*models.Customer, error) {
	var cust models.Customer
	if err := r.Coll.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&cust); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cust, nil
}

// FindByName is the duplicate-name probe used before creation. It returns
// nil, nil when no customer has the given name.
func (r *CustomerRepo) FindByName(ctx context.Context, firstName, lastName string) (*models.Customer, error) {
	var cust models.Customer
	err := r.Coll.FindOne(ctx, bson.M{"firstName": firstName, "lastName": lastName}).Decode(&cust)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cust, nil
}

// SearchByFirstName returns the first customer whose firstName matches the
// query, case-insensitively.
func (r *CustomerRepo) SearchByFirstName(ctx context.Context, query string) (*models.Customer, error) {
	filter := bson.M{"firstName": primitive.Regex{Pattern: query, Options: "i"}}

	var cust models.Customer
	if err := r.Coll.FindOne(ctx, filter).Decode(&cust); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepo) ListIDs(ctx context.Context) ([]models.CustomerIDName, error) {
	opts := options.Find().
		SetProjection(bson.M{"customerId": 1, "firstName": 1, "lastName": 1, "_id": 0}).
		SetSort(bson.D{{Key: "customerId", Value: 1}})

	cur, err := r.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CustomerIDName
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindNewestByID returns the customer with the lexicographically greatest
// customerId, or nil when the collection is empty.
func (r *CustomerRepo) FindNewestByID(ctx context.Context) (*models.Customer, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "customerId", Value: -1}})

	var cust models.Customer
	if err := r.Coll.FindOne(ctx, bson.M{}, opts).Decode(&cust); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepo) DeleteByID(ctx context.Context, customerID string) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
