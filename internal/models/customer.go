package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Customer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID       string             `bson:"customerId" json:"customerId"`
	FirstName        string             `bson:"firstName" json:"firstName"`
	LastName         string             `bson:"lastName" json:"lastName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	Senior           bool               `bson:"senior" json:"senior"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	PreferredContact string             `bson:"preferredContact,omitempty" json:"preferredContact,omitempty"`
	ClassBalance     int                `bson:"classBalance" json:"classBalance"`
}

// CustomerIDName is the projection used to populate the customer dropdown.
type CustomerIDName struct {
	CustomerID string `bson:"customerId" json:"customerId"`
	FirstName  string `bson:"firstName" json:"firstName"`
	LastName   string `bson:"lastName" json:"lastName"`
}
