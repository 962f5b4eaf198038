package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Instructor struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InstructorID     string             `bson:"instructorId" json:"instructorId"`
	Firstname        string             `bson:"firstname" json:"firstname"`
	Lastname         string             `bson:"lastname" json:"lastname"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	PreferredContact string             `bson:"preferredContact,omitempty" json:"preferredContact,omitempty"`
}

// InstructorIDName is the projection used to populate the instructor dropdown.
type InstructorIDName struct {
	InstructorID string `bson:"instructorId" json:"instructorId"`
	Firstname    string `bson:"firstname" json:"firstname"`
	Lastname     string `bson:"lastname" json:"lastname"`
}
