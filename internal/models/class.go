package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassSlot is one weekly occurrence of a class. Two slots collide when they
// share day and time; duration is not part of the collision key.
type ClassSlot struct {
	Day      string `bson:"day" json:"day"`
	Time     string `bson:"time" json:"time"` // wall clock, HH:MM:SS
	Duration int    `bson:"duration" json:"duration"`
}

// Class is a scheduled class. Deletion is logical: Active flips to false and
// the record drops out of conflict checks and schedule listings.
type Class struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID      string             `bson:"classId" json:"classId"`
	ClassName    string             `bson:"className" json:"className"`
	InstructorID string             `bson:"instructorId" json:"instructorId"`
	ClassType    string             `bson:"classType" json:"classType"` // General | Special
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Daytime      []ClassSlot        `bson:"daytime" json:"daytime"`
	PayRate      float64            `bson:"payRate" json:"payRate"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// ClassIDName is the projection used to populate the class dropdown.
type ClassIDName struct {
	ClassID   string `bson:"classId" json:"classId"`
	ClassName string `bson:"className" json:"className"`
}
