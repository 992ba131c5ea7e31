// File: models/subject.go
package models

import "time"

// Subject is a reference entity describing a course to be scheduled.
type Subject struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Time           float64   `bson:"time" json:"time"`
	ClassesPerWeek int       `bson:"noOfClassesPerWeek" json:"noOfClassesPerWeek"`
	FacultyIDs     []string  `bson:"faculty" json:"faculty"`
	IsSpecial      bool      `bson:"isSpecial" json:"isSpecial"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
