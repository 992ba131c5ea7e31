// File: models/faculty.go
package models

import "time"

// Faculty is a reference entity: a teacher with weekly availability windows.
// Availability is consumed by the solver; the core only format-validates it.
type Faculty struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email,omitempty" json:"email,omitempty"`
	Department   string       `bson:"department,omitempty" json:"department,omitempty"`
	Availability []TimeWindow `bson:"availability" json:"availability"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}
