// File: models/room.go
package models

import "time"

// Room is a reference entity owned by the entity-management side; the
// scheduling core only reads it for referential checks and lookups.
type Room struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Capacity  int       `bson:"capacity" json:"capacity"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
