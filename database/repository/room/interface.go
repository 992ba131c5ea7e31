// File: database/repository/room/interface.go
package roomRepo

import (
	"context"

	"timegrid/database"
	"timegrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository is the read side of the room reference data. Room records
// themselves are managed elsewhere; the scheduling core only looks them up.
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*models.Room, error)
	GetByName(ctx context.Context, name string) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database("timegrid")
	return &mongoRoomRepo{
		coll: db.Collection("rooms"),
	}
}
