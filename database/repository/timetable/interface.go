// File: database/repository/timetable/interface.go
package timetableRepo

import (
	"context"

	"timegrid/database"
	"timegrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimetableRepository persists one timetable document per room. GetByRoom
// returns (nil, nil) when no document exists for the room — absence is a
// signal, not an error.
type TimetableRepository interface {
	GetByRoom(ctx context.Context, roomID string) (*models.Timetable, error)
	List(ctx context.Context) ([]models.Timetable, error)
	Upsert(ctx context.Context, tt *models.Timetable) error
	DeleteByRoom(ctx context.Context, roomID string) error
}

type mongoTimetableRepo struct {
	coll *mongo.Collection
}

// NewMongoTimetableRepo constructs a new MongoDB TimetableRepository.
func NewMongoTimetableRepo() TimetableRepository {
	db := database.MongoClient.Database("timegrid")
	return &mongoTimetableRepo{
		coll: db.Collection("timetables"),
	}
}
