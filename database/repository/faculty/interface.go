// File: database/repository/faculty/interface.go
package facultyRepo

import (
	"context"

	"timegrid/database"
	"timegrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FacultyRepository is the read side of the faculty reference data.
type FacultyRepository interface {
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	List(ctx context.Context) ([]models.Faculty, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type mongoFacultyRepo struct {
	coll *mongo.Collection
}

// NewMongoFacultyRepo constructs a new MongoDB FacultyRepository.
func NewMongoFacultyRepo() FacultyRepository {
	db := database.MongoClient.Database("timegrid")
	return &mongoFacultyRepo{
		coll: db.Collection("faculty"),
	}
}
