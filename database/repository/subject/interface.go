// File: database/repository/subject/interface.go
package subjectRepo

import (
	"context"

	"timegrid/database"
	"timegrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SubjectRepository is the read side of the subject reference data.
type SubjectRepository interface {
	GetByID(ctx context.Context, id string) (*models.Subject, error)
	List(ctx context.Context) ([]models.Subject, error)
}

type mongoSubjectRepo struct {
	coll *mongo.Collection
}

// NewMongoSubjectRepo constructs a new MongoDB SubjectRepository.
func NewMongoSubjectRepo() SubjectRepository {
	db := database.MongoClient.Database("timegrid")
	return &mongoSubjectRepo{
		coll: db.Collection("subjects"),
	}
}
