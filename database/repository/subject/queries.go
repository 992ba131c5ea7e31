// File: database/repository/subject/queries.go
package subjectRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"timegrid/models"
)

func (r *mongoSubjectRepo) GetByID(ctx context.Context, id string) (*models.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var subj models.Subject
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&subj)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching subject with id %s: %w", id, err)
	}
	return &subj, nil
}

func (r *mongoSubjectRepo) List(ctx context.Context) ([]models.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer cursor.Close(ctx)

	var subjects []models.Subject
	if err := cursor.All(ctx, &subjects); err != nil {
		return nil, fmt.Errorf("error decoding subjects: %w", err)
	}
	return subjects, nil
}
