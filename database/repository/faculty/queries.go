// File: database/repository/faculty/queries.go
package facultyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"timegrid/models"
)

func (r *mongoFacultyRepo) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var fac models.Faculty
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&fac)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching faculty with id %s: %w", id, err)
	}
	return &fac, nil
}

func (r *mongoFacultyRepo) List(ctx context.Context) ([]models.Faculty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}
	defer cursor.Close(ctx)

	var faculty []models.Faculty
	if err := cursor.All(ctx, &faculty); err != nil {
		return nil, fmt.Errorf("error decoding faculty: %w", err)
	}
	return faculty, nil
}

func (r *mongoFacultyRepo) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error checking faculty %s: %w", id, err)
	}
	return count > 0, nil
}
