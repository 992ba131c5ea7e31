// File: database/repository/timetable/crud.go
package timetableRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"timegrid/models"
)

func (r *mongoTimetableRepo) GetByRoom(ctx context.Context, roomID string) (*models.Timetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"room_id": roomID}
	var tt models.Timetable
	err := r.coll.FindOne(ctx, filter).Decode(&tt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching timetable for room %s: %w", roomID, err)
	}
	return &tt, nil
}

func (r *mongoTimetableRepo) List(ctx context.Context) ([]models.Timetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing timetables: %w", err)
	}
	defer cursor.Close(ctx)

	var tts []models.Timetable
	if err := cursor.All(ctx, &tts); err != nil {
		return nil, fmt.Errorf("error decoding timetables: %w", err)
	}
	return tts, nil
}

func (r *mongoTimetableRepo) Upsert(ctx context.Context, tt *models.Timetable) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"room_id": tt.RoomID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, tt, opts); err != nil {
		return fmt.Errorf("error upserting timetable for room %s: %w", tt.RoomID, err)
	}
	return nil
}

func (r *mongoTimetableRepo) DeleteByRoom(ctx context.Context, roomID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return fmt.Errorf("error deleting timetable for room %s: %w", roomID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
