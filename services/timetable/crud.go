package timetable

import (
	"context"
	"errors"

	"timegrid/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GetTimetable returns the room's timetable document.
func (s *DefaultTimetableService) GetTimetable(ctx context.Context, roomID string) (*models.Timetable, error) {
	tt, err := s.Repo.GetByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return nil, &NotFoundError{Resource: "timetable", ID: roomID}
	}
	return tt, nil
}

// ListTimetables returns every stored timetable document.
func (s *DefaultTimetableService) ListTimetables(ctx context.Context) ([]models.Timetable, error) {
	return s.Repo.List(ctx)
}

// DeleteTimetable destroys the room's timetable document entirely.
func (s *DefaultTimetableService) DeleteTimetable(ctx context.Context, roomID string) error {
	unlock := s.lockRoom(roomID)
	defer unlock()

	err := s.Repo.DeleteByRoom(ctx, roomID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &NotFoundError{Resource: "timetable", ID: roomID}
	}
	if err != nil {
		return &PersistenceError{Op: "timetable delete", Err: err}
	}
	s.invalidateProjections(ctx, roomID)
	s.logger().Info("deleted timetable", zap.String("room", roomID))
	return nil
}
