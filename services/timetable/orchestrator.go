package timetable

import (
	"context"

	"timegrid/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generate runs the full orchestration for one room: validate the request,
// normalize it for the solver, invoke the solver, and reconcile the response
// into the room's timetable document. Every failure before the final commit
// leaves the stored timetable exactly as it was.
func (s *DefaultTimetableService) Generate(ctx context.Context, roomID string, req models.GenerationRequest) (*models.GenerationOutcome, error) {
	if s.Rooms != nil {
		exists, err := s.Rooms.Exists(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &NotFoundError{Resource: "room", ID: roomID}
		}
	}

	solverReq, err := validateAndNormalize(roomID, req)
	if err != nil {
		return nil, err
	}

	log := s.logger().With(zap.String("room", roomID))
	log.Info("invoking schedule solver",
		zap.Int("subjects", len(solverReq.Subjects)),
		zap.Int("rooms", len(solverReq.Rooms)))

	// The solver call is the only suspension point; it happens outside the
	// room lock so reads and edits are not blocked for the solve budget.
	result, err := s.Solver.GenerateSchedule(ctx, *solverReq)
	if err != nil {
		log.Warn("solver call failed", zap.Error(err))
		return nil, err
	}

	entries := result.Entries()
	for i := range entries {
		if entries[i].RoomID == "" {
			entries[i].RoomID = roomID
		}
		if entries[i].ID == "" {
			entries[i].ID = uuid.New().String()
		}
	}

	unlock := s.lockRoom(roomID)
	defer unlock()

	tt, err := s.Repo.GetByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	created := tt == nil
	if created {
		tt = models.NewTimetable(roomID)
	}

	tt.ReplaceAll(entries, result.TimeSlots)
	tt.Breaks = req.Breaks
	college := req.CollegeTime
	tt.CollegeTime = &college

	if err := s.Repo.Upsert(ctx, tt); err != nil {
		// A failed write after a valid reconciliation must not vanish
		// silently; it is fatal for this request and reported as such.
		log.Error("failed to persist reconciled timetable", zap.Error(err))
		return nil, &PersistenceError{Op: "generation commit", Err: err}
	}
	s.invalidateProjections(ctx, roomID)

	log.Info("committed generated timetable",
		zap.Bool("created", created),
		zap.Int("entries", len(entries)),
		zap.Int("timeSlots", len(result.TimeSlots)))

	return &models.GenerationOutcome{
		Created:   created,
		Timetable: tt,
		Metrics:   result.Metrics,
	}, nil
}
