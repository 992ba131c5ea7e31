package timetable

import (
	"context"
	"sync"

	facultyRepo "timegrid/database/repository/faculty"
	roomRepo "timegrid/database/repository/room"
	timetableRepo "timegrid/database/repository/timetable"
	"timegrid/models"
	"timegrid/services/solver"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TimetableService is the schedule consistency and orchestration core: it
// owns the per-room timetable documents, serves read projections, mediates
// manual slot edits, and orchestrates generation against the external solver.
type TimetableService interface {
	Generate(ctx context.Context, roomID string, req models.GenerationRequest) (*models.GenerationOutcome, error)

	GetTimetable(ctx context.Context, roomID string) (*models.Timetable, error)
	ListTimetables(ctx context.Context) ([]models.Timetable, error)
	ByRoom(ctx context.Context, roomID string) ([]models.ScheduleEntry, error)
	ByDay(ctx context.Context, roomID, day string) ([]models.ScheduleEntry, error)
	ByFaculty(ctx context.Context, facultyID string) ([]models.ScheduleEntry, error)

	UpsertSlot(ctx context.Context, roomID string, target models.SlotKey, entry models.ScheduleEntry) (*models.Timetable, error)
	DeleteSlot(ctx context.Context, roomID string, target models.SlotKey) error
	DeleteTimetable(ctx context.Context, roomID string) error
}

// DefaultTimetableService implements TimetableService.
type DefaultTimetableService struct {
	Repo    timetableRepo.TimetableRepository
	Rooms   roomRepo.RoomRepository
	Faculty facultyRepo.FacultyRepository
	Solver  solver.Client
	Cache   *redis.Client // optional projection cache; nil disables caching
	Logger  *zap.Logger

	locks sync.Map // roomID -> *sync.Mutex
}

// lockRoom serializes mutations per room so that edits, deletions and
// generation commits never interleave on the same document.
func (s *DefaultTimetableService) lockRoom(roomID string) func() {
	mu, _ := s.locks.LoadOrStore(roomID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (s *DefaultTimetableService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}
