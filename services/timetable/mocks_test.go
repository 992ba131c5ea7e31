package timetable

import (
	"context"
	"errors"
	"sync"

	"timegrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// mockTimetableRepo is an in-memory TimetableRepository for service tests.
type mockTimetableRepo struct {
	mu     sync.Mutex
	docs   map[string]models.Timetable
	failOn string // operation name that should fail, for persistence tests
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{docs: make(map[string]models.Timetable)}
}

var errMockWrite = errors.New("mock write failure")

func (m *mockTimetableRepo) GetByRoom(ctx context.Context, roomID string) (*models.Timetable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[roomID]
	if !ok {
		return nil, nil
	}
	cp := doc
	return &cp, nil
}

func (m *mockTimetableRepo) List(ctx context.Context) ([]models.Timetable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Timetable, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (m *mockTimetableRepo) Upsert(ctx context.Context, tt *models.Timetable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "upsert" {
		return errMockWrite
	}
	m.docs[tt.RoomID] = *tt
	return nil
}

func (m *mockTimetableRepo) DeleteByRoom(ctx context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[roomID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.docs, roomID)
	return nil
}

// snapshot returns a copy of the stored document for assertions.
func (m *mockTimetableRepo) snapshot(roomID string) (models.Timetable, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[roomID]
	return doc, ok
}

// mockRoomRepo answers existence checks from a fixed set.
type mockRoomRepo struct {
	rooms map[string]models.Room
}

func newMockRoomRepo(ids ...string) *mockRoomRepo {
	m := &mockRoomRepo{rooms: make(map[string]models.Room)}
	for _, id := range ids {
		m.rooms[id] = models.Room{ID: id, Name: id}
	}
	return m
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *mockRoomRepo) GetByName(ctx context.Context, name string) (*models.Room, error) {
	for _, r := range m.rooms {
		if r.Name == name {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoomRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.rooms[id]
	return ok, nil
}

// mockFacultyRepo answers existence checks from a fixed set.
type mockFacultyRepo struct {
	faculty map[string]models.Faculty
}

func newMockFacultyRepo(ids ...string) *mockFacultyRepo {
	m := &mockFacultyRepo{faculty: make(map[string]models.Faculty)}
	for _, id := range ids {
		m.faculty[id] = models.Faculty{ID: id, Name: id}
	}
	return m
}

func (m *mockFacultyRepo) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	if f, ok := m.faculty[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (m *mockFacultyRepo) List(ctx context.Context) ([]models.Faculty, error) {
	out := make([]models.Faculty, 0, len(m.faculty))
	for _, f := range m.faculty {
		out = append(out, f)
	}
	return out, nil
}

func (m *mockFacultyRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.faculty[id]
	return ok, nil
}

// mockSolver records whether it was invoked and returns a canned result.
type mockSolver struct {
	invoked bool
	lastReq models.SolverRequest
	result  *models.SolverResult
	err     error
}

func (m *mockSolver) GenerateSchedule(ctx context.Context, req models.SolverRequest) (*models.SolverResult, error) {
	m.invoked = true
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
