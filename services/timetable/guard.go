package timetable

import (
	"context"
	"fmt"

	"timegrid/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// editClass is how a manual edit applies to the timetable.
type editClass int

const (
	// editNewEmptySlot adds a payload-less placeholder to a free slot.
	editNewEmptySlot editClass = iota
	// editNewEntry adds a payload-bearing entry to a free slot.
	editNewEntry
	// editReplace overwrites whatever occupies the target slot.
	editReplace
)

// classifyEdit decides what a manual edit means. The target is the slot the
// caller is editing; the entry is the value being written, whose own identity
// may differ from the target when the edit moves a class.
//
// An occupied target is always a replace: resubmitting a slot overwrites it
// regardless of payload, which is how a class becomes a break and back. An
// empty target with no payload is a free placeholder add. An empty target
// with a payload is a new entry, rejected only when the entry's own slot is
// already held by a different payload-bearing entry.
func classifyEdit(tt *models.Timetable, target models.SlotKey, entry models.ScheduleEntry) (editClass, error) {
	if _, occupied := tt.EntryAt(target); occupied {
		return editReplace, nil
	}
	if !entry.HasPayload() {
		return editNewEmptySlot, nil
	}
	key := entry.Key()
	if key != target {
		if other, taken := tt.EntryAt(key); taken && other.HasPayload() {
			return editNewEntry, &ConflictError{
				Room:  other.RoomID,
				Day:   other.Day,
				Start: other.StartTime,
				End:   other.EndTime,
			}
		}
	}
	return editNewEntry, nil
}

// UpsertSlot applies a manual single-slot edit through the consistency guard.
// The edited timetable is returned on success; a clash yields a ConflictError
// and leaves the document untouched.
func (s *DefaultTimetableService) UpsertSlot(ctx context.Context, roomID string, target models.SlotKey, entry models.ScheduleEntry) (*models.Timetable, error) {
	unlock := s.lockRoom(roomID)
	defer unlock()

	tt, err := s.Repo.GetByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return nil, &NotFoundError{Resource: "timetable", ID: roomID}
	}

	if entry.RoomID == "" {
		entry.RoomID = roomID
	}

	// The day index buckets by canonical day, so a case-variant day must be
	// normalized before the entry is classified or applied.
	day, ok := models.CanonicalDay(string(entry.Day))
	if !ok {
		return nil, &ValidationError{Field: "day", Message: fmt.Sprintf("unknown day %q", entry.Day)}
	}
	entry.Day = day

	if !validClock(entry.StartTime) || !validClock(entry.EndTime) {
		return nil, &ValidationError{Field: "startTime", Message: "slot times must be 24-hour HH:MM"}
	}
	if entry.StartTime >= entry.EndTime {
		return nil, &ValidationError{Field: "startTime", Message: "slot start must precede end"}
	}

	// Referential check: a payload that names a faculty member must name a
	// real one.
	if entry.FacultyID != "" && s.Faculty != nil {
		exists, err := s.Faculty.Exists(ctx, entry.FacultyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &NotFoundError{Resource: "faculty", ID: entry.FacultyID}
		}
	}

	class, err := classifyEdit(tt, target, entry)
	if err != nil {
		return nil, err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	// A replace that moves the entry to a different slot vacates the target.
	if class == editReplace && entry.Key() != target {
		tt.RemoveByKey(target)
	}
	tt.ApplyEdit(entry)

	if err := s.Repo.Upsert(ctx, tt); err != nil {
		return nil, &PersistenceError{Op: "slot upsert", Err: err}
	}
	s.invalidateProjections(ctx, roomID)

	s.logger().Info("applied manual slot edit",
		zap.String("room", roomID),
		zap.String("day", string(entry.Day)),
		zap.String("start", entry.StartTime),
		zap.String("end", entry.EndTime),
		zap.Int("classification", int(class)))
	return tt, nil
}

// DeleteSlot removes whatever occupies the target slot. Deleting a slot that
// holds nothing is a no-op, not an error: the guard only ever deletes what a
// replace classification could have overwritten.
func (s *DefaultTimetableService) DeleteSlot(ctx context.Context, roomID string, target models.SlotKey) error {
	unlock := s.lockRoom(roomID)
	defer unlock()

	tt, err := s.Repo.GetByRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if tt == nil {
		return &NotFoundError{Resource: "timetable", ID: roomID}
	}

	if _, occupied := tt.EntryAt(target); !occupied {
		return nil
	}

	tt.RemoveByKey(target)
	if err := s.Repo.Upsert(ctx, tt); err != nil {
		return &PersistenceError{Op: "slot delete", Err: err}
	}
	s.invalidateProjections(ctx, roomID)
	return nil
}
