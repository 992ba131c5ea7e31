// File: models/timetable.go
package models

import (
	"strings"
	"time"
)

// Day is one of the six teaching weekdays stored on a schedule entry.
// AllDays is a configuration-time wildcard (breaks, faculty availability)
// and is never stored as an entry's day.
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
	Saturday  Day = "SATURDAY"
	AllDays   Day = "ALL_DAYS"
)

// Weekdays is the fixed ordered set of storable days.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// CanonicalDay normalizes a raw day string (trim + uppercase) and reports
// whether it names one of the six weekdays.
func CanonicalDay(raw string) (Day, bool) {
	d := Day(strings.ToUpper(strings.TrimSpace(raw)))
	for _, wd := range Weekdays {
		if d == wd {
			return d, true
		}
	}
	return d, false
}

// ScheduleEntry is one occupied (or break) slot in a room's weekly timetable.
// Field names mirror the persisted document shape.
type ScheduleEntry struct {
	ID            string  `bson:"id,omitempty" json:"id,omitempty"`
	SubjectName   string  `bson:"subject_name" json:"subject_name"`
	FacultyID     string  `bson:"faculty_id" json:"faculty_id"`
	FacultyName   string  `bson:"faculty_name" json:"faculty_name"`
	Day           Day     `bson:"day" json:"day"`
	StartTime     string  `bson:"startTime" json:"startTime"`
	EndTime       string  `bson:"endTime" json:"endTime"`
	RoomID        string  `bson:"room_id" json:"room_id"`
	IsSpecial     bool    `bson:"is_special" json:"is_special"`
	PriorityScore float64 `bson:"priority_score" json:"priority_score"`
}

// Key returns the entry's slot identity.
func (e ScheduleEntry) Key() SlotKey {
	return NewSlotKey(e.RoomID, string(e.Day), e.StartTime, e.EndTime)
}

// HasPayload reports whether the entry carries a subject/faculty assignment,
// as opposed to a bare placeholder that only names a slot.
func (e ScheduleEntry) HasPayload() bool {
	return strings.TrimSpace(e.SubjectName) != "" || strings.TrimSpace(e.FacultyID) != ""
}

// SlotKey identifies a physical slot: two entries with equal keys occupy the
// same room at the same time. Comparable, so it can be used directly as a map
// key; construction canonicalizes whitespace and day casing so that cosmetic
// differences never split an identity.
type SlotKey struct {
	Room  string
	Day   Day
	Start string
	End   string
}

// NewSlotKey builds a canonical slot identity.
func NewSlotKey(room, day, start, end string) SlotKey {
	return SlotKey{
		Room:  strings.TrimSpace(room),
		Day:   Day(strings.ToUpper(strings.TrimSpace(day))),
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}
}

// BreakInterval is a college-wide break window; Day may be AllDays.
type BreakInterval struct {
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// CollegeTime is the operating window of the institution.
type CollegeTime struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Timetable is the canonical weekly schedule document for one room. Schedule
// is the source of truth; Days is the derived partition of Schedule by
// weekday and must never drift from it — every mutation path keeps the two in
// lockstep.
type Timetable struct {
	RoomID      string                  `bson:"room_id" json:"room_id"`
	TimeSlots   []string                `bson:"time_slots" json:"time_slots"`
	Schedule    []ScheduleEntry         `bson:"schedule" json:"schedule"`
	Days        map[Day][]ScheduleEntry `bson:"days" json:"days"`
	Breaks      []BreakInterval         `bson:"breaks,omitempty" json:"breaks,omitempty"`
	CollegeTime *CollegeTime            `bson:"college_time,omitempty" json:"college_time,omitempty"`
	CreatedAt   time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// NewTimetable returns an empty timetable for a room with all six day buckets
// initialized.
func NewTimetable(roomID string) *Timetable {
	now := time.Now().UTC()
	return &Timetable{
		RoomID:    roomID,
		Days:      emptyDayIndex(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func emptyDayIndex() map[Day][]ScheduleEntry {
	days := make(map[Day][]ScheduleEntry, len(Weekdays))
	for _, d := range Weekdays {
		days[d] = []ScheduleEntry{}
	}
	return days
}

// touch records the mutation timestamp.
func (t *Timetable) touch() {
	t.UpdatedAt = time.Now().UTC()
}

// ReplaceAll atomically swaps the canonical entry list and recomputes the day
// index from scratch. Entry days are canonicalized on the way in; an entry
// naming no known weekday is dropped entirely, so the list and the index
// always agree. Used after a successful generation.
func (t *Timetable) ReplaceAll(entries []ScheduleEntry, timeSlots []string) {
	kept := make([]ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		d, ok := CanonicalDay(string(e.Day))
		if !ok {
			continue
		}
		e.Day = d
		kept = append(kept, e)
	}
	t.Schedule = kept
	t.TimeSlots = append([]string(nil), timeSlots...)
	t.rebuildDays()
	t.touch()
}

func (t *Timetable) rebuildDays() {
	days := emptyDayIndex()
	for _, e := range t.Schedule {
		days[e.Day] = append(days[e.Day], e)
	}
	t.Days = days
}

// ApplyEdit inserts the entry, or overwrites the existing entry occupying the
// same slot identity. The day index is updated incrementally alongside the
// canonical list.
func (t *Timetable) ApplyEdit(entry ScheduleEntry) {
	if t.Days == nil {
		t.Days = emptyDayIndex()
	}
	key := entry.Key()
	// The key canonicalizes day casing; stamp it back so the list and the
	// day index bucket agree on the same day value.
	entry.Day = key.Day
	at := -1
	kept := make([]ScheduleEntry, 0, len(t.Schedule)+1)
	for _, e := range t.Schedule {
		if e.Key() == key {
			// Collapse any duplicates sharing the identity into the edit.
			if at == -1 {
				at = len(kept)
				entry.ID = e.ID
				kept = append(kept, entry)
			}
			continue
		}
		kept = append(kept, e)
	}
	if at == -1 {
		kept = append(kept, entry)
	}
	t.Schedule = kept

	bucket := t.Days[entry.Day][:0]
	for _, e := range t.Days[entry.Day] {
		if e.Key() != key {
			bucket = append(bucket, e)
		}
	}
	t.Days[entry.Day] = append(bucket, entry)
	t.touch()
}

// EntryAt returns the entry occupying the given slot identity, if any.
func (t *Timetable) EntryAt(key SlotKey) (ScheduleEntry, bool) {
	for _, e := range t.Schedule {
		if e.Key() == key {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

// RemoveByKey deletes every entry matching the slot identity from both the
// canonical list and the day index. Removing an unoccupied slot is a no-op.
func (t *Timetable) RemoveByKey(key SlotKey) {
	kept := t.Schedule[:0]
	removed := false
	for _, e := range t.Schedule {
		if e.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return
	}
	t.Schedule = kept

	bucket := t.Days[key.Day][:0]
	for _, e := range t.Days[key.Day] {
		if e.Key() != key {
			bucket = append(bucket, e)
		}
	}
	t.Days[key.Day] = bucket
	t.touch()
}

// ScheduleForDay returns the day-index slice for the given day; an unknown
// day yields an empty slice.
func (t *Timetable) ScheduleForDay(day string) []ScheduleEntry {
	d, ok := CanonicalDay(day)
	if !ok {
		return []ScheduleEntry{}
	}
	if entries, found := t.Days[d]; found {
		return entries
	}
	return []ScheduleEntry{}
}

// ScheduleForRoom returns, in canonical order, the entries assigned to the
// given room.
func (t *Timetable) ScheduleForRoom(roomID string) []ScheduleEntry {
	out := []ScheduleEntry{}
	for _, e := range t.Schedule {
		if e.RoomID == roomID {
			out = append(out, e)
		}
	}
	return out
}

// ScheduleForFaculty returns, in canonical order, the entries assigned to the
// given faculty member.
func (t *Timetable) ScheduleForFaculty(facultyID string) []ScheduleEntry {
	out := []ScheduleEntry{}
	for _, e := range t.Schedule {
		if e.FacultyID == facultyID {
			out = append(out, e)
		}
	}
	return out
}
