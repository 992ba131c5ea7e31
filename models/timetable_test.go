package models

import (
	"testing"
)

func entry(room, day, start, end, subject, facultyID string) ScheduleEntry {
	return ScheduleEntry{
		SubjectName: subject,
		FacultyID:   facultyID,
		FacultyName: facultyID,
		Day:         Day(day),
		StartTime:   start,
		EndTime:     end,
		RoomID:      room,
	}
}

// verifyDayIndex asserts the day index is exactly the partition-by-day of the
// canonical list: no entry missing, none duplicated, order preserved per day.
func verifyDayIndex(t *testing.T, tt *Timetable) {
	t.Helper()

	total := 0
	for _, d := range Weekdays {
		total += len(tt.Days[d])
	}
	if total != len(tt.Schedule) {
		t.Fatalf("day index holds %d entries, canonical list holds %d", total, len(tt.Schedule))
	}

	byDay := make(map[Day][]ScheduleEntry)
	for _, e := range tt.Schedule {
		byDay[e.Day] = append(byDay[e.Day], e)
	}
	for _, d := range Weekdays {
		want := byDay[d]
		got := tt.Days[d]
		if len(want) != len(got) {
			t.Fatalf("day %s: index has %d entries, partition has %d", d, len(got), len(want))
		}
		for i := range want {
			if want[i].Key() != got[i].Key() || want[i].SubjectName != got[i].SubjectName {
				t.Fatalf("day %s entry %d: index drifted from canonical list", d, i)
			}
		}
	}
}

func TestCanonicalDay(t *testing.T) {
	cases := []struct {
		in   string
		want Day
		ok   bool
	}{
		{"MONDAY", Monday, true},
		{"monday", Monday, true},
		{"  Saturday ", Saturday, true},
		{"SUNDAY", Day("SUNDAY"), false},
		{"ALL_DAYS", AllDays, false},
		{"", Day(""), false},
	}
	for _, c := range cases {
		got, ok := CanonicalDay(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("CanonicalDay(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSlotKeyCanonicalization(t *testing.T) {
	a := NewSlotKey("A-101", "monday", "09:00", "09:50")
	b := NewSlotKey(" A-101 ", " MONDAY ", " 09:00 ", " 09:50 ")
	if a != b {
		t.Fatalf("cosmetic differences split identity: %+v vs %+v", a, b)
	}
	c := NewSlotKey("A-101", "MONDAY", "10:00", "10:50")
	if a == c {
		t.Fatal("distinct slots compared equal")
	}
}

func TestReplaceAllRebuildsDayIndex(t *testing.T) {
	tt := NewTimetable("A-101")
	entries := []ScheduleEntry{
		entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"),
		entry("A-101", "TUESDAY", "09:00", "09:50", "Physics", "f1"),
		entry("A-101", "MONDAY", "10:00", "10:50", "Maths", "f2"),
	}
	tt.ReplaceAll(entries, []string{"09:00-09:50", "10:00-10:50"})

	verifyDayIndex(t, tt)
	if len(tt.Days[Monday]) != 2 || len(tt.Days[Tuesday]) != 1 {
		t.Fatalf("unexpected day slices: MONDAY=%d TUESDAY=%d", len(tt.Days[Monday]), len(tt.Days[Tuesday]))
	}
}

func TestReplaceAllDropsUnknownDays(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ReplaceAll([]ScheduleEntry{
		entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"),
		entry("A-101", "FUNDAY", "09:00", "09:50", "Nonsense", "f9"),
	}, nil)

	// The unknown-day entry is dropped from the canonical list and the index
	// alike, so the two never disagree.
	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 1 || tt.Schedule[0].SubjectName != "Physics" {
		t.Fatalf("unknown-day entry survived in the canonical list: %+v", tt.Schedule)
	}
}

func TestReplaceAllCanonicalizesDays(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ReplaceAll([]ScheduleEntry{
		entry("A-101", "monday", "09:00", "09:50", "Physics", "f1"),
	}, nil)

	verifyDayIndex(t, tt)
	if len(tt.Days[Monday]) != 1 || tt.Schedule[0].Day != Monday {
		t.Fatalf("lowercase day not canonicalized: %+v", tt.Schedule)
	}
}

func TestApplyEditAppendsAndIndexes(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))
	tt.ApplyEdit(entry("A-101", "MONDAY", "10:00", "10:50", "Maths", "f2"))

	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tt.Schedule))
	}
}

func TestApplyEditOverwritesSameSlot(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))
	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Break", ""))

	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 1 {
		t.Fatalf("overwrite duplicated the slot: %d entries", len(tt.Schedule))
	}
	if tt.Schedule[0].SubjectName != "Break" {
		t.Fatalf("slot not overwritten, still %q", tt.Schedule[0].SubjectName)
	}
	if got := tt.ScheduleForDay("MONDAY"); len(got) != 1 || got[0].SubjectName != "Break" {
		t.Fatalf("day index shows %v, want single Break entry", got)
	}
}

func TestApplyEditCanonicalizesDay(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))

	// A case-variant day must hit the same slot, not grow a ghost bucket.
	tt.ApplyEdit(entry("A-101", "monday", "09:00", "09:50", "Break", ""))

	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 1 || tt.Schedule[0].Day != Monday {
		t.Fatalf("lowercase day split the slot: %+v", tt.Schedule)
	}
	if got := tt.ScheduleForDay("MONDAY"); len(got) != 1 || got[0].SubjectName != "Break" {
		t.Fatalf("day index shows %v, want single Break entry", got)
	}
	if _, stray := tt.Days[Day("monday")]; stray {
		t.Fatal("ghost lowercase bucket created")
	}
}

func TestApplyEditCollapsesDuplicates(t *testing.T) {
	// Bulk replace can introduce duplicate identities; an edit on that slot
	// must collapse them rather than leave the list and index disagreeing.
	tt := NewTimetable("A-101")
	tt.ReplaceAll([]ScheduleEntry{
		entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"),
		entry("A-101", "MONDAY", "09:00", "09:50", "Chemistry", "f2"),
	}, nil)

	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Biology", "f3"))

	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 1 || tt.Schedule[0].SubjectName != "Biology" {
		t.Fatalf("duplicates not collapsed: %+v", tt.Schedule)
	}
}

func TestRemoveByKeyRoundTrip(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))

	key := NewSlotKey("A-101", "TUESDAY", "11:00", "11:50")
	tt.ApplyEdit(entry("A-101", "TUESDAY", "11:00", "11:50", "Maths", "f2"))
	tt.RemoveByKey(key)

	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 1 {
		t.Fatalf("round trip left %d entries, want 1", len(tt.Schedule))
	}
	if _, found := tt.EntryAt(key); found {
		t.Fatal("removed entry still present")
	}
}

func TestRemoveByKeyMissingIsNoop(t *testing.T) {
	tt := NewTimetable("A-101")
	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))
	before := tt.UpdatedAt

	tt.RemoveByKey(NewSlotKey("A-101", "FRIDAY", "09:00", "09:50"))

	verifyDayIndex(t, tt)
	if len(tt.Schedule) != 1 {
		t.Fatal("no-op removal changed the entry set")
	}
	if !tt.UpdatedAt.Equal(before) {
		t.Fatal("no-op removal bumped updatedAt")
	}
}

func TestMutationsTouchUpdatedAt(t *testing.T) {
	tt := NewTimetable("A-101")
	before := tt.UpdatedAt

	tt.ApplyEdit(entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))
	if tt.UpdatedAt.Before(before) {
		t.Fatal("ApplyEdit did not touch updatedAt")
	}

	mid := tt.UpdatedAt
	tt.RemoveByKey(NewSlotKey("A-101", "MONDAY", "09:00", "09:50"))
	if tt.UpdatedAt.Before(mid) {
		t.Fatal("RemoveByKey did not touch updatedAt")
	}
}

func TestProjectionsPreserveOrderAndPartition(t *testing.T) {
	tt := NewTimetable("A-101")
	entries := []ScheduleEntry{
		entry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"),
		entry("A-101", "MONDAY", "10:00", "10:50", "Maths", "f2"),
		entry("A-101", "WEDNESDAY", "09:00", "09:50", "Physics", "f1"),
		entry("A-101", "FRIDAY", "14:00", "14:50", "Chemistry", "f1"),
	}
	tt.ReplaceAll(entries, nil)

	// Union of byDay projections equals the canonical list exactly once.
	var flat []ScheduleEntry
	for _, d := range Weekdays {
		flat = append(flat, tt.ScheduleForDay(string(d))...)
	}
	if len(flat) != len(tt.Schedule) {
		t.Fatalf("byDay union has %d entries, canonical list %d", len(flat), len(tt.Schedule))
	}
	seen := make(map[SlotKey]int)
	for _, e := range flat {
		seen[e.Key()]++
	}
	for _, e := range tt.Schedule {
		if seen[e.Key()] != 1 {
			t.Fatalf("entry %v appears %d times in byDay union", e.Key(), seen[e.Key()])
		}
	}

	byFaculty := tt.ScheduleForFaculty("f1")
	if len(byFaculty) != 3 {
		t.Fatalf("faculty projection has %d entries, want 3", len(byFaculty))
	}
	byRoom := tt.ScheduleForRoom("A-101")
	if len(byRoom) != 4 {
		t.Fatalf("room projection has %d entries, want 4", len(byRoom))
	}
	if tt.ScheduleForDay("FUNDAY") == nil || len(tt.ScheduleForDay("FUNDAY")) != 0 {
		t.Fatal("unknown day should yield an empty, non-nil sequence")
	}
}
