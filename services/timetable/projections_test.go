package timetable

import (
	"context"
	"errors"
	"testing"

	"timegrid/models"
)

func TestByDayReturnsDayBucket(t *testing.T) {
	repo := newMockTimetableRepo()
	seedTimetable(repo, "A-101",
		testEntry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"),
		testEntry("A-101", "TUESDAY", "09:00", "09:50", "Maths", "f2"),
		testEntry("A-101", "MONDAY", "10:00", "10:50", "Chemistry", "f1"))
	svc := newTestService(repo)

	entries, err := svc.ByDay(context.Background(), "A-101", "monday")
	if err != nil {
		t.Fatalf("ByDay failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("MONDAY projection has %d entries, want 2", len(entries))
	}
	// Canonical order is preserved.
	if entries[0].SubjectName != "Physics" || entries[1].SubjectName != "Chemistry" {
		t.Fatalf("projection order broken: %+v", entries)
	}
}

func TestByDayUnknownDayIsEmpty(t *testing.T) {
	repo := newMockTimetableRepo()
	seedTimetable(repo, "A-101",
		testEntry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))
	svc := newTestService(repo)

	entries, err := svc.ByDay(context.Background(), "A-101", "FUNDAY")
	if err != nil {
		t.Fatalf("ByDay failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("unknown day should project empty, got %+v", entries)
	}
}

func TestByRoomAbsentTimetableIsEmpty(t *testing.T) {
	svc := newTestService(newMockTimetableRepo())
	entries, err := svc.ByRoom(context.Background(), "A-101")
	if err != nil {
		t.Fatalf("ByRoom failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("absent timetable should project an empty list, got %v", entries)
	}
}

func TestByFacultySpansRooms(t *testing.T) {
	repo := newMockTimetableRepo()
	seedTimetable(repo, "A-101",
		testEntry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"),
		testEntry("A-101", "MONDAY", "10:00", "10:50", "Maths", "f2"))
	seedTimetable(repo, "B-202",
		testEntry("B-202", "TUESDAY", "09:00", "09:50", "Physics Lab", "f1"))
	svc := newTestService(repo)

	entries, err := svc.ByFaculty(context.Background(), "f1")
	if err != nil {
		t.Fatalf("ByFaculty failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("faculty projection has %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.FacultyID != "f1" {
			t.Fatalf("projection leaked another faculty's entry: %+v", e)
		}
	}
}

func TestGetTimetableAbsent(t *testing.T) {
	svc := newTestService(newMockTimetableRepo())
	_, err := svc.GetTimetable(context.Background(), "A-101")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "timetable" {
		t.Fatalf("expected timetable NotFoundError, got %v", err)
	}
}

func TestDeleteTimetable(t *testing.T) {
	repo := newMockTimetableRepo()
	seedTimetable(repo, "A-101",
		testEntry("A-101", "MONDAY", "09:00", "09:50", "Physics", "f1"))
	svc := newTestService(repo)

	if err := svc.DeleteTimetable(context.Background(), "A-101"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.snapshot("A-101"); ok {
		t.Fatal("document survived deletion")
	}

	err := svc.DeleteTimetable(context.Background(), "A-101")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("second delete should be NotFoundError, got %v", err)
	}
}

var _ TimetableService = (*DefaultTimetableService)(nil)

func TestProjectionKeyShape(t *testing.T) {
	if k := projectionKey("room", "A-101", ""); k != "proj:room:A-101" {
		t.Fatalf("room key %q", k)
	}
	if k := projectionKey("room", "A-101", "day:"+string(models.Monday)); k != "proj:room:A-101:day:MONDAY" {
		t.Fatalf("day key %q", k)
	}
}
