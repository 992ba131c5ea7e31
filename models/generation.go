// File: models/generation.go
package models

import "encoding/json"

// GenerationRequest is the transient input to timetable generation. It is
// never persisted as-is; only the solved result is.
type GenerationRequest struct {
	Subjects    []GenerationSubject `json:"subjects"`
	Breaks      []BreakInterval     `json:"break_"`
	CollegeTime CollegeTime         `json:"college_time"`
	Rooms       []string            `json:"rooms"`
}

// GenerationSubject describes one subject to schedule.
type GenerationSubject struct {
	Name           string              `json:"name"`
	Time           float64             `json:"time"`
	ClassesPerWeek int                 `json:"no_of_classes_per_week"`
	Faculty        []GenerationFaculty `json:"faculty"`
	IsSpecial      bool                `json:"is_special,omitempty"`
}

// GenerationFaculty is a faculty member attached to a subject. Availability
// is kept raw here because clients send it either as a structured window list
// or as a JSON-encoded string; it is decoded during validation so a malformed
// value can be reported against the owning subject.
type GenerationFaculty struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Availability json.RawMessage `json:"availability,omitempty"`
}

// TimeWindow is a decoded faculty availability window; Day may be AllDays.
type TimeWindow struct {
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// GenerationOutcome is what the orchestrator reports back to the caller after
// a committed generation. Metrics are the solver's own quality numbers,
// passed through unmodified.
type GenerationOutcome struct {
	Created   bool           `json:"created"`
	Timetable *Timetable     `json:"timetable"`
	Metrics   *SolverMetrics `json:"metrics,omitempty"`
}
