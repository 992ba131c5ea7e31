// File: models/solver.go
package models

import "encoding/json"

// SolverRequest is the wire payload sent to the external schedule solver.
type SolverRequest struct {
	Subjects    []SolverSubject `json:"subjects"`
	Breaks      []BreakInterval `json:"break_"`
	CollegeTime CollegeTime     `json:"college_time"`
	Rooms       []string        `json:"rooms"`
}

// SolverSubject mirrors GenerationSubject with availability already decoded.
type SolverSubject struct {
	Name           string          `json:"name"`
	Time           float64         `json:"time"`
	ClassesPerWeek int             `json:"no_of_classes_per_week"`
	Faculty        []SolverFaculty `json:"faculty"`
	IsSpecial      bool            `json:"is_special,omitempty"`
}

// SolverFaculty carries faculty identity and structured availability windows.
type SolverFaculty struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Availability []TimeWindow `json:"availability"`
}

// SolverMetrics are the solver-reported quality numbers. They are advisory:
// persistence decisions never depend on them.
type SolverMetrics struct {
	Fitness         *float64                   `json:"fitness,omitempty"`
	Utilization     *float64                   `json:"utilization_percentage,omitempty"`
	TotalAssigned   *int                       `json:"total_assignments,omitempty"`
	Unassigned      []json.RawMessage          `json:"unassigned,omitempty"`
	SubjectCoverage map[string]json.RawMessage `json:"subject_coverage,omitempty"`
}

// SolverResult is the normalized outcome of a solver call: both known
// response shapes reduce to this before anything touches storage.
type SolverResult struct {
	TimeSlots []string
	Days      map[Day][]ScheduleEntry
	Metrics   *SolverMetrics
}

// Entries flattens the per-day lists into a single canonical list, in fixed
// weekday order.
func (r *SolverResult) Entries() []ScheduleEntry {
	var out []ScheduleEntry
	for _, d := range Weekdays {
		out = append(out, r.Days[d]...)
	}
	return out
}
