package solver

import (
	"encoding/json"

	"timegrid/models"
)

// responseKind tags which of the known solver response shapes a body matched.
type responseKind int

const (
	kindUnknown responseKind = iota
	// kindPrimary is the nested shape: {"weekly_schedule": {"time_slots": [...], "days": {...}}, metrics...}
	kindPrimary
	// kindLegacy is the flat shape: {"schedule": {...}, "time_slots": [...]}
	kindLegacy
)

// wireEntry is one schedule assignment as the solver emits it. Pointers are
// used in day lists because the solver pads unassigned slots with nulls.
type wireEntry struct {
	SubjectName   string  `json:"subject_name"`
	FacultyID     string  `json:"faculty_id"`
	FacultyName   string  `json:"faculty_name"`
	Day           string  `json:"day"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	RoomID        string  `json:"room_id"`
	IsSpecial     bool    `json:"is_special"`
	PriorityScore float64 `json:"priority_score"`
}

type weeklySchedule struct {
	TimeSlots []string                `json:"time_slots"`
	Days      map[string][]*wireEntry `json:"days"`
}

// envelope probes for both shapes and the metrics in a single decode.
type envelope struct {
	Weekly    *weeklySchedule         `json:"weekly_schedule"`
	Schedule  map[string][]*wireEntry `json:"schedule"`
	TimeSlots []string                `json:"time_slots"`

	Fitness         *float64                   `json:"fitness"`
	Utilization     *float64                   `json:"utilization_percentage"`
	TotalAssigned   *int                       `json:"total_assignments"`
	Unassigned      []json.RawMessage          `json:"unassigned"`
	SubjectCoverage map[string]json.RawMessage `json:"subject_coverage"`
}

func (e *envelope) kind() responseKind {
	switch {
	case e.Weekly != nil && e.Weekly.Days != nil:
		return kindPrimary
	case e.Schedule != nil && e.TimeSlots != nil:
		return kindLegacy
	default:
		return kindUnknown
	}
}

// ParseResponse validates a solver response body against the two known
// shapes and normalizes whichever matched into a SolverResult. A body
// matching neither shape is a FormatError and must not be persisted.
func ParseResponse(body []byte) (*models.SolverResult, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	switch env.kind() {
	case kindPrimary:
		return &models.SolverResult{
			TimeSlots: env.Weekly.TimeSlots,
			Days:      normalizeDays(env.Weekly.Days),
			Metrics:   env.metrics(),
		}, nil
	case kindLegacy:
		return &models.SolverResult{
			TimeSlots: env.TimeSlots,
			Days:      normalizeDays(env.Schedule),
			Metrics:   env.metrics(),
		}, nil
	default:
		return nil, &FormatError{Reason: "body carries neither weekly_schedule nor schedule/time_slots"}
	}
}

func (e *envelope) metrics() *models.SolverMetrics {
	return &models.SolverMetrics{
		Fitness:         e.Fitness,
		Utilization:     e.Utilization,
		TotalAssigned:   e.TotalAssigned,
		Unassigned:      e.Unassigned,
		SubjectCoverage: e.SubjectCoverage,
	}
}

// normalizeDays canonicalizes day names, drops null slot placeholders and
// unknown day buckets, and stamps each entry with its bucket's day.
func normalizeDays(raw map[string][]*wireEntry) map[models.Day][]models.ScheduleEntry {
	days := make(map[models.Day][]models.ScheduleEntry, len(models.Weekdays))
	for _, d := range models.Weekdays {
		days[d] = []models.ScheduleEntry{}
	}
	for rawDay, list := range raw {
		day, ok := models.CanonicalDay(rawDay)
		if !ok {
			continue
		}
		for _, we := range list {
			if we == nil {
				continue
			}
			days[day] = append(days[day], models.ScheduleEntry{
				SubjectName:   we.SubjectName,
				FacultyID:     we.FacultyID,
				FacultyName:   we.FacultyName,
				Day:           day,
				StartTime:     we.StartTime,
				EndTime:       we.EndTime,
				RoomID:        we.RoomID,
				IsSpecial:     we.IsSpecial,
				PriorityScore: we.PriorityScore,
			})
		}
	}
	return days
}
