package timetable

import (
	"encoding/json"
	"regexp"
	"strings"

	"timegrid/models"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// validClock reports whether s is a zero-padded 24-hour HH:MM value.
func validClock(s string) bool {
	return clockPattern.MatchString(s)
}

// validateAndNormalize checks a generation request and, when valid, produces
// the solver-facing payload. Every violation is reported as a
// ValidationError identifying the offending subject/faculty and field; the
// solver is never called for a rejected request.
func validateAndNormalize(roomID string, req models.GenerationRequest) (*models.SolverRequest, error) {
	rooms := req.Rooms
	if len(rooms) == 0 && roomID != "" {
		rooms = []string{roomID}
	}
	if len(rooms) == 0 {
		return nil, &ValidationError{Field: "rooms", Message: "at least one room is required"}
	}
	if len(req.Subjects) == 0 {
		return nil, &ValidationError{Field: "subjects", Message: "at least one subject is required"}
	}

	if req.CollegeTime.StartTime == "" || req.CollegeTime.EndTime == "" {
		return nil, &ValidationError{Field: "college_time", Message: "college time must have both a start and an end"}
	}
	for _, b := range req.Breaks {
		if b.StartTime == "" || b.EndTime == "" {
			return nil, &ValidationError{
				Field:   "break_",
				Message: "break interval must have both a start and an end",
			}
		}
	}

	subjects := make([]models.SolverSubject, 0, len(req.Subjects))
	for _, subj := range req.Subjects {
		name := strings.TrimSpace(subj.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Message: "subject name must not be empty"}
		}
		if subj.Time <= 0 {
			return nil, &ValidationError{Subject: name, Field: "time", Message: "duration must be a positive number"}
		}
		if subj.ClassesPerWeek <= 0 {
			return nil, &ValidationError{
				Subject: name,
				Field:   "no_of_classes_per_week",
				Message: "classes per week must be a positive integer",
			}
		}
		if len(subj.Faculty) == 0 {
			return nil, &ValidationError{Subject: name, Field: "faculty", Message: "at least one faculty member is required"}
		}

		faculty := make([]models.SolverFaculty, 0, len(subj.Faculty))
		for _, f := range subj.Faculty {
			if f.ID == "" {
				return nil, &ValidationError{Subject: name, Field: "faculty.id", Message: "faculty id must not be empty"}
			}
			if strings.TrimSpace(f.Name) == "" {
				return nil, &ValidationError{Subject: name, Faculty: f.ID, Field: "faculty.name", Message: "faculty name must not be empty"}
			}

			windows, err := decodeAvailability(f.Availability)
			if err != nil {
				return nil, &ValidationError{
					Subject: name,
					Faculty: f.ID,
					Field:   "availability",
					Message: "availability could not be decoded: " + err.Error(),
				}
			}
			for _, w := range windows {
				if strings.TrimSpace(w.Day) == "" {
					return nil, &ValidationError{Subject: name, Faculty: f.ID, Field: "availability.day", Message: "availability window is missing a day tag"}
				}
				if !validClock(w.StartTime) || !validClock(w.EndTime) {
					return nil, &ValidationError{
						Subject: name,
						Faculty: f.ID,
						Field:   "availability",
						Message: "availability times must be 24-hour HH:MM",
					}
				}
				if w.StartTime >= w.EndTime {
					return nil, &ValidationError{
						Subject: name,
						Faculty: f.ID,
						Field:   "availability",
						Message: "availability start must precede end",
					}
				}
			}

			faculty = append(faculty, models.SolverFaculty{
				ID:           f.ID,
				Name:         f.Name,
				Availability: windows,
			})
		}

		subjects = append(subjects, models.SolverSubject{
			Name:           name,
			Time:           subj.Time,
			ClassesPerWeek: subj.ClassesPerWeek,
			Faculty:        faculty,
			IsSpecial:      subj.IsSpecial,
		})
	}

	return &models.SolverRequest{
		Subjects:    subjects,
		Breaks:      req.Breaks,
		CollegeTime: req.CollegeTime,
		Rooms:       rooms,
	}, nil
}

// decodeAvailability accepts the two availability encodings seen in the
// wild: a structured window list, or that same list JSON-encoded into a
// string. A missing value is an empty list.
func decodeAvailability(raw json.RawMessage) ([]models.TimeWindow, error) {
	if len(raw) == 0 {
		return []models.TimeWindow{}, nil
	}

	var windows []models.TimeWindow
	if err := json.Unmarshal(raw, &windows); err == nil {
		return windows, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}
	if strings.TrimSpace(encoded) == "" {
		return []models.TimeWindow{}, nil
	}
	if err := json.Unmarshal([]byte(encoded), &windows); err != nil {
		return nil, err
	}
	return windows, nil
}
