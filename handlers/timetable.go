package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timegrid/models"
	"timegrid/services/solver"
	"timegrid/services/timetable"
)

// TimetableHandler exposes the scheduling core over HTTP.
type TimetableHandler struct {
	Svc    timetable.TimetableService
	Logger *zap.Logger
}

// NewTimetableHandler constructs a TimetableHandler.
func NewTimetableHandler(svc timetable.TimetableService, logger *zap.Logger) *TimetableHandler {
	return &TimetableHandler{Svc: svc, Logger: logger}
}

// respondError maps the service error taxonomy onto HTTP statuses. Callers
// need to tell "service down" from "service too slow" from "bad input", so
// each upstream failure mode keeps its own status.
func (h *TimetableHandler) respondError(c *gin.Context, err error) {
	var (
		notFound    *timetable.NotFoundError
		validation  *timetable.ValidationError
		conflict    *timetable.ConflictError
		persistence *timetable.PersistenceError
		unavailable *solver.UnavailableError
		timeout     *solver.TimeoutError
		status      *solver.StatusError
		format      *solver.FormatError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   validation.Error(),
			"subject": validation.Subject,
			"field":   validation.Field,
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": conflict.Error(),
			"room":  conflict.Room,
			"day":   conflict.Day,
			"start": conflict.Start,
			"end":   conflict.End,
		})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "schedule solver is unreachable"})
	case errors.As(err, &timeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "schedule solver timed out"})
	case errors.As(err, &status):
		c.JSON(http.StatusBadGateway, gin.H{"error": status.Error(), "upstreamStatus": status.Status})
	case errors.As(err, &format):
		c.JSON(http.StatusBadGateway, gin.H{"error": format.Error()})
	case errors.As(err, &persistence):
		h.Logger.Error("persistence failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist timetable"})
	default:
		h.Logger.Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// GenerateTimetable runs schedule generation for a room.
func (h *TimetableHandler) GenerateTimetable(c *gin.Context) {
	roomID := c.Param("roomId")

	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcome, err := h.Svc.Generate(c.Request.Context(), roomID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := http.StatusOK
	if outcome.Created {
		status = http.StatusCreated
	}
	c.JSON(status, outcome)
}

// ListTimetables returns every stored timetable document.
func (h *TimetableHandler) ListTimetables(c *gin.Context) {
	tts, err := h.Svc.ListTimetables(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tts)
}

// GetTimetable returns one room's timetable document.
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	tt, err := h.Svc.GetTimetable(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tt)
}

// GetDaySchedule returns the day projection of a room's timetable.
func (h *TimetableHandler) GetDaySchedule(c *gin.Context) {
	entries, err := h.Svc.ByDay(c.Request.Context(), c.Param("roomId"), c.Param("day"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": entries})
}

// GetFacultySchedule returns the faculty projection across all rooms.
func (h *TimetableHandler) GetFacultySchedule(c *gin.Context) {
	entries, err := h.Svc.ByFaculty(c.Request.Context(), c.Param("facultyId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": entries})
}

// slotEditInput is the body of a manual slot edit. Target names the slot
// being edited; when omitted it defaults to the entry's own slot.
type slotEditInput struct {
	Target *struct {
		Day       string `json:"day"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	} `json:"target,omitempty"`
	Entry models.ScheduleEntry `json:"entry"`
}

// UpsertSlot applies a manual single-slot edit through the consistency guard.
func (h *TimetableHandler) UpsertSlot(c *gin.Context) {
	roomID := c.Param("roomId")

	var input slotEditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	target := models.NewSlotKey(roomID, string(input.Entry.Day), input.Entry.StartTime, input.Entry.EndTime)
	if input.Target != nil {
		target = models.NewSlotKey(roomID, input.Target.Day, input.Target.StartTime, input.Target.EndTime)
	}

	tt, err := h.Svc.UpsertSlot(c.Request.Context(), roomID, target, input.Entry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tt)
}

// DeleteSlot removes the entry occupying a slot; removing an empty slot
// succeeds with nothing to do.
func (h *TimetableHandler) DeleteSlot(c *gin.Context) {
	roomID := c.Param("roomId")
	target := models.NewSlotKey(roomID, c.Query("day"), c.Query("startTime"), c.Query("endTime"))

	if err := h.Svc.DeleteSlot(c.Request.Context(), roomID, target); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// DeleteTimetable destroys a room's timetable document.
func (h *TimetableHandler) DeleteTimetable(c *gin.Context) {
	if err := h.Svc.DeleteTimetable(c.Request.Context(), c.Param("roomId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
