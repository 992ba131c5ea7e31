package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	facultyRepo "timegrid/database/repository/faculty"
	roomRepo "timegrid/database/repository/room"
	subjectRepo "timegrid/database/repository/subject"
)

// ReferenceHandler serves read-only lookups of the Room/Faculty/Subject
// reference data. Managing those records lives outside this service; the
// scheduling core only reads them.
type ReferenceHandler struct {
	Rooms    roomRepo.RoomRepository
	Faculty  facultyRepo.FacultyRepository
	Subjects subjectRepo.SubjectRepository
	Logger   *zap.Logger
}

// NewReferenceHandler constructs a ReferenceHandler.
func NewReferenceHandler(rooms roomRepo.RoomRepository, faculty facultyRepo.FacultyRepository, subjects subjectRepo.SubjectRepository, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{Rooms: rooms, Faculty: faculty, Subjects: subjects, Logger: logger}
}

// ListRooms returns all room records.
func (h *ReferenceHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Rooms.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns one room record by id.
func (h *ReferenceHandler) GetRoom(c *gin.Context) {
	room, err := h.Rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("failed to fetch room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch room"})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListFaculty returns all faculty records.
func (h *ReferenceHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.Faculty.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list faculty", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list faculty"})
		return
	}
	c.JSON(http.StatusOK, faculty)
}

// GetFaculty returns one faculty record by id.
func (h *ReferenceHandler) GetFaculty(c *gin.Context) {
	fac, err := h.Faculty.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("failed to fetch faculty", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch faculty"})
		return
	}
	if fac == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty not found"})
		return
	}
	c.JSON(http.StatusOK, fac)
}

// ListSubjects returns all subject records.
func (h *ReferenceHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.Subjects.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list subjects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list subjects"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// GetSubject returns one subject record by id.
func (h *ReferenceHandler) GetSubject(c *gin.Context) {
	subj, err := h.Subjects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("failed to fetch subject", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch subject"})
		return
	}
	if subj == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
		return
	}
	c.JSON(http.StatusOK, subj)
}
