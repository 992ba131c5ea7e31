package routes

import (
	"net/http"
	"time"

	"timegrid/handlers"
	"timegrid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTimetableRoutes registers the scheduling core endpoints.
func RegisterTimetableRoutes(r *gin.Engine, th *handlers.TimetableHandler) {
	api := r.Group("/api/timetable")
	{
		api.GET("", th.ListTimetables)
		api.GET("/faculty/:facultyId", th.GetFacultySchedule)

		room := api.Group("/room/:roomId")
		{
			room.GET("", th.GetTimetable)
			room.GET("/day/:day", th.GetDaySchedule)
			room.POST("/generate", th.GenerateTimetable)
			room.PUT("/slot", th.UpsertSlot)
			room.DELETE("/slot", th.DeleteSlot)
			room.DELETE("", th.DeleteTimetable)
		}
	}
}

// RegisterReferenceRoutes registers read-only reference-data lookups.
func RegisterReferenceRoutes(r *gin.Engine, rh *handlers.ReferenceHandler) {
	api := r.Group("/api")
	{
		api.GET("/rooms", rh.ListRooms)
		api.GET("/rooms/:id", rh.GetRoom)
		api.GET("/faculty", rh.ListFaculty)
		api.GET("/faculty/:id", rh.GetFaculty)
		api.GET("/subjects", rh.ListSubjects)
		api.GET("/subjects/:id", rh.GetSubject)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, th *handlers.TimetableHandler, rh *handlers.ReferenceHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTimetableRoutes(r, th)
	RegisterReferenceRoutes(r, rh)
	RegisterHealthRoute(r)
}
