// File: timegrid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timegrid/config"
	"timegrid/database"
	facultyRepo "timegrid/database/repository/faculty"
	roomRepo "timegrid/database/repository/room"
	subjectRepo "timegrid/database/repository/subject"
	timetableRepo "timegrid/database/repository/timetable"
	"timegrid/handlers"
	"timegrid/middleware"
	"timegrid/routes"
	"timegrid/services/solver"
	"timegrid/services/timetable"
	"timegrid/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitProjectionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ttRepo := timetableRepo.NewMongoTimetableRepo()
	rRepo := roomRepo.NewMongoRoomRepo()
	fRepo := facultyRepo.NewMongoFacultyRepo()
	sRepo := subjectRepo.NewMongoSubjectRepo()

	// services.
	solverClient := solver.NewHTTPClient(logger)
	timetableService := &timetable.DefaultTimetableService{
		Repo:    ttRepo,
		Rooms:   rRepo,
		Faculty: fRepo,
		Solver:  solverClient,
		Cache:   utils.GetProjectionCacheClient(),
		Logger:  logger,
	}

	timetableHandler := handlers.NewTimetableHandler(timetableService, logger)
	referenceHandler := handlers.NewReferenceHandler(rRepo, fRepo, sRepo, logger)

	// Register routes.
	routes.RegisterRoutes(router, timetableHandler, referenceHandler)

	utils.StartHealthMonitor(utils.GetProjectionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
