package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-reminder-api/internal/config"
	"task-reminder-api/internal/database"
	"task-reminder-api/internal/jobs"
	"task-reminder-api/internal/notify"
	"task-reminder-api/internal/routes"
	"task-reminder-api/internal/scheduler"
	"task-reminder-api/pkg/logger"
)

func main() {
	cfg := config.Get()

	// Init database
	database.InitDB()
	db := database.GetDB()

	// Background sweeps: daily priority recomputation, per-minute reminders
	sched := scheduler.New()
	sched.Register(scheduler.Job{
		Name:     "priority-sweep",
		Interval: cfg.PriorityInterval,
		Run:      jobs.NewPriorityJob(db).Run,
	})
	sched.Register(scheduler.Job{
		Name:     "reminder-sweep",
		Interval: cfg.ReminderInterval,
		Run:      jobs.NewReminderJob(db, notify.NewVoiceCaller()).Run,
	})
	sched.Start(context.Background())

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: ginRoutes,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.HTTPPort)
		log.Println("API endpoints:")
		log.Println("  POST   /register")
		log.Println("  POST   /login")
		log.Println("  POST   /tasks")
		log.Println("  GET    /tasks")
		log.Println("  PUT    /tasks/:id")
		log.Println("  DELETE /tasks/:id")
		log.Println("  POST   /subtasks")
		log.Println("  GET    /subtasks")
		log.Println("  PUT    /subtasks/:id")
		log.Println("  DELETE /subtasks/:id")
		log.Println("  GET    /health")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := context.Background()
	logger.Info(ctx, "Shutting down")
	sched.Stop()
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Server shutdown error", "error", err)
	}
	logger.Info(ctx, "Server stopped")
}
