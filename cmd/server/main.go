package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"solvegrid/internal/api"
	"solvegrid/internal/app/service"
	"solvegrid/internal/app/worker"
	"solvegrid/internal/common/security"
	"solvegrid/internal/domain/repository"
	"solvegrid/internal/platform/cache"
	"solvegrid/internal/platform/config"
	"solvegrid/internal/platform/database"
	"solvegrid/internal/platform/judge"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	platformRepo := repository.NewPgPlatformRepository(database.DB)

	// 6. Initialize collaborators and services
	judgeClient := judge.NewClient(config.AppConfig.JudgeAPIBaseURL, config.AppConfig.JudgeAPITimeout)
	logCache := cache.NewSubmissionLogCache(cache.RDB, config.AppConfig.SubmissionCacheTTL)

	authService := service.NewAuthService(userRepo)
	platformService := service.NewPlatformService(platformRepo, logCache)
	dashboardService := service.NewDashboardService(platformRepo, logCache, judgeClient, config.AppConfig.DisplayLocation)

	// 7. Initialize Refresh Worker (as a goroutine)
	refreshWorker := worker.NewRefreshWorker(platformRepo, logCache, judgeClient, config.AppConfig.RefreshInterval)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	go refreshWorker.Start(workerCtx)
	fmt.Println("Refresh worker started.")

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, platformService, dashboardService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	workerCancel() // Signal worker to stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server and worker stopped gracefully.")
}
