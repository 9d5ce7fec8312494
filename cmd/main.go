package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workpass/database"
	"workpass/docs"
	"workpass/internal/controllers"
	"workpass/internal/repository"
	"workpass/internal/services"
	"workpass/internal/storage"
	"workpass/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "WorkPass API"
	docs.SwaggerInfo.Description = "Credential and work-readiness tracking for construction workers."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Optional redis for job listing cache
	var redisClient *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("Warning: redis unavailable, job listings will not be cached: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Upload staging
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	fileStorage, err := storage.NewLocalStorage(uploadDir, "/uploads")
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	credentialRepo := repository.NewCredentialRepository(database.DB)
	activityRepo := repository.NewActivityRepository(database.DB)
	applicationRepo := repository.NewJobApplicationRepository(database.DB)
	otpRepo := repository.NewOtpRepository(database.DB)

	var jobRepo repository.JobRepository
	if redisClient != nil {
		jobRepo = repository.NewCachedJobRepository(database.DB, redisClient)
	} else {
		jobRepo = repository.NewJobRepository(database.DB)
	}

	// OTP purge task, owned by the process lifecycle
	purgeWorker := services.NewOtpPurgeWorker(otpRepo, time.Hour)
	purgeWorker.Start()
	defer purgeWorker.Stop()

	dashboardService := services.NewDashboardService(userRepo, profileRepo, credentialRepo, activityRepo, applicationRepo)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	profileController := controllers.NewUserProfileController(profileRepo, activityRepo)
	credentialController := controllers.NewCredentialController(credentialRepo, activityRepo, fileStorage)
	jobController := controllers.NewJobController(jobRepo)
	applicationController := controllers.NewJobApplicationController(applicationRepo, jobRepo, activityRepo)
	activityController := controllers.NewActivityController(activityRepo)
	dashboardController := controllers.NewDashboardController(dashboardService)
	otpController := controllers.NewOtpController(otpRepo, userRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.MaxMultipartMemory = 10 << 20

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "WorkPass API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	// Uploaded credential files are served as-is
	router.Static("/uploads", fileStorage.BasePath())

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterCredentialRoutes(router, credentialController)
	routes.RegisterJobRoutes(router, jobController)
	routes.RegisterJobApplicationRoutes(router, applicationController)
	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterOtpRoutes(router, otpController)
	routes.RegisterSwaggerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
