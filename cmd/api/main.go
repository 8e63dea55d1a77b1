package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/erickazee/jobtrack/internal/auth"
	"github.com/erickazee/jobtrack/internal/config"
	"github.com/erickazee/jobtrack/internal/database"
	"github.com/erickazee/jobtrack/internal/handlers"
	"github.com/erickazee/jobtrack/internal/services"
)

func main() {
	// 1. Environment: .env is optional outside local dev
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Core services
	llmService, err := services.NewLLMService(cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatal("Failed to create LLM client: ", err)
	}

	matcherService := services.NewMatcherService()
	jobService := services.NewJobService(db, matcherService)
	resumeService := services.NewResumeService(db)
	eventService := services.NewEventService(db)
	userService := services.NewUserService(db, cfg.BcryptCost)
	tailorService := services.NewTailorService(jobService, resumeService, eventService, llmService)
	workflowService := services.NewWorkflowService(jobService, resumeService, eventService)

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpirationHours)

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(userService, tokenService)
	jobHandler := handlers.NewJobHandler(jobService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	eventHandler := handlers.NewEventHandler(eventService, jobService)
	tailorHandler := handlers.NewTailorHandler(tailorService, workflowService)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("/", auth.Middleware(tokenService))
		{
			authed.GET("/jobs", jobHandler.List)
			authed.GET("/jobs/pipeline", jobHandler.Pipeline)
			authed.POST("/jobs", jobHandler.Create)
			authed.PUT("/jobs/:id", jobHandler.Update)
			authed.DELETE("/jobs/:id", jobHandler.Delete)

			authed.GET("/jobs/:id/events", eventHandler.List)
			authed.POST("/jobs/:id/events", eventHandler.Create)
			authed.POST("/jobs/:id/prepare", tailorHandler.Prepare)

			authed.POST("/tailor-resume", tailorHandler.TailorResume)

			authed.GET("/resumes", resumeHandler.List)
			authed.GET("/resumes/master", resumeHandler.GetMaster)
			authed.PUT("/resumes/master", resumeHandler.SaveMaster)
			authed.GET("/resumes/:id", resumeHandler.Get)
		}
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
