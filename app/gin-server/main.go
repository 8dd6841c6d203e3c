package main

import (
	"context"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nexlify/careers/config"
	"github.com/nexlify/careers/internal/api/handlers"
	"github.com/nexlify/careers/internal/api/middleware"
	"github.com/nexlify/careers/internal/api/routes"
	"github.com/nexlify/careers/internal/cache"
	"github.com/nexlify/careers/internal/logger"
	"github.com/nexlify/careers/internal/providers/llm"
	mongorepo "github.com/nexlify/careers/internal/repositories/mongo"
	pgrepo "github.com/nexlify/careers/internal/repositories/postgres"
	"github.com/nexlify/careers/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	// PostgreSQL: applicants and job postings
	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("PostgreSQL init error")
	}
	log.Info("PostgreSQL connected")

	// Redis: draft form sessions
	if err := config.InitRedis(); err != nil {
		log.WithError(err).Fatal("Redis init error")
	}
	log.Info("Redis connected")

	// MongoDB: submission audit trail, optional
	var auditRepo mongorepo.SubmissionEventRepository
	if os.Getenv("MONGO_URI") != "" {
		if err := config.InitMongo(); err != nil {
			log.WithError(err).Fatal("MongoDB init error")
		}
		if err := config.EnsureMongoIndexes(); err != nil {
			log.WithError(err).Fatal("MongoDB index error")
		}
		auditRepo = mongorepo.NewSubmissionEventRepo(config.MongoDatabase())
		log.Info("MongoDB connected")
	} else {
		log.Warn("MONGO_URI not set; submission events go to logs only")
	}

	// Vertex AI: acknowledgment generation, optional
	var provider llm.Provider
	if project := os.Getenv("GCP_PROJECT_ID"); project != "" {
		location := os.Getenv("GCP_LOCATION")
		if location == "" {
			location = "us-central1"
		}
		p, err := llm.NewVertexGemini(ctx, project, location, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.WithError(err).Fatal("Vertex AI init error")
		}
		defer p.Close()
		provider = p
		log.Info("Vertex AI connected")
	} else {
		log.Warn("GCP_PROJECT_ID not set; acknowledgments use the static fallback")
	}

	confirmOnly, _ := strconv.ParseBool(os.Getenv("CONFIRM_ONLY"))

	// Repositories and services
	applicantRepo := pgrepo.NewApplicantRepo(config.PostgresDB)
	postingRepo := pgrepo.NewPostingRepo(config.PostgresDB)

	draftSvc := services.NewDraftService(cache.NewRedisCache(config.RedisClient))
	postingSvc := services.NewPostingService(postingRepo)
	ackSvc := services.NewAcknowledgmentService(provider, log)
	appSvc := services.NewApplicationService(applicantRepo, draftSvc, auditRepo, log, confirmOnly)

	if err := postingSvc.SeedDefaults(ctx); err != nil {
		log.WithError(err).Fatal("posting seed error")
	}

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-Id"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Draft:       handlers.NewDraftHandler(draftSvc, appSvc, ackSvc),
		Application: handlers.NewApplicationHandler(appSvc, ackSvc),
		Posting:     handlers.NewPostingHandler(postingSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server failed to start")
	}
}
