package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/prodigyhire/backend/config"
	"github.com/prodigyhire/backend/database"
	"github.com/prodigyhire/backend/internal/auth"
	"github.com/prodigyhire/backend/internal/controller"
	companyctrl "github.com/prodigyhire/backend/internal/controller/company"
	studentctrl "github.com/prodigyhire/backend/internal/controller/student"
	"github.com/prodigyhire/backend/internal/logger"
	"github.com/prodigyhire/backend/internal/middleware"
	"github.com/prodigyhire/backend/internal/model"
	"github.com/prodigyhire/backend/internal/repository"
	"github.com/prodigyhire/backend/internal/service"
)

// @title Prodigy Hire API
// @version 1.0
// @description Campus recruitment platform: job postings with eligibility rules, applications with a status timeline, aptitude tests and notifications.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			auth.NewManager,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewJobRepository,
			repository.NewSavedJobRepository,
			repository.NewApplicationRepository,
			repository.NewAptitudeTestRepository,
			repository.NewTestResultRepository,
			repository.NewNotificationRepository,
		),

		fx.Provide(
			service.NewNotificationService,
			service.NewJobService,
			service.NewApplicationService,
			service.NewAptitudeService,
		),

		fx.Provide(
			studentctrl.NewJobController,
			studentctrl.NewApplicationController,
			studentctrl.NewAptitudeController,
			companyctrl.NewJobController,
			companyctrl.NewApplicationController,
			companyctrl.NewTestController,
			controller.NewNotificationController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authMgr *auth.Manager,
	studentJobCtrl *studentctrl.JobController,
	studentAppCtrl *studentctrl.ApplicationController,
	studentAptitudeCtrl *studentctrl.AptitudeController,
	companyJobCtrl *companyctrl.JobController,
	companyAppCtrl *companyctrl.ApplicationController,
	companyTestCtrl *companyctrl.TestController,
	notificationCtrl *controller.NotificationController,
) {
	authenticated := middleware.Authenticate(authMgr)
	studentOnly := middleware.RequireRoles(model.RoleStudent)
	companyOnly := middleware.RequireRoles(model.RoleCompany)

	api := router.Group("/api")

	jobs := api.Group("/jobs")
	{
		jobs.GET("", studentJobCtrl.ListJobs)
		jobs.GET("/saved", authenticated, studentOnly, studentJobCtrl.SavedJobs)
		jobs.GET("/company/my-jobs", authenticated, companyOnly, companyJobCtrl.CompanyJobs)
		jobs.GET("/:id", studentJobCtrl.GetJob)
		jobs.POST("", authenticated, companyOnly, companyJobCtrl.CreateJob)
		jobs.PATCH("/:id", authenticated, companyOnly, companyJobCtrl.UpdateJob)
		jobs.DELETE("/:id", authenticated, middleware.RequireRoles(model.RoleCompany, model.RoleAdmin), companyJobCtrl.DeleteJob)
		jobs.POST("/:id/save", authenticated, studentOnly, studentJobCtrl.ToggleSaveJob)
		jobs.POST("/:id/apply", authenticated, studentOnly, studentAppCtrl.Apply)
		jobs.GET("/:id/applicants", authenticated, companyOnly, companyAppCtrl.JobApplicants)
	}

	applications := api.Group("/applications")
	{
		applications.GET("", authenticated, studentOnly, studentAppCtrl.MyApplications)
		applications.GET("/company/all", authenticated, companyOnly, companyAppCtrl.AllApplications)
		applications.PATCH("/:id/status", authenticated, companyOnly, companyAppCtrl.UpdateStatus)
		applications.POST("/bulk-update", authenticated, companyOnly, companyAppCtrl.BulkUpdate)
	}

	aptitude := api.Group("/aptitude")
	{
		aptitude.POST("/create", authenticated, companyOnly, companyTestCtrl.CreateTest)
		aptitude.GET("/company", authenticated, companyOnly, companyTestCtrl.CompanyTests)
		aptitude.GET("/available", authenticated, studentOnly, studentAptitudeCtrl.AvailableTests)
		aptitude.GET("/results", authenticated, studentOnly, studentAptitudeCtrl.MyResults)
		aptitude.GET("/:id/start", authenticated, studentOnly, studentAptitudeCtrl.StartTest)
		aptitude.POST("/:id/submit", authenticated, studentOnly, studentAptitudeCtrl.SubmitTest)
		aptitude.GET("/:id/results", authenticated, companyOnly, companyTestCtrl.TestResults)
		aptitude.DELETE("/:id", authenticated, companyOnly, companyTestCtrl.DeleteTest)
	}

	notifications := api.Group("/notifications", authenticated)
	{
		notifications.GET("", notificationCtrl.List)
		notifications.PATCH("/read-all", notificationCtrl.MarkAllRead)
		notifications.PATCH("/:id/read", notificationCtrl.MarkRead)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Prodigy Hire API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.SavedJob{},
		&model.Application{},
		&model.TimelineEntry{},
		&model.AptitudeTest{},
		&model.Question{},
		&model.TestResult{},
		&model.ResultAnswer{},
		&model.Notification{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
