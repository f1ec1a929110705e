package main

import (
	"log"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/config"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/database"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/handlers"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/mailer"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/middleware"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	_ "github.com/AkmelFed12/PRESELECTION-QI26-tst/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Préselection QI26 API
// @version         1.0
// @description     API for contest registration, public voting, jury scoring and community feed
// @host            localhost:10000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.BackfillCandidateCodes(db, cfg.CodePrefix)

	mail := mailer.New(cfg)

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword)
	if err := authService.SeedPasswordHash(); err != nil {
		log.Fatalf("failed to seed admin credentials: %v", err)
	}

	settingsService := services.NewSettingsService(db)
	candidateService := services.NewCandidateService(db, mail, cfg.CodePrefix)
	votingService := services.NewVotingService(db)
	scoringService := services.NewScoringService(db)
	contactService := services.NewContactService(db, mail, cfg.SMTPTo)
	donationService := services.NewDonationService(db)
	feedService := services.NewFeedService(db)
	engagementService := services.NewEngagementService(db)
	pollService := services.NewPollService(db)
	mediaService := services.NewMediaService(db, services.DirLister{Dir: cfg.MediaDir})
	auditService := services.NewAuditService(db)
	dashboardService := services.NewDashboardService(
		candidateService, votingService, scoringService,
		settingsService, contactService, donationService,
	)

	publicHandler := handlers.NewPublicHandler(db, candidateService, votingService, scoringService, settingsService)
	candidateHandler := handlers.NewCandidateHandler(candidateService, settingsService, auditService, cfg)
	voteHandler := handlers.NewVoteHandler(votingService, settingsService)
	contactHandler := handlers.NewContactHandler(contactService, auditService)
	feedHandler := handlers.NewFeedHandler(feedService, engagementService, auditService)
	donationHandler := handlers.NewDonationHandler(donationService, auditService)
	pollHandler := handlers.NewPollHandler(pollService)
	mediaHandler := handlers.NewMediaHandler(mediaService, auditService)
	adminHandler := handlers.NewAdminHandler(authService, settingsService, scoringService, dashboardService, auditService)

	r := gin.Default()

	corsOrigins := []string{"*"}
	if cfg.CORSOrigin != "" {
		corsOrigins = []string{cfg.CORSOrigin}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: cfg.CORSOrigin != "",
	}))
	r.Use(middleware.SecurityHeaders())

	r.Static("/media", cfg.MediaDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	api := r.Group("/api")
	{
		api.GET("/health", publicHandler.Health)
		api.GET("/public-candidates", publicHandler.Candidates)
		api.GET("/public-settings", publicHandler.Settings)
		api.GET("/public-results", publicHandler.Results)

		api.POST("/register",
			limiter.Limit("register", 10, "Trop de tentatives d'inscription. Réessayez plus tard."),
			candidateHandler.Register)

		api.GET("/votes", voteHandler.Summary)
		api.POST("/votes",
			limiter.Limit("votes", 30, "Trop de votes depuis cette adresse. Réessayez plus tard."),
			voteHandler.Cast)

		api.GET("/scores/ranking", adminHandler.Ranking)

		api.POST("/contact",
			limiter.Limit("contact", 8, "Trop de messages. Réessayez plus tard."),
			contactHandler.Submit)

		api.GET("/posts", feedHandler.Posts)
		api.POST("/posts", feedHandler.SubmitPost)
		api.POST("/posts/:id/like", feedHandler.LikePost)
		api.POST("/posts/:id/reaction", feedHandler.ReactPost)
		api.POST("/posts/:id/comments", feedHandler.CommentPost)
		api.GET("/posts/:id/comments", feedHandler.PostComments)
		api.POST("/posts/:id/share", feedHandler.SharePost)

		api.GET("/stories/active", feedHandler.ActiveStories)
		api.POST("/stories", feedHandler.SubmitStory)
		api.POST("/stories/:id/like", feedHandler.LikeStory)
		api.POST("/stories/:id/reaction", feedHandler.ReactStory)

		api.GET("/donations", donationHandler.Summary)
		api.POST("/donations", donationHandler.Submit)

		api.GET("/poll", pollHandler.Active)
		api.POST("/poll/vote", pollHandler.Vote)

		api.GET("/public-media", mediaHandler.List)
		api.GET("/public-media/stats", mediaHandler.Stats)
		api.POST("/public-media/:name/event", mediaHandler.Event)

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			authed := admin.Group("")
			authed.Use(middleware.AdminAuth(authService))
			{
				authed.POST("/change-password", adminHandler.ChangePassword)
				authed.GET("/dashboard", adminHandler.Dashboard)

				authed.POST("/candidates", candidateHandler.AdminCreate)
				authed.PUT("/candidates/:id", candidateHandler.AdminUpdate)
				authed.DELETE("/candidates/:id", candidateHandler.AdminDelete)
				authed.POST("/candidates/bulk-replace", candidateHandler.AdminBulkReplace)

				authed.GET("/contact-messages", contactHandler.AdminList)
				authed.PUT("/contact-messages/:id", contactHandler.AdminArchive)
				authed.DELETE("/contact-messages/:id", contactHandler.AdminDelete)

				authed.GET("/posts", feedHandler.AdminPosts)
				authed.PUT("/posts/:id", feedHandler.AdminSetPostStatus)
				authed.DELETE("/posts/:id", feedHandler.AdminDeletePost)
				authed.GET("/stories", feedHandler.AdminStories)
				authed.PUT("/stories/:id", feedHandler.AdminSetStoryStatus)
				authed.DELETE("/stories/:id", feedHandler.AdminDeleteStory)

				authed.GET("/donations", donationHandler.AdminList)
				authed.PUT("/donations/:id", donationHandler.AdminSetStatus)

				authed.GET("/media", mediaHandler.List)
				authed.DELETE("/media/:name", mediaHandler.AdminDelete)
			}
		}

		api.PUT("/tournament-settings", middleware.AdminAuth(authService), adminHandler.UpdateSettings)
		api.POST("/scores", middleware.AdminAuth(authService), adminHandler.SubmitScore)
	}

	stop := make(chan struct{})
	defer close(stop)
	go feedService.RunStorySweep(30*time.Minute, stop)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
