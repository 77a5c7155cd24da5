package app

import (
	"github.com/Akanksha212004/twiller-2.0/internal/auth"
	"github.com/Akanksha212004/twiller-2.0/internal/cache"
	"github.com/Akanksha212004/twiller-2.0/internal/config"
	"github.com/Akanksha212004/twiller-2.0/internal/handlers"
	"github.com/Akanksha212004/twiller-2.0/internal/mail"
	"github.com/Akanksha212004/twiller-2.0/internal/otp"
	"github.com/Akanksha212004/twiller-2.0/internal/policy"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"
	"github.com/Akanksha212004/twiller-2.0/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	loc := cfg.Policy.Location()
	clock := policy.SystemClock{}
	paymentWindow := policy.NewWindow(cfg.Policy.PaymentWindowStart, cfg.Policy.PaymentWindowEnd, loc)
	mobileWindow := policy.NewWindow(cfg.Policy.MobileLoginWindowStart, cfg.Policy.MobileLoginWindowEnd, loc)

	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.Mail.ResendAPIKey != "" {
		mailer = mail.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From)
	}

	sessionStore := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
	otpStore := otp.NewRedisStore(rdb)

	userRepo := repo.NewPGUserRepo(db)
	tweetRepo := repo.NewPGTweetRepo(db)
	historyRepo := repo.NewPGLoginHistoryRepo(db)

	userSvc := service.NewUserService(userRepo, mailer, clock, loc)
	loginSvc := service.NewLoginService(userRepo, historyRepo, otpStore, mailer, clock, mobileWindow)
	subSvc := service.NewSubscriptionService(userRepo, mailer, clock, paymentWindow)

	feedCache := cache.NewFeedCache(rdb, cfg.Redis.DefaultTTL.Duration())
	tweetSvc := service.NewTweetService(userRepo, tweetRepo, feedCache)

	authHandler := handlers.NewAuthHandler(sessionStore, userSvc, loginSvc)
	userHandler := handlers.NewUserHandler(userSvc, subSvc)
	tweetHandler := handlers.NewTweetHandler(tweetSvc)

	registerAuthRoutes(api, authHandler)
	registerUserRoutes(api, sessionStore, userHandler)
	registerTweetRoutes(api, sessionStore, tweetHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Twiller API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.POST("/auth/request-otp", h.RequestOTP)
	api.POST("/auth/verify-otp", h.VerifyOTP)
	api.POST("/auth/forgot-password", h.ForgotPassword)
	api.GET("/users/login-history", h.LoginHistory)
}

func registerUserRoutes(api *gin.RouterGroup, sessions *auth.Store, h *handlers.UserHandler) {
	api.GET("/users/me", h.Me)

	protected := api.Group("", auth.RequireSession(sessions))
	protected.PATCH("/users/:email", h.UpdateProfile)
	protected.PUT("/users/notification", h.SetNotifications)
	protected.POST("/subscriptions", h.Subscribe)
}

func registerTweetRoutes(api *gin.RouterGroup, sessions *auth.Store, h *handlers.TweetHandler) {
	api.GET("/tweets", h.List)

	protected := api.Group("", auth.RequireSession(sessions))
	protected.POST("/tweets", h.Create)
	protected.POST("/tweets/audio", h.CreateAudio)
}
