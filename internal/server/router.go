package server

import (
	"net/http"
	"time"

	"ecotrack/internal/config"
	"ecotrack/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupRouter(cfg *config.Config, logger *zap.Logger, h *Handlers, repos *Repositories) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Eco Track API is running"})
	})

	requireAuth := middleware.RequireAuth(cfg.Auth.JWTSecret, repos.Users)
	requireAdmin := middleware.RequireAdmin()

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.GET("/me", requireAuth, h.Auth.Me)
	}

	profile := api.Group("/profile", requireAuth)
	{
		profile.GET("", h.Profile.Get)
		profile.PUT("", h.Profile.Update)
	}

	carbon := api.Group("/carbon", requireAuth)
	{
		carbon.GET("", h.Carbon.List)
		carbon.POST("", h.Carbon.Create)
	}

	challenges := api.Group("/challenges", requireAuth)
	{
		challenges.GET("", h.Challenge.List)
		challenges.POST("", h.Challenge.Create)
		challenges.PUT("/:id", h.Challenge.Update)
		challenges.DELETE("/:id", h.Challenge.Delete)
	}

	community := api.Group("/community", requireAuth)
	{
		community.GET("/posts", h.Community.ListPosts)
		community.POST("/posts", h.Community.CreatePost)
		community.PUT("/posts/:id/like", h.Community.LikePost)
		community.DELETE("/posts/:id", h.Community.DeletePost)
		community.GET("/posts/:id/comments", h.Community.ListComments)
		community.POST("/posts/:id/comments", h.Community.AddComment)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", h.Blog.List)
		blog.GET("/:id", h.Blog.Get)
		blog.POST("", requireAuth, requireAdmin, h.Blog.Create)
		blog.PUT("/:id", requireAuth, requireAdmin, h.Blog.Update)
		blog.DELETE("/:id", requireAuth, requireAdmin, h.Blog.Delete)
	}

	quiz := api.Group("/quiz", requireAuth)
	{
		quiz.GET("/questions", h.Quiz.ListQuestions)
		quiz.GET("/questions/all", requireAdmin, h.Quiz.ListAllQuestions)
		quiz.POST("/questions", requireAdmin, h.Quiz.CreateQuestion)
		quiz.PUT("/questions/:id", requireAdmin, h.Quiz.UpdateQuestion)
		quiz.DELETE("/questions/:id", requireAdmin, h.Quiz.DeleteQuestion)
		quiz.POST("/attempts", h.Quiz.SubmitAttempt)
		quiz.GET("/attempts", h.Quiz.ListAttempts)
	}

	badges := api.Group("/badges", requireAuth)
	{
		badges.GET("", h.Badge.List)
		badges.GET("/user", h.Badge.ListMine)
		badges.POST("/check", h.Badge.Check)
		badges.POST("", requireAdmin, h.Badge.Create)
	}

	api.GET("/leaderboard", requireAuth, h.Leaderboard.Get)

	locations := api.Group("/eco-locations")
	{
		locations.GET("", h.EcoLocation.List)
		locations.GET("/:id", h.EcoLocation.Get)
		locations.POST("", requireAuth, requireAdmin, h.EcoLocation.Create)
		locations.PUT("/:id", requireAuth, requireAdmin, h.EcoLocation.Update)
		locations.DELETE("/:id", requireAuth, requireAdmin, h.EcoLocation.Delete)
	}

	events := api.Group("/eco-events")
	{
		events.GET("", h.EcoEvent.List)
		events.GET("/all", requireAuth, requireAdmin, h.EcoEvent.ListAll)
		events.GET("/:id", h.EcoEvent.Get)
		events.POST("", requireAuth, requireAdmin, h.EcoEvent.Create)
		events.PUT("/:id", requireAuth, requireAdmin, h.EcoEvent.Update)
		events.DELETE("/:id", requireAuth, requireAdmin, h.EcoEvent.Delete)
	}

	planting := api.Group("/planting")
	{
		planting.GET("/areas", h.Planting.ListAreas)
		planting.GET("/areas/:id", h.Planting.GetArea)
		planting.POST("/areas", requireAuth, requireAdmin, h.Planting.CreateArea)
		planting.PUT("/areas/:id", requireAuth, requireAdmin, h.Planting.UpdateArea)
		planting.DELETE("/areas/:id", requireAuth, requireAdmin, h.Planting.DeleteArea)
		planting.GET("/trees", h.Planting.ListTrees)
		planting.GET("/trees/user", requireAuth, h.Planting.ListMyTrees)
		planting.POST("/trees", requireAuth, h.Planting.PlantTree)
	}

	admin := api.Group("/admin", requireAuth, requireAdmin)
	{
		admin.GET("/stats", h.Admin.Stats)
	}

	return r
}
