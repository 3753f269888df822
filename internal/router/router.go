package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/internal/handlers"
	"github.com/raya-dev/raya/internal/middleware"
	"github.com/raya-dev/raya/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api", middleware.LocaleMiddleware())
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/set-language", handlers.SetLanguage)

		// Public browse surface
		api.GET("/deals", handlers.ListActiveDeals)
		api.GET("/startups", handlers.ListVerifiedStartups)
		api.GET("/investors", handlers.ListVerifiedInvestors)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		profiles := api.Group("/profiles", middleware.AuthMiddleware())
		{
			profiles.POST("/investor", handlers.CreateInvestorProfile)
			profiles.GET("/investor", handlers.GetInvestorProfile)
			profiles.PUT("/investor", handlers.UpdateInvestorProfile)

			profiles.POST("/startup", handlers.CreateStartupProfile)
			profiles.GET("/startup", handlers.GetStartupProfile)
			profiles.PUT("/startup", handlers.UpdateStartupProfile)

			profiles.POST("/individual", handlers.CreateIndividualProfile)
			profiles.GET("/individual", handlers.GetIndividualProfile)
			profiles.PUT("/individual", handlers.UpdateIndividualProfile)
		}

		deals := api.Group("/deals", middleware.AuthMiddleware())
		{
			deals.POST("", handlers.CreateDeal)
			deals.POST("/:deal_id/interest", handlers.ExpressInterest)
			deals.POST("/:deal_id/commit", handlers.CommitToDeal)
			deals.PATCH("/:deal_id/status", handlers.ChangeDealStatus)
		}

		api.GET("/dashboard", middleware.AuthMiddleware(), handlers.GetDashboard)
		api.GET("/ws/dashboard", middleware.AuthMiddleware(), handlers.DashboardSocket)
	}

	return r
}
