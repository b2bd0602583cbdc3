package router

import (
	"net/http"
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/cache"
	"github.com/andrew21-mch/crowdfunding-api/internal/config"
	"github.com/andrew21-mch/crowdfunding-api/internal/handler"
	"github.com/andrew21-mch/crowdfunding-api/internal/mailer"
	"github.com/andrew21-mch/crowdfunding-api/internal/middleware"
	"github.com/andrew21-mch/crowdfunding-api/internal/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup 注册全部路由
func Setup(db *gorm.DB, store *cache.Store, m mailer.Mailer, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	tm := token.NewManager(cfg.Auth)
	authHandler := handler.NewAuthHandler(db, tm, m, cfg.Server.BaseURL)
	campaignHandler := handler.NewCampaignHandler(db)
	donationHandler := handler.NewDonationHandler(db)
	searchHandler := handler.NewSearchHandler(db, store, time.Duration(cfg.Cache.SearchTTL)*time.Second)

	authRequired := middleware.Authenticate(tm, db)
	authOptional := middleware.OptionalAuthenticate(tm, db)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		// 认证相关
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authRequired, authHandler.Logout)

		// 用户资料
		user := api.Group("/user", authRequired)
		{
			user.GET("", authHandler.GetProfile)
			user.PUT("", authHandler.UpdateProfile)
			user.PUT("/password", authHandler.ChangePassword)
		}

		// 密码重置
		api.POST("/password/email", authHandler.SendResetLink)
		api.POST("/password/reset/:token", authHandler.ResetPassword)

		// 邮箱验证
		api.GET("/email/verify/:id/:hash", authHandler.VerifyEmail)
		api.POST("/email/resend", authRequired, authHandler.ResendVerification)

		// 众筹活动
		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/search", searchHandler.SearchCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.POST("", authRequired, campaignHandler.CreateCampaign)
			campaigns.PUT("/:id", authRequired, campaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", authRequired, campaignHandler.DeleteCampaign)

			// 捐款允许匿名
			campaigns.POST("/:id/donate", authOptional, donationHandler.Donate)
		}
	}

	return r
}
