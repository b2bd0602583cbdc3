package main

import (
	"github.com/andrew21-mch/crowdfunding-api/internal/cache"
	"github.com/andrew21-mch/crowdfunding-api/internal/config"
	"github.com/andrew21-mch/crowdfunding-api/internal/database"
	"github.com/andrew21-mch/crowdfunding-api/internal/logger"
	"github.com/andrew21-mch/crowdfunding-api/internal/mailer"
	"github.com/andrew21-mch/crowdfunding-api/internal/router"
	"github.com/andrew21-mch/crowdfunding-api/internal/task"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Setup(cfg.Log)
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化搜索缓存
	store := cache.New()

	// 初始化邮件发送器
	m := mailer.New(cfg.SMTP)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, store, m, cfg)

	// 启动定时任务
	manager := task.Start(store, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
