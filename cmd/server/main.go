package main

import (
	"flag"
	"os"
	"syscall"

	"github.com/wasel-delivery/internal/app"
	"github.com/wasel-delivery/internal/config"
	"github.com/wasel-delivery/internal/logger"
	"github.com/wasel-delivery/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化引导 API Key（仅在 api_keys 表为空时生效）
	if cfg.Auth.BootstrapKey == "" {
		if cfg.Server.Mode == "release" {
			stdLog.Printf("警告: 未设置 AUTH_BOOTSTRAP_KEY，已跳过引导 API Key 初始化")
		}
	} else if err := models.InitBootstrapAPIKey(cfg.Auth.BootstrapKey, cfg.Auth.BootstrapKeyName); err != nil {
		stdLog.Printf("警告: 初始化引导 API Key 失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}
