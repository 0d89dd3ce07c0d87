package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/config"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/console"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/router"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/task"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// @title KTV 多门店管理控制台 API
// @version 1.0
// @description 面向门店管理员的控制台网关：会员/员工/台账管理、包房排期与直接预定
// @BasePath /
func main() {
	// 1. 加载配置
	cfg := config.Load(configPath())
	gin.SetMode(cfg.Server.Mode)

	// 2. 初始化日志
	logger := initLogger(cfg.Log.Level)
	defer logger.Sync()

	// 3. 初始化依赖
	deps := initDependencies(cfg, logger)

	// 4. 启动定时任务
	deps.TokenTask.Start()
	defer deps.TokenTask.Stop()

	// 5. 初始化路由并启动服务
	r := router.Setup(logger, deps.Session, deps.Controllers)
	startServer(r, cfg.Server.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Session     *session.Session
	API         *api.API
	Cache       *querycache.Cache
	Grid        *console.GridService
	Controllers *router.Controllers
	TokenTask   *task.TokenTask
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	// -------- 会话与上游客户端 --------
	sess := session.New(session.NewFileTokenStore(cfg.Upstream.TokenFile))
	client := rest.NewClient(cfg.Upstream.BaseURL, sess)
	apiSet := api.New(client)

	// -------- 查询缓存与排期服务 --------
	cache := querycache.New()
	grid := console.NewGridService(apiSet, cache)

	// -------- 控制器 --------
	controllers := &router.Controllers{
		Auth:     console.NewAuthController(apiSet, sess, cache),
		Staff:    console.NewStaffController(apiSet, sess, cache),
		Member:   console.NewMemberController(apiSet, sess, cache),
		Ledger:   console.NewLedgerController(apiSet, sess, cache),
		Schedule: console.NewScheduleController(grid, sess),
		Selector: console.NewSelectorController(apiSet, sess, cache),
	}

	return &Dependencies{
		Session:     sess,
		API:         apiSet,
		Cache:       cache,
		Grid:        grid,
		Controllers: controllers,
		TokenTask:   task.NewTokenTask(apiSet.Auth, sess),
	}
}

// ==================== 初始化函数 ====================

// initLogger 按配置的级别初始化 zap
func initLogger(level string) *zap.Logger {
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zapLevel
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	return logger
}

// startServer 启动服务
func startServer(r *gin.Engine, port int) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("控制台服务启动在 :%d", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func configPath() string {
	if p := os.Getenv("KTV_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}
