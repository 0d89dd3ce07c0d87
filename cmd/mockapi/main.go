package main

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/mockapi"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/database"
)

// 开发环境的模拟后端：控制台网关对接的上游 REST 服务
// 默认跑 sqlite 内存库并灌演示数据，配置 MOCKAPI_DSN 后走 Postgres
func main() {
	db := initDatabase()

	if err := mockapi.Seed(db); err != nil {
		log.Fatalf("演示数据灌入失败: %v", err)
	}

	server := mockapi.NewServer(db)
	port := getEnv("MOCKAPI_PORT", "9090")
	log.Printf("模拟后端启动在 :%s", port)
	if err := server.Router().Run(":" + port); err != nil {
		log.Fatalf("模拟后端启动失败: %v", err)
	}
}

func initDatabase() *gorm.DB {
	if dsn := os.Getenv("MOCKAPI_DSN"); dsn != "" {
		return database.InitPostgres(dsn, mockapi.Models()...)
	}
	return database.InitSQLite(mockapi.Models()...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
