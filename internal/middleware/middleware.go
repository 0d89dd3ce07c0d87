package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
)

// SessionGate 受保护路由的会话闸门
// 未登录访问重定向到登录视图，原始位置通过 redirect 参数带回，
// 登录成功后回到原地
func SessionGate(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess.Authenticated() {
			c.Next()
			return
		}

		target := "/console/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())

		// API 调用方拿 401 + 跳转地址，浏览器直接 302
		if c.GetHeader("Accept") == "application/json" || c.GetHeader("X-Requested-With") != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":     401,
				"success":  false,
				"message":  "请先登录",
				"redirect": target,
			})
			return
		}
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// Logger 请求日志
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("http",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		)
	}
}

// Recovery panic 兜底，进程永不因单个请求崩溃
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered", zap.Any("error", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":    500,
					"success": false,
					"message": "服务器内部错误",
				})
			}
		}()
		c.Next()
	}
}

// CORS 跨域
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
