package mockapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminUser 后台账号
type AdminUser struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:64;uniqueIndex"`
	Password string `json:"-" gorm:"size:64"`
}

func (AdminUser) TableName() string { return "admin_users" }

// JWT 配置
var (
	jwtSecret = []byte("ktv-mock-upstream-secret")
	tokenTTL  = 2 * time.Hour
)

type adminClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func generateToken(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &adminClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ktv-mock-upstream",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

func parseToken(tokenString string) (*adminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*adminClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// BearerAuth Bearer 认证中间件
func BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			fail(c, http.StatusUnauthorized, 401, "未提供认证信息")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			fail(c, http.StatusUnauthorized, 401, "认证格式错误，应为 Bearer {token}")
			c.Abort()
			return
		}

		claims, err := parseToken(parts[1])
		if err != nil {
			fail(c, http.StatusUnauthorized, 401, "token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// ==================== 鉴权接口 ====================

func (s *Server) adminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	var user AdminUser
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, 401, "账号或密码错误")
		return
	}
	if user.Password != req.Password {
		fail(c, http.StatusUnauthorized, 401, "账号或密码错误")
		return
	}

	token, err := generateToken(user.ID, user.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	ok(c, gin.H{"token": token})
}

func (s *Server) logout(c *gin.Context) {
	// 无服务端会话，注销即客户端弃 token
	ok(c, nil)
}

func (s *Server) refreshToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	claims, err := parseToken(req.Token)
	if err != nil {
		fail(c, http.StatusUnauthorized, 401, "token 无效或已过期")
		return
	}

	token, err := generateToken(claims.UserID, claims.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	ok(c, gin.H{"token": token})
}
