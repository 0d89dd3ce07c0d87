package console

import (
	"github.com/gin-gonic/gin"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/response"
)

// AuthController 控制台登录/登出
type AuthController struct {
	api     *api.API
	session *session.Session
	cache   *querycache.Cache
}

func NewAuthController(a *api.API, sess *session.Session, cache *querycache.Cache) *AuthController {
	return &AuthController{api: a, session: sess, cache: cache}
}

// Login 管理员登录
// @Summary 登录
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /console/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	token, err := ctl.api.Auth.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, nil, err)
		return
	}

	if err := ctl.session.Establish(token); err != nil {
		response.ServerError(c, "token 持久化失败: "+err.Error())
		return
	}

	// redirect 参数带回登录前想去的位置
	response.Success(c, gin.H{
		"authenticated": true,
		"redirect":      c.Query("redirect"),
	})
}

// Logout 登出
// 上游注销尽力而为，本地会话与缓存一定清掉
func (ctl *AuthController) Logout(c *gin.Context) {
	_ = ctl.api.Auth.Logout(c.Request.Context())
	_ = ctl.session.Invalidate()
	ctl.cache.Clear()

	response.Success(c, gin.H{"authenticated": false})
}

// Status 会话状态探针，前端启动时调用
func (ctl *AuthController) Status(c *gin.Context) {
	response.Success(c, gin.H{"authenticated": ctl.session.Authenticated()})
}
