package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/docs"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/console"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/middleware"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
)

// Controllers 控制台全部控制器
type Controllers struct {
	Auth     *console.AuthController
	Staff    *console.StaffController
	Member   *console.MemberController
	Ledger   *console.LedgerController
	Schedule *console.ScheduleController
	Selector *console.SelectorController
}

// Setup 注册所有路由
func Setup(logger *zap.Logger, sess *session.Session, ctl *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), middleware.Recovery(logger), middleware.CORS())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 登录视图本身不设闸门
	r.POST("/console/login", ctl.Auth.Login)
	r.GET("/console/session", ctl.Auth.Status)

	protected := r.Group("/console", middleware.SessionGate(sess))
	{
		protected.POST("/logout", ctl.Auth.Logout)

		// 组长
		leaders := protected.Group("/leaders")
		{
			leaders.GET("", ctl.Staff.List("leaders"))
			leaders.POST("", ctl.Staff.Create("leaders"))
			leaders.PUT("/:id", ctl.Staff.InlineUpdate("leaders"))
			leaders.POST("/batch-delete", ctl.Staff.BatchDelete("leaders"))
		}

		// 销售
		sales := protected.Group("/salespersons")
		{
			sales.GET("", ctl.Staff.List("salespersons"))
			sales.POST("", ctl.Staff.Create("salespersons"))
			sales.PUT("/:id", ctl.Staff.InlineUpdate("salespersons"))
			sales.POST("/batch-delete", ctl.Staff.BatchDelete("salespersons"))
		}

		// 会员
		members := protected.Group("/members")
		{
			members.GET("", ctl.Member.List)
			members.POST("", ctl.Member.Create)
			members.PUT("/:id", ctl.Member.InlineUpdate)
			members.POST("/batch-delete", ctl.Member.BatchDelete)
			members.POST("/:id/recharge", ctl.Member.Recharge)
		}

		// 台账
		protected.GET("/recharges", ctl.Ledger.Recharges)
		protected.GET("/recharges/:id", ctl.Ledger.RechargeDetail)
		protected.GET("/consumes", ctl.Ledger.Consumes)
		protected.GET("/consumes/:id", ctl.Ledger.ConsumeDetail)

		// 排期 + 直订
		protected.GET("/schedule", ctl.Schedule.Matrix)
		protected.POST("/schedule/direct-book", ctl.Schedule.DirectBook)
		protected.GET("/bookings/:id", ctl.Schedule.BookingDetail)

		// 选择器
		selectors := protected.Group("/selectors")
		{
			selectors.GET("/members", ctl.Selector.Members)
			selectors.GET("/salespersons", ctl.Selector.Salespeople)
			selectors.GET("/leaders", ctl.Selector.Leaders)
			selectors.GET("/stores", ctl.Selector.Stores)
		}
	}

	// 顶层兜底：未匹配路径统一 404 视图
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"success": false,
			"message": "页面不存在",
		})
	})

	return r
}
