package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
)

// Server 开发/测试用的上游场馆后端
// 实现控制台消费的全部接口，形状与线上后端一致
type Server struct {
	db *gorm.DB
}

// Models 需要迁移的全部表
func Models() []interface{} {
	return []interface{}{
		&AdminUser{},
		&model.Store{},
		&model.Staff{},
		&model.Member{},
		&model.RechargeRecord{},
		&model.ConsumeRecord{},
		&model.Room{},
		&model.Reservation{},
	}
}

func NewServer(db *gorm.DB) *Server {
	return &Server{db: db}
}

// Router 注册全部路由
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	auth := r.Group("/api/auth")
	{
		auth.POST("/admin/login", s.adminLogin)
		auth.POST("/logout", s.logout)
		auth.POST("/refresh", s.refreshToken)
	}

	admin := r.Group("/api/admin", BearerAuth())
	{
		admin.GET("/stores", s.listStores)
		admin.GET("/stores/:id", s.storeDetail)
		admin.POST("/stores", s.createStore)
		admin.PUT("/stores/:id", s.updateStore)
		admin.DELETE("/stores/:id", s.deleteStore)

		admin.GET("/team-leaders", s.listStaff(model.RoleTeamLeader))
		admin.GET("/team-leaders/:id", s.staffDetail)
		admin.POST("/team-leaders", s.createStaff(model.RoleTeamLeader))
		admin.PUT("/team-leaders/:id", s.updateStaff)
		admin.DELETE("/team-leaders/:id", s.deleteStaff)

		admin.GET("/salespersons", s.listStaff(model.RoleSalesman))
		admin.GET("/salespersons/:id", s.staffDetail)
		admin.POST("/salespersons", s.createStaff(model.RoleSalesman))
		admin.PUT("/salespersons/:id", s.updateStaff)
		admin.DELETE("/salespersons/:id", s.deleteStaff)

		admin.GET("/members", s.listMembers)
		admin.GET("/members/:id", s.memberDetail)
		admin.POST("/members", s.createMember)
		admin.PUT("/members/:id", s.updateMember)
		admin.DELETE("/members/:id", s.deleteMember)
		admin.POST("/members/:id/recharge", s.rechargeMember)

		admin.GET("/recharges", s.listRecharges)
		admin.GET("/recharges/:id", s.rechargeDetail)
		admin.GET("/consumes", s.listConsumes)
		admin.GET("/consumes/:id", s.consumeDetail)

		admin.GET("/rooms", s.listRooms)

		admin.GET("/bookings", s.listBookings)
		admin.GET("/bookings/:id", s.bookingDetail)
		admin.POST("/bookings", s.createBooking)
		admin.PUT("/bookings/:id", s.updateBooking)

		admin.GET("/room-schedules", s.scheduleMatrix)
		admin.POST("/reservations/direct", s.directReserve)
	}

	return r
}

// ==================== 响应壳 ====================

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": 0, "success": true, "message": "success", "data": data,
	})
}

func okList(c *gin.Context, list interface{}, total int64, page, size int) {
	ok(c, gin.H{"list": list, "total": total, "page": page, "size": size})
}

func fail(c *gin.Context, status, code int, message string) {
	c.JSON(status, gin.H{
		"code": code, "success": false, "message": message,
	})
}

// bizFail HTTP 200 但业务失败
func bizFail(c *gin.Context, message string) {
	fail(c, http.StatusOK, 1000, message)
}

// ==================== 分页 ====================

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 10
	}
	return page, size
}

// findPage 计数 + 取一页
func findPage(query *gorm.DB, page, size int, out interface{}) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	err := query.Offset((page - 1) * size).Limit(size).Find(out).Error
	return total, err
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, 400, "invalid id")
		return 0, false
	}
	return id, true
}
