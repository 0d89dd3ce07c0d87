package console

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/response"
)

// staffResource 组长与销售共用一套视图，差异收在这里
type staffResource struct {
	name        string
	columns     []Column
	editable    map[string]bool
	placeholder map[string]interface{}
	list        func(context.Context, api.Filter) (*api.Page[model.Staff], error)
	create      func(context.Context, interface{}) (*model.Staff, error)
	update      func(context.Context, int64, interface{}) (*model.Staff, error)
	remove      func(context.Context, int64) error
}

func staffRow(s model.Staff) Row {
	return Row{
		"id":        strconv.FormatInt(s.ID, 10),
		"name":      s.Name,
		"phone":     s.Phone,
		"wechat":    s.Wechat,
		"store_id":  strconv.FormatInt(s.StoreID, 10),
		"leader_id": strconv.FormatInt(s.LeaderID, 10),
	}
}

// StaffController 组长/销售列表视图
type StaffController struct {
	session *session.Session
	cache   *querycache.Cache
	leaders staffResource
	sales   staffResource
}

func NewStaffController(a *api.API, sess *session.Session, cache *querycache.Cache) *StaffController {
	leaderCols := []Column{
		{Key: "id", Label: "编号"},
		{Key: "name", Label: "姓名"},
		{Key: "phone", Label: "手机号"},
		{Key: "wechat", Label: "微信号"},
		{Key: "store_id", Label: "门店"},
	}
	salesCols := append(append([]Column{}, leaderCols...), Column{Key: "leader_id", Label: "组长"})

	editable := map[string]bool{
		"name": true, "phone": true, "wechat": true, "store_id": true, "leader_id": true,
	}

	return &StaffController{
		session: sess,
		cache:   cache,
		leaders: staffResource{
			name:     "team-leaders",
			columns:  leaderCols,
			editable: editable,
			// 占位新建：没有新建表单，建出来再行内改
			placeholder: map[string]interface{}{"name": "新组长", "phone": "", "role": model.RoleTeamLeader},
			list:        a.TeamLeaders.List,
			create:      a.TeamLeaders.Create,
			update:      a.TeamLeaders.Update,
			remove:      a.TeamLeaders.Remove,
		},
		sales: staffResource{
			name:        "salespersons",
			columns:     salesCols,
			editable:    editable,
			placeholder: map[string]interface{}{"name": "新销售", "phone": "", "role": model.RoleSalesman},
			list:        a.Salespeople.List,
			create:      a.Salespeople.Create,
			update:      a.Salespeople.Update,
			remove:      a.Salespeople.Remove,
		},
	}
}

func (ctl *StaffController) resource(kind string) staffResource {
	if kind == "leaders" {
		return ctl.leaders
	}
	return ctl.sales
}

// List 列表视图
// @Summary 组长/销售列表
// @Tags Staff
// @Produce json
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Param keyword query string false "搜索词"
// @Success 200 {object} response.Response
// @Router /console/{kind} [get]
func (ctl *StaffController) List(kind string) gin.HandlerFunc {
	res := ctl.resource(kind)
	return func(c *gin.Context) {
		result, err := loadList(c.Request.Context(), ctl.cache, res.name,
			res.list, res.columns, staffRow, parseFilter(c), parseSort(c))
		if err != nil {
			respondError(c, ctl.session, err)
			return
		}
		response.Success(c, result)
	}
}

// Create 占位新建
func (ctl *StaffController) Create(kind string) gin.HandlerFunc {
	res := ctl.resource(kind)
	return func(c *gin.Context) {
		created, err := res.create(c.Request.Context(), res.placeholder)
		if err != nil {
			respondError(c, ctl.session, err)
			return
		}
		ctl.cache.InvalidatePrefix(res.name)
		response.Success(c, created)
	}
}

// InlineUpdate 失焦提交的单字段补丁
func (ctl *StaffController) InlineUpdate(kind string) gin.HandlerFunc {
	res := ctl.resource(kind)
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.ParamError(c, "invalid id")
			return
		}

		var req struct {
			Field string      `json:"field" binding:"required"`
			Value interface{} `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ParamError(c, err.Error())
			return
		}
		if !res.editable[req.Field] {
			response.Error(c, 400, response.CodeFieldReadonly, "该字段不允许行内修改")
			return
		}

		updated, err := res.update(c.Request.Context(), id, map[string]interface{}{req.Field: req.Value})
		if err != nil {
			respondError(c, ctl.session, err)
			return
		}
		ctl.cache.InvalidatePrefix(res.name)
		response.Success(c, updated)
	}
}

// BatchDelete 删除模式下的多选删除，逐条串行
func (ctl *StaffController) BatchDelete(kind string) gin.HandlerFunc {
	res := ctl.resource(kind)
	return func(c *gin.Context) {
		var req BatchDeleteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ParamError(c, err.Error())
			return
		}

		result := batchDelete(c.Request.Context(), req.IDs, res.remove)
		ctl.cache.InvalidatePrefix(res.name)
		response.Success(c, result)
	}
}
