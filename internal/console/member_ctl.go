package console

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/response"
)

const memberResource = "members"

// 会员可行内编辑的字段
// card_type 不在其中：卡等级只由累计充值推导，手工改会破坏单调性
var memberEditable = map[string]bool{
	"name":      true,
	"phone":     true,
	"id_number": true,
	"sales_id":  true,
}

var memberColumns = []Column{
	{Key: "id", Label: "编号"},
	{Key: "member_no", Label: "会员号"},
	{Key: "name", Label: "姓名"},
	{Key: "phone", Label: "手机号"},
	{Key: "card_type", Label: "卡等级"},
	{Key: "id_number", Label: "证件号"},
	{Key: "register_date", Label: "注册日期"},
	{Key: "remaining_recharge", Label: "实充余额"},
	{Key: "remaining_gift", Label: "赠送余额"},
	{Key: "sales_id", Label: "所属销售"},
}

func memberRow(m model.Member) Row {
	return Row{
		"id":                 strconv.FormatInt(m.ID, 10),
		"member_no":          m.MemberNo,
		"name":               m.Name,
		"phone":              m.Phone,
		"card_type":          m.CardType,
		"id_number":          m.IDNumber,
		"register_date":      m.RegisterDate.Format("2006-01-02"),
		"remaining_recharge": strconv.FormatFloat(m.RemainingRecharge, 'f', 2, 64),
		"remaining_gift":     strconv.FormatFloat(m.RemainingGift, 'f', 2, 64),
		"sales_id":           strconv.FormatInt(m.SalesID, 10),
	}
}

// MemberController 会员列表视图 + 充值入口
type MemberController struct {
	api     *api.API
	session *session.Session
	cache   *querycache.Cache
}

func NewMemberController(a *api.API, sess *session.Session, cache *querycache.Cache) *MemberController {
	return &MemberController{api: a, session: sess, cache: cache}
}

// List 会员列表
// @Summary 会员分页列表
// @Tags Member
// @Produce json
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Param keyword query string false "搜索词"
// @Param salesId query int false "销售过滤"
// @Success 200 {object} response.Response
// @Router /console/members [get]
func (ctl *MemberController) List(c *gin.Context) {
	result, err := loadList(c.Request.Context(), ctl.cache, memberResource,
		ctl.api.Members.List, memberColumns, memberRow, parseFilter(c), parseSort(c))
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	response.Success(c, result)
}

// Create 占位新建
func (ctl *MemberController) Create(c *gin.Context) {
	created, err := ctl.api.Members.Create(c.Request.Context(), map[string]interface{}{
		"name":  "新会员",
		"phone": "",
	})
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	ctl.cache.InvalidatePrefix(memberResource)
	response.Success(c, created)
}

// InlineUpdate 失焦单字段补丁
func (ctl *MemberController) InlineUpdate(c *gin.Context) {
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
	if !memberEditable[req.Field] {
		response.Error(c, 400, response.CodeFieldReadonly, "该字段不允许行内修改")
		return
	}

	updated, err := ctl.api.Members.Update(c.Request.Context(), id,
		map[string]interface{}{req.Field: req.Value})
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	ctl.cache.InvalidatePrefix(memberResource)
	response.Success(c, updated)
}

// BatchDelete 多选删除
func (ctl *MemberController) BatchDelete(c *gin.Context) {
	var req BatchDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	result := batchDelete(c.Request.Context(), req.IDs, ctl.api.Members.Remove)
	ctl.cache.InvalidatePrefix(memberResource)
	response.Success(c, result)
}

// Recharge 会员充值
// 上游落充值流水并重新推导卡等级，这里同时失效会员列表与充值台账
func (ctl *MemberController) Recharge(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "invalid id")
		return
	}

	var req api.RechargeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	if req.Amount <= 0 && req.GiftAmount <= 0 {
		response.ParamError(c, "充值金额必须大于 0")
		return
	}

	record, err := ctl.api.Members.Recharge(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}

	ctl.cache.InvalidatePrefix(memberResource)
	ctl.cache.InvalidatePrefix("recharges")
	response.Success(c, record)
}
