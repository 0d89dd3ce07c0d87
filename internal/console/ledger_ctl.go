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

// LedgerController 充值/消费台账，只读视图
type LedgerController struct {
	api     *api.API
	session *session.Session
	cache   *querycache.Cache
}

func NewLedgerController(a *api.API, sess *session.Session, cache *querycache.Cache) *LedgerController {
	return &LedgerController{api: a, session: sess, cache: cache}
}

var rechargeColumns = []Column{
	{Key: "id", Label: "编号"},
	{Key: "member_id", Label: "会员"},
	{Key: "amount", Label: "实充金额"},
	{Key: "gift_amount", Label: "赠送金额"},
	{Key: "balance", Label: "余额快照"},
	{Key: "staff_id", Label: "经办人"},
	{Key: "status", Label: "状态"},
	{Key: "created_at", Label: "时间"},
}

func rechargeRow(r model.RechargeRecord) Row {
	return Row{
		"id":          strconv.FormatInt(r.ID, 10),
		"member_id":   strconv.FormatInt(r.MemberID, 10),
		"amount":      strconv.FormatFloat(r.Amount, 'f', 2, 64),
		"gift_amount": strconv.FormatFloat(r.GiftAmount, 'f', 2, 64),
		"balance":     strconv.FormatFloat(r.Balance, 'f', 2, 64),
		"staff_id":    strconv.FormatInt(r.StaffID, 10),
		"status":      string(r.Status),
		"created_at":  r.CreatedAt.Format("2006-01-02 15:04"),
	}
}

var consumeColumns = []Column{
	{Key: "id", Label: "编号"},
	{Key: "member_id", Label: "会员"},
	{Key: "amount", Label: "扣减金额"},
	{Key: "room_no", Label: "包房"},
	{Key: "consume_type", Label: "消费类型"},
	{Key: "apply_staff_id", Label: "申请员工"},
	{Key: "reception_staff_id", Label: "接待员工"},
	{Key: "status", Label: "状态"},
	{Key: "created_at", Label: "时间"},
}

func consumeRow(r model.ConsumeRecord) Row {
	return Row{
		"id":                 strconv.FormatInt(r.ID, 10),
		"member_id":          strconv.FormatInt(r.MemberID, 10),
		"amount":             strconv.FormatFloat(r.Amount, 'f', 2, 64),
		"room_no":            r.RoomNo,
		"consume_type":       r.ConsumeType,
		"apply_staff_id":     strconv.FormatInt(r.ApplyStaffID, 10),
		"reception_staff_id": strconv.FormatInt(r.ReceptionStaffID, 10),
		"status":             string(r.Status),
		"created_at":         r.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// Recharges 充值台账列表
// @Summary 充值流水
// @Tags Ledger
// @Produce json
// @Param memberId query int false "会员过滤"
// @Success 200 {object} response.Response
// @Router /console/recharges [get]
func (ctl *LedgerController) Recharges(c *gin.Context) {
	result, err := loadList(c.Request.Context(), ctl.cache, "recharges",
		ctl.api.Recharges.List, rechargeColumns, rechargeRow, parseFilter(c), parseSort(c))
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	response.Success(c, result)
}

// Consumes 消费台账列表
func (ctl *LedgerController) Consumes(c *gin.Context) {
	result, err := loadList(c.Request.Context(), ctl.cache, "consumes",
		ctl.api.Consumes.List, consumeColumns, consumeRow, parseFilter(c), parseSort(c))
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	response.Success(c, result)
}

// RechargeDetail 单条充值流水
func (ctl *LedgerController) RechargeDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "invalid id")
		return
	}

	record, err := ctl.api.Recharges.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	if record == nil {
		response.NotFound(c, "流水不存在")
		return
	}
	response.Success(c, record)
}

// ConsumeDetail 单条消费流水
func (ctl *LedgerController) ConsumeDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "invalid id")
		return
	}

	record, err := ctl.api.Consumes.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	if record == nil {
		response.NotFound(c, "流水不存在")
		return
	}
	response.Success(c, record)
}
