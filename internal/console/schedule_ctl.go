package console

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/response"
)

// ScheduleController 排期矩阵视图与直订流程
type ScheduleController struct {
	grid    *GridService
	session *session.Session
}

func NewScheduleController(grid *GridService, sess *session.Session) *ScheduleController {
	return &ScheduleController{grid: grid, session: sess}
}

// gridCell 渲染用格子：状态 + 文案 + 点击动作
type gridCell struct {
	model.ScheduleCell
	Label  string     `json:"label"`
	Action CellAction `json:"action"`
}

type gridRow struct {
	Room  model.Room `json:"room"`
	Cells []gridCell `json:"cells"`
}

type gridResult struct {
	Anchor string    `json:"anchor"`
	Dates  []string  `json:"dates"`
	Rows   []gridRow `json:"rows"`
	Errors []string  `json:"errors,omitempty"`
}

// Matrix 排期矩阵
// @Summary 包房排期矩阵 (7 天窗口)
// @Tags Schedule
// @Produce json
// @Param storeId query int false "门店，缺省时全店扇出"
// @Param anchor query string false "窗口起始日期 YYYY-MM-DD，缺省今天"
// @Param shift query int false "以周为单位平移锚点"
// @Success 200 {object} response.Response
// @Router /console/schedule [get]
func (ctl *ScheduleController) Matrix(c *gin.Context) {
	storeID, _ := strconv.ParseInt(c.Query("storeId"), 10, 64)

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.ParamError(c, "anchor 格式应为 YYYY-MM-DD")
			return
		}
		anchor = parsed
	}
	if raw := c.Query("shift"); raw != "" {
		weeks, err := strconv.Atoi(raw)
		if err != nil {
			response.ParamError(c, "shift 应为整数")
			return
		}
		anchor = ShiftAnchor(anchor, weeks)
	}

	rows, errs := ctl.grid.Matrix(c.Request.Context(), storeID, anchor)

	// 部分门店失败不挡整体渲染，错误随数据一起带回
	result := gridResult{
		Anchor: anchor.Format("2006-01-02"),
		Dates:  Window(anchor),
		Rows:   make([]gridRow, 0, len(rows)),
	}
	for _, err := range errs {
		result.Errors = append(result.Errors, err.Error())
	}

	for _, row := range rows {
		cells := make([]gridCell, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, gridCell{
				ScheduleCell: cell,
				Label:        model.CellLabel(cell.State),
				Action:       Dispatch(cell),
			})
		}
		result.Rows = append(result.Rows, gridRow{Room: row.Room, Cells: cells})
	}

	response.Success(c, result)
}

// DirectBook 管理员直订
// @Summary 直订 (免审核)
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body api.DirectReserveReq true "直订参数"
// @Success 200 {object} response.Response
// @Router /console/schedule/direct-book [post]
func (ctl *ScheduleController) DirectBook(c *gin.Context) {
	var req api.DirectReserveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	reservation, err := ctl.grid.DirectBook(c.Request.Context(), req)
	if err != nil {
		if err == ErrMemberRequired {
			// 校验失败，未发出任何网络请求
			response.Error(c, 400, response.CodeMemberRequired, err.Error())
			return
		}
		respondError(c, ctl.session, err)
		return
	}

	response.Success(c, reservation)
}

// BookingDetail 预约详情，只读
// @Summary 预约详情
// @Tags Schedule
// @Produce json
// @Param id path int true "预约 ID"
// @Success 200 {object} response.Response
// @Router /console/bookings/{id} [get]
func (ctl *ScheduleController) BookingDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "invalid id")
		return
	}

	detail, err := ctl.grid.BookingDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}
	if detail == nil {
		response.NotFound(c, "预约不存在")
		return
	}
	response.Success(c, detail)
}
