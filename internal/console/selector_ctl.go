package console

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/session"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/response"
)

// selectorPageSize 选择器一次性拉取的上限
// 已知的规模上限：超过 100 条时搜不到后面的记录
const selectorPageSize = 100

// SelectorController 搜索式下拉选择器
// 全量拉一次 (有界页大小) 进缓存，查询在本地做子串过滤
type SelectorController struct {
	api     *api.API
	session *session.Session
	cache   *querycache.Cache
}

func NewSelectorController(a *api.API, sess *session.Session, cache *querycache.Cache) *SelectorController {
	return &SelectorController{api: a, session: sess, cache: cache}
}

func (ctl *SelectorController) options(c *gin.Context, resource string,
	load func(context.Context) ([]SelectorOption, error)) {

	// 缓存键挂在资源前缀下，增删改走 InvalidatePrefix(resource) 时选项一并失效
	key := querycache.Key(resource+"/selector", nil)
	data, err := ctl.cache.Get(c.Request.Context(), key, func(ctx context.Context) (interface{}, error) {
		return load(ctx)
	})
	if err != nil {
		respondError(c, ctl.session, err)
		return
	}

	response.Success(c, FilterOptions(data.([]SelectorOption), c.Query("q")))
}

// Members 会员选择器
// @Summary 会员搜索下拉
// @Tags Selector
// @Produce json
// @Param q query string false "搜索词"
// @Success 200 {object} response.Response
// @Router /console/selectors/members [get]
func (ctl *SelectorController) Members(c *gin.Context) {
	ctl.options(c, "members", func(ctx context.Context) ([]SelectorOption, error) {
		page, err := ctl.api.Members.List(ctx, api.Filter{Page: 1, Size: selectorPageSize})
		if err != nil {
			return nil, err
		}
		return MemberOptions(page.List), nil
	})
}

// Salespeople 销售选择器
func (ctl *SelectorController) Salespeople(c *gin.Context) {
	ctl.options(c, "salespersons", func(ctx context.Context) ([]SelectorOption, error) {
		page, err := ctl.api.Salespeople.List(ctx, api.Filter{Page: 1, Size: selectorPageSize})
		if err != nil {
			return nil, err
		}
		return StaffOptions(page.List), nil
	})
}

// Leaders 组长选择器
func (ctl *SelectorController) Leaders(c *gin.Context) {
	ctl.options(c, "team-leaders", func(ctx context.Context) ([]SelectorOption, error) {
		page, err := ctl.api.TeamLeaders.List(ctx, api.Filter{Page: 1, Size: selectorPageSize})
		if err != nil {
			return nil, err
		}
		return StaffOptions(page.List), nil
	})
}

// Stores 门店选择器
func (ctl *SelectorController) Stores(c *gin.Context) {
	ctl.options(c, "stores", func(ctx context.Context) ([]SelectorOption, error) {
		page, err := ctl.api.Stores.List(ctx, api.Filter{Page: 1, Size: selectorPageSize})
		if err != nil {
			return nil, err
		}
		return StoreOptions(page.List), nil
	})
}
