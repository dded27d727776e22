/*
 * @module api/controllers/quality_controller
 * @description 数据质量控制器，提供质量快照、趋势、数据源明细和告警接口
 * @architecture MVC架构 - 控制器层
 * @documentReference DESIGN.md
 * @stateFlow 请求接收 -> 参数解析 -> 门面调用 -> 响应返回
 * @rules 趋势天数必须在1到MaxTrendDays之间，缺省使用门面默认窗口
 * @dependencies github.com/spf13/cast, github.com/go-chi/render
 * @refs service/mockapi/mock_api.go
 */

package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/spf13/cast"

	"datamesh-service/service/mockapi"
)

// MaxTrendDays 趋势查询允许的最大天数
const MaxTrendDays = 90

// QualityController 数据质量控制器
type QualityController struct {
	api *mockapi.MockAPI
}

// NewQualityController 创建数据质量控制器实例
func NewQualityController(api *mockapi.MockAPI) *QualityController {
	return &QualityController{api: api}
}

// GetMetrics 获取质量快照
// @Summary 获取质量快照
// @Description 获取基线的整体、完整性、准确性、一致性、及时性评分
// @Tags 数据质量
// @Produce json
// @Success 200 {object} APIResponse{data=models.QualitySnapshot}
// @Router /quality/metrics [get]
func (c *QualityController) GetMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.api.GetQualityMetrics(r.Context())
	renderResult(w, r, "获取质量指标", snapshot, err)
}

// GetTrends 获取质量趋势
// @Summary 获取质量趋势
// @Description 获取按天排列的质量趋势，最旧的在前
// @Tags 数据质量
// @Produce json
// @Param days query int false "天数(1-90)"
// @Success 200 {object} APIResponse{data=[]models.TrendPoint}
// @Failure 400 {object} ErrResponse
// @Router /quality/trends [get]
func (c *QualityController) GetTrends(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		trend, err := c.api.GetQualityTrends(r.Context())
		renderResult(w, r, "获取质量趋势", trend, err)
		return
	}

	days, err := cast.ToIntE(raw)
	if err != nil || days < 1 || days > MaxTrendDays {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest,
			fmt.Sprintf("days必须是1到%d之间的整数", MaxTrendDays), err))
		return
	}

	trend, err := c.api.GetQualityTrendsWindow(r.Context(), days)
	renderResult(w, r, "获取质量趋势", trend, err)
}

// GetSources 获取各数据源质量明细
// @Summary 获取各数据源质量明细
// @Tags 数据质量
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.SourceMetricRow}
// @Router /quality/sources [get]
func (c *QualityController) GetSources(w http.ResponseWriter, r *http.Request) {
	rows, err := c.api.GetSourceMetrics(r.Context())
	renderResult(w, r, "获取数据源质量", rows, err)
}

// GetAlerts 获取质量告警
// @Summary 获取质量告警
// @Tags 数据质量
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.Alert}
// @Router /quality/alerts [get]
func (c *QualityController) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := c.api.GetQualityAlerts(r.Context())
	renderResult(w, r, "获取质量告警", alerts, err)
}
