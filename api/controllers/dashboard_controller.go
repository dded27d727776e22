/*
 * @module api/controllers/dashboard_controller
 * @description 仪表板控制器，提供汇总指标、趋势与概览接口
 * @architecture MVC架构 - 控制器层
 * @documentReference DESIGN.md
 * @stateFlow HTTP请求 -> 门面调用 -> 统一响应
 * @rules 概览接口并发调用各门面方法，任一失败则整体失败
 * @dependencies golang.org/x/sync/errgroup, github.com/go-chi/render
 * @refs service/mockapi/mock_api.go
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"datamesh-service/service/mockapi"
	"datamesh-service/service/models"
)

// DashboardController 仪表板控制器
type DashboardController struct {
	api *mockapi.MockAPI
}

// NewDashboardController 创建仪表板控制器实例
func NewDashboardController(api *mockapi.MockAPI) *DashboardController {
	return &DashboardController{api: api}
}

// DashboardOverview 仪表板概览
type DashboardOverview struct {
	Metrics models.DashboardMetrics `json:"metrics"`
	Quality models.QualitySnapshot  `json:"quality"`
	Alerts  []models.Alert          `json:"alerts"`
}

// GetMetrics 获取仪表板指标
// @Summary 获取仪表板指标
// @Description 获取资产总数、活跃连接、质量评分与系统健康度
// @Tags 仪表板
// @Produce json
// @Success 200 {object} APIResponse{data=models.DashboardMetrics}
// @Failure 503 {object} ErrResponse
// @Router /dashboard/metrics [get]
func (c *DashboardController) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := c.api.GetDashboardMetrics(r.Context())
	renderResult(w, r, "获取仪表板指标", metrics, err)
}

// GetTrends 获取仪表板趋势
// @Summary 获取仪表板趋势
// @Description 获取最近若干天的数据量与质量趋势，最旧的在前
// @Tags 仪表板
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.TrendPoint}
// @Failure 503 {object} ErrResponse
// @Router /dashboard/trends [get]
func (c *DashboardController) GetTrends(w http.ResponseWriter, r *http.Request) {
	trend, err := c.api.GetTrendData(r.Context())
	renderResult(w, r, "获取趋势数据", trend, err)
}

// GetOverview 获取仪表板概览
// @Summary 获取仪表板概览
// @Description 并发获取仪表板指标、质量快照与告警列表
// @Tags 仪表板
// @Produce json
// @Success 200 {object} APIResponse{data=DashboardOverview}
// @Failure 503 {object} ErrResponse
// @Router /dashboard/overview [get]
func (c *DashboardController) GetOverview(w http.ResponseWriter, r *http.Request) {
	var overview DashboardOverview
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() (err error) {
		overview.Metrics, err = c.api.GetDashboardMetrics(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Quality, err = c.api.GetQualityMetrics(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Alerts, err = c.api.GetQualityAlerts(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		renderServiceError(w, r, "获取仪表板概览失败", err)
		return
	}
	render.JSON(w, r, SuccessResponse("获取仪表板概览成功", overview))
}
