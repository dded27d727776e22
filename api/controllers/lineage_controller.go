package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"datamesh-service/service/mockapi"
)

// LineageController 数据血缘控制器
type LineageController struct {
	api *mockapi.MockAPI
}

// NewLineageController 创建数据血缘控制器实例
func NewLineageController(api *mockapi.MockAPI) *LineageController {
	return &LineageController{api: api}
}

// GetLineage 获取血缘图
// @Summary 获取血缘图
// @Tags 数据血缘
// @Produce json
// @Success 200 {object} APIResponse{data=models.LineageGraph}
// @Router /lineage [get]
func (c *LineageController) GetLineage(w http.ResponseWriter, r *http.Request) {
	graph, err := c.api.GetDataLineage(r.Context())
	renderResult(w, r, "获取血缘图", graph, err)
}

// GetNode 获取节点详情
// @Summary 获取节点详情
// @Description 返回节点基本信息与随机生成的运行时指标
// @Tags 数据血缘
// @Produce json
// @Param id path string true "节点ID"
// @Success 200 {object} APIResponse{data=models.NodeDetails}
// @Failure 404 {object} ErrResponse
// @Router /lineage/nodes/{id} [get]
func (c *LineageController) GetNode(w http.ResponseWriter, r *http.Request) {
	details, err := c.api.GetNodeDetails(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, "获取节点详情", details, err)
}

// GetImpact 获取节点影响分析
// @Summary 获取节点影响分析
// @Description 返回节点的全部上游与下游节点
// @Tags 数据血缘
// @Produce json
// @Param id path string true "节点ID"
// @Success 200 {object} APIResponse{data=models.LineageImpact}
// @Failure 404 {object} ErrResponse
// @Router /lineage/nodes/{id}/impact [get]
func (c *LineageController) GetImpact(w http.ResponseWriter, r *http.Request) {
	impact, err := c.api.GetLineageImpact(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, "获取影响分析", impact, err)
}
