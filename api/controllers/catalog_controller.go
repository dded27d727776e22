/*
 * @module api/controllers/catalog_controller
 * @description 数据目录控制器，提供资产搜索与资产详情接口
 * @architecture MVC架构 - 控制器层
 * @documentReference DESIGN.md
 * @stateFlow 查询参数 -> 校验 -> 门面过滤 -> 统一响应
 * @rules 过滤条件非法返回400，资产不存在返回404
 * @dependencies github.com/go-playground/validator/v10, github.com/go-chi/chi/v5
 * @refs service/models/datasource.go
 */

package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"datamesh-service/service/mockapi"
	"datamesh-service/service/models"
)

// CatalogController 数据目录控制器
type CatalogController struct {
	api      *mockapi.MockAPI
	validate *validator.Validate
}

// NewCatalogController 创建数据目录控制器实例
func NewCatalogController(api *mockapi.MockAPI) *CatalogController {
	return &CatalogController{
		api:      api,
		validate: validator.New(),
	}
}

// GetAssets 搜索数据资产
// @Summary 搜索数据资产
// @Description 按名称、描述、标签做不区分大小写的子串匹配，并按类别过滤
// @Tags 数据目录
// @Produce json
// @Param search query string false "搜索关键字"
// @Param category query string false "类别" Enums(all, api, database, file, stream)
// @Success 200 {object} APIResponse{data=[]models.DataSource}
// @Failure 400 {object} ErrResponse
// @Router /catalog/assets [get]
func (c *CatalogController) GetAssets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.AssetFilter{
		Search:   query.Get("search"),
		Category: strings.ToLower(query.Get("category")),
	}
	if err := c.validate.Struct(filter); err != nil {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest, "过滤条件无效", err))
		return
	}

	assets, err := c.api.GetDataAssets(r.Context(), filter)
	renderResult(w, r, "获取数据资产", assets, err)
}

// GetAsset 获取数据资产详情
// @Summary 获取数据资产详情
// @Description 根据ID获取数据资产
// @Tags 数据目录
// @Produce json
// @Param id path string true "资产ID"
// @Success 200 {object} APIResponse{data=models.DataSource}
// @Failure 404 {object} ErrResponse
// @Router /catalog/assets/{id} [get]
func (c *CatalogController) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := c.api.GetDataAsset(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, "获取数据资产", asset, err)
}
