package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"datamesh-service/service/mockapi"
)

// APIResponse 统一API响应结构
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data,omitempty"`
}

// ErrResponse 错误响应，实现 render.Renderer 以设置HTTP状态码
type ErrResponse struct {
	HTTPStatusCode int    `json:"-"`
	Status         int    `json:"status" example:"404"`
	Msg            string `json:"msg" example:"资源不存在"`
	Error          string `json:"error,omitempty"`
}

// Render 设置HTTP状态码
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// SuccessResponse 成功响应
func SuccessResponse(msg string, data interface{}) APIResponse {
	return APIResponse{
		Status: 0,
		Msg:    msg,
		Data:   data,
	}
}

// ErrorResponse 指定状态码的错误响应
func ErrorResponse(code int, msg string, err error) render.Renderer {
	resp := &ErrResponse{
		HTTPStatusCode: code,
		Status:         code,
		Msg:            msg,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// InternalErrorResponse 500错误响应
func InternalErrorResponse(msg string, err error) render.Renderer {
	return ErrorResponse(http.StatusInternalServerError, msg, err)
}

// serviceErrorStatus 把门面返回的错误映射为HTTP状态码
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, mockapi.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderServiceError 渲染门面错误
func renderServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	render.Render(w, r, ErrorResponse(serviceErrorStatus(err), msg, err))
}

// renderResult 门面调用结果的统一出口
func renderResult[T any](w http.ResponseWriter, r *http.Request, msg string, data T, err error) {
	if err != nil {
		renderServiceError(w, r, msg+"失败", err)
		return
	}
	render.JSON(w, r, SuccessResponse(msg+"成功", data))
}
