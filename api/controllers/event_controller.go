/*
 * @module api/controllers/event_controller
 * @description 事件控制器，提供SSE实时更新推送与手动事件发送API
 * @architecture RESTful API架构 - 控制器层
 * @documentReference DESIGN.md
 * @stateFlow SSE连接 -> 订阅实时更新 -> 推送 -> 断开时取消订阅
 * @rules 每个SSE连接持有一个订阅，连接断开必须取消订阅
 * @dependencies datamesh-service/service/event, github.com/go-chi/chi/v5, github.com/go-chi/render
 * @refs service/event/event_service.go
 */

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"datamesh-service/service/event"
	"datamesh-service/service/models"
)

// EventController 事件管理控制器
type EventController struct {
	eventService *event.EventService
}

// NewEventController 创建事件控制器实例
func NewEventController(eventService *event.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// === SSE连接处理 ===

// HandleSSE 处理SSE连接
// @Summary 建立SSE连接
// @Description 前端页面通过此接口建立SSE连接，接收实时指标更新和告警推送
// @Tags 事件管理
// @Param client_name path string true "客户端名称"
// @Success 200 {string} string "SSE事件流"
// @Router /sse/{client_name} [get]
func (c *EventController) HandleSSE(w http.ResponseWriter, r *http.Request) {
	clientName := chi.URLParam(r, "client_name")
	if clientName == "" {
		http.Error(w, "客户端名称不能为空", http.StatusBadRequest)
		return
	}

	clientIP := r.RemoteAddr
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		clientIP = forwarded
	}

	client, err := c.eventService.AddSSEConnection(clientName, clientIP)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	defer c.eventService.RemoveSSEConnection(clientName, client.ID)

	// 设置SSE响应头
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	flusher, _ := w.(http.Flusher)

	// 发送连接成功事件
	connected := c.eventService.NewEvent(clientName, models.EventTypeConnected, map[string]string{
		"connection_id": client.ID,
	})
	writeSSE(w, flusher, connected)

	// 处理事件推送
	for {
		select {
		case evt := <-client.Channel:
			writeSSE(w, flusher, evt)

		case <-client.Done:
			return

		case <-r.Context().Done():
			return
		}
	}
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, evt *models.SSEEvent) {
	fmt.Fprintf(w, "data: %s\n\n", toJSON(evt))
	if flusher != nil {
		flusher.Flush()
	}
}

func toJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// SendEvent 发送事件给指定客户端
// @Summary 发送事件
// @Description 向指定客户端的全部SSE连接发送事件
// @Tags 事件管理
// @Accept json
// @Produce json
// @Param request body SendEventRequest true "发送事件请求"
// @Success 200 {object} APIResponse
// @Failure 400 {object} ErrResponse
// @Failure 404 {object} ErrResponse
// @Router /events/send [post]
func (c *EventController) SendEvent(w http.ResponseWriter, r *http.Request) {
	var req SendEventRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest, "请求参数解析失败", err))
		return
	}

	if req.ClientName == "" {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest, "客户端名称不能为空", nil))
		return
	}
	if req.EventType == "" {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest, "事件类型不能为空", nil))
		return
	}

	evt := c.eventService.NewEvent(req.ClientName, req.EventType, req.Data)
	if err := c.eventService.SendEventToClient(req.ClientName, evt); err != nil {
		render.Render(w, r, ErrorResponse(http.StatusNotFound, "发送事件失败", err))
		return
	}

	render.JSON(w, r, SuccessResponse("事件发送成功", map[string]interface{}{
		"event_id": evt.ID,
	}))
}

// BroadcastEvent 广播事件
// @Summary 广播事件
// @Description 向所有SSE连接广播事件
// @Tags 事件管理
// @Accept json
// @Produce json
// @Param request body BroadcastEventRequest true "广播事件请求"
// @Success 200 {object} APIResponse
// @Failure 400 {object} ErrResponse
// @Router /events/broadcast [post]
func (c *EventController) BroadcastEvent(w http.ResponseWriter, r *http.Request) {
	var req BroadcastEventRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest, "请求参数解析失败", err))
		return
	}

	if req.EventType == "" {
		render.Render(w, r, ErrorResponse(http.StatusBadRequest, "事件类型不能为空", nil))
		return
	}

	evt := c.eventService.NewEvent("", req.EventType, req.Data)
	c.eventService.BroadcastEvent(evt)

	render.JSON(w, r, SuccessResponse("事件广播成功", map[string]interface{}{
		"event_id":    evt.ID,
		"connections": c.eventService.ConnectionCount(),
	}))
}

// SendEventRequest 发送事件请求
type SendEventRequest struct {
	ClientName string                 `json:"client_name" example:"dashboard"`
	EventType  string                 `json:"event_type" example:"system_notification"`
	Data       map[string]interface{} `json:"data"`
}

// BroadcastEventRequest 广播事件请求
type BroadcastEventRequest struct {
	EventType string                 `json:"event_type" example:"system_notification"`
	Data      map[string]interface{} `json:"data"`
}
