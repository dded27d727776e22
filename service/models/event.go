/*
 * @module service/models/event
 * @description SSE事件模型
 * @architecture 数据模型层
 * @documentReference DESIGN.md
 * @stateFlow 订阅回调 -> SSEEvent -> 客户端通道 -> data: 帧
 * @rules 事件只在内存中流转，不持久化
 * @dependencies time
 * @refs service/event/event_service.go
 */

package models

import "time"

// SSE事件类型
const (
	EventTypeConnected = "connected"
	EventTypeUpdate    = "update"
	EventTypeAlert     = "alert"
)

// SSEEvent 推送给SSE客户端的事件
type SSEEvent struct {
	ID         string      `json:"id"`
	EventType  string      `json:"event_type"`
	ClientName string      `json:"client_name"`
	Data       interface{} `json:"data"`
	CreatedAt  time.Time   `json:"created_at"`
}
