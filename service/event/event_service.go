/*
 * @module service/event/event_service
 * @description SSE事件中心，每个SSE连接持有一个门面订阅，把实时更新转成事件推送
 * @architecture 事件驱动架构 - 业务服务层
 * @documentReference DESIGN.md
 * @stateFlow 连接建立 -> 订阅更新 -> 事件入队 -> 客户端推送 -> 断开时取消订阅
 * @rules 客户端队列满时丢弃事件，不阻塞推送协程
 * @dependencies datamesh-service/service/models, github.com/google/uuid
 * @refs api/controllers/event_controller.go
 */

package event

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"datamesh-service/service/mockapi"
	"datamesh-service/service/models"
)

// clientBufferSize 每个连接的事件缓冲
const clientBufferSize = 100

// UpdateSource 提供实时更新订阅，*mockapi.MockAPI 实现此接口
type UpdateSource interface {
	SubscribeToUpdates(cb mockapi.UpdateCallback) (unsubscribe func())
}

// Observer 连接与丢弃事件的观测接口
type Observer interface {
	SSEConnected()
	SSEDisconnected()
	SSEDropped()
}

type nopObserver struct{}

func (nopObserver) SSEConnected()    {}
func (nopObserver) SSEDisconnected() {}
func (nopObserver) SSEDropped()      {}

// EventService 事件管理服务
type EventService struct {
	source      UpdateSource
	logger      *slog.Logger
	observer    Observer
	connections map[string]map[string]*SSEClient // clientName -> connectionID -> client
	mu          sync.RWMutex
	closed      bool
}

// SSEClient SSE客户端连接
type SSEClient struct {
	ID          string
	ClientName  string
	ClientIP    string
	ConnectedAt time.Time
	Channel     chan *models.SSEEvent
	Done        chan struct{}

	unsubscribe func()
	closeOnce   sync.Once
}

func (c *SSEClient) close() {
	c.closeOnce.Do(func() {
		c.unsubscribe()
		close(c.Done)
	})
}

// NewEventService 创建事件服务实例
func NewEventService(source UpdateSource, logger *slog.Logger, observer Observer) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &EventService{
		source:      source,
		logger:      logger,
		observer:    observer,
		connections: make(map[string]map[string]*SSEClient),
	}
}

// === SSE连接管理 ===

// AddSSEConnection 添加SSE连接并为其创建一个更新订阅
func (s *EventService) AddSSEConnection(clientName, clientIP string) (*SSEClient, error) {
	client := &SSEClient{
		ID:          uuid.New().String(),
		ClientName:  clientName,
		ClientIP:    clientIP,
		ConnectedAt: time.Now(),
		Channel:     make(chan *models.SSEEvent, clientBufferSize),
		Done:        make(chan struct{}),
	}

	// 先订阅再登记，保证登记后的连接总有可用的取消函数
	client.unsubscribe = s.source.SubscribeToUpdates(func(update models.Update) {
		s.enqueue(client, s.NewEvent(clientName, models.EventTypeUpdate, update))
		for _, alert := range update.Alerts {
			s.enqueue(client, s.NewEvent(clientName, models.EventTypeAlert, alert))
		}
	})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		client.unsubscribe()
		return nil, fmt.Errorf("事件服务已关闭")
	}
	if s.connections[clientName] == nil {
		s.connections[clientName] = make(map[string]*SSEClient)
	}
	s.connections[clientName][client.ID] = client
	s.mu.Unlock()

	s.observer.SSEConnected()
	s.logger.Info("SSE连接已建立", "client", clientName, "connection_id", client.ID, "ip", clientIP)
	return client, nil
}

// RemoveSSEConnection 移除SSE连接并取消其订阅
func (s *EventService) RemoveSSEConnection(clientName, connectionID string) {
	s.mu.Lock()
	client, ok := s.connections[clientName][connectionID]
	if ok {
		delete(s.connections[clientName], connectionID)
		if len(s.connections[clientName]) == 0 {
			delete(s.connections, clientName)
		}
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	client.close()
	s.observer.SSEDisconnected()
	s.logger.Info("SSE连接已断开", "client", clientName, "connection_id", connectionID)
}

// SendEventToClient 向指定客户端的所有连接发送事件
func (s *EventService) SendEventToClient(clientName string, event *models.SSEEvent) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conns, ok := s.connections[clientName]
	if !ok {
		return fmt.Errorf("客户端 %s 没有活跃的SSE连接", clientName)
	}
	for _, client := range conns {
		s.enqueue(client, event)
	}
	return nil
}

// BroadcastEvent 广播事件给所有连接
func (s *EventService) BroadcastEvent(event *models.SSEEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for clientName, conns := range s.connections {
		for _, client := range conns {
			eventCopy := *event
			eventCopy.ClientName = clientName
			s.enqueue(client, &eventCopy)
		}
	}
}

// ConnectionCount 当前连接数
func (s *EventService) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, conns := range s.connections {
		n += len(conns)
	}
	return n
}

// Close 断开所有连接
func (s *EventService) Close() {
	s.mu.Lock()
	s.closed = true
	var all []*SSEClient
	for _, conns := range s.connections {
		for _, client := range conns {
			all = append(all, client)
		}
	}
	s.connections = make(map[string]map[string]*SSEClient)
	s.mu.Unlock()

	for _, client := range all {
		client.close()
		s.observer.SSEDisconnected()
	}
	if len(all) > 0 {
		s.logger.Info("事件服务已关闭", "connections", len(all))
	}
}

// NewEvent 创建带唯一ID的事件
func (s *EventService) NewEvent(clientName, eventType string, data interface{}) *models.SSEEvent {
	return &models.SSEEvent{
		ID:         uuid.New().String(),
		EventType:  eventType,
		ClientName: clientName,
		Data:       data,
		CreatedAt:  time.Now(),
	}
}

// enqueue 非阻塞入队，队列满时丢弃
func (s *EventService) enqueue(client *SSEClient, event *models.SSEEvent) {
	select {
	case client.Channel <- event:
	default:
		s.observer.SSEDropped()
		s.logger.Warn("事件队列已满，跳过发送", "client", client.ClientName, "connection_id", client.ID, "event_type", event.EventType)
	}
}
