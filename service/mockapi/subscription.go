package mockapi

import (
	"sync"
	"time"

	"datamesh-service/service/models"
)

// UpdateCallback 订阅回调
type UpdateCallback func(models.Update)

type subscription struct {
	id   uint64
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// SubscribeToUpdates 每隔推送间隔调用一次 cb，首次调用在一个间隔之后。
// 返回的取消函数幂等，返回时保证不会再有回调执行。
// 不要在回调内部调用取消函数，它会等待当前回调结束而死锁。
// 未取消的订阅会一直占用一个 goroutine，可通过 ActiveSubscriptions 观察。
func (m *MockAPI) SubscribeToUpdates(cb UpdateCallback) (unsubscribe func()) {
	if cb == nil {
		return func() {}
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.logger.Warn("门面已关闭，忽略订阅请求")
		return func() {}
	}
	m.nextSub++
	sub := &subscription{
		id:   m.nextSub,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	m.subs[sub.id] = sub
	m.mu.Unlock()

	m.recorder.SubscriptionOpened()
	m.logger.Debug("订阅已创建", "subscription_id", sub.id)

	go m.run(sub, cb)
	return func() { m.unsubscribe(sub) }
}

func (m *MockAPI) run(sub *subscription, cb UpdateCallback) {
	defer close(sub.done)

	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stop:
			return
		case <-ticker.C:
			// 同时就绪时 select 随机选择，这里再确认一次
			select {
			case <-sub.stop:
				return
			default:
			}
			m.deliver(sub, cb, m.NextUpdate())
		}
	}
}

func (m *MockAPI) deliver(sub *subscription, cb UpdateCallback, update models.Update) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("订阅回调异常", "subscription_id", sub.id, "panic", r)
		}
	}()
	cb(update)
}

func (m *MockAPI) unsubscribe(sub *subscription) {
	sub.once.Do(func() {
		close(sub.stop)
		m.mu.Lock()
		delete(m.subs, sub.id)
		m.mu.Unlock()
		m.recorder.SubscriptionClosed()
		m.logger.Debug("订阅已取消", "subscription_id", sub.id)
	})
	<-sub.done
}

// ActiveSubscriptions 当前未取消的订阅数
func (m *MockAPI) ActiveSubscriptions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// Close 取消所有订阅，之后的订阅请求被忽略
func (m *MockAPI) Close() {
	m.mu.Lock()
	m.closed = true
	subs := make([]*subscription, 0, len(m.subs))
	for _, sub := range m.subs {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		m.unsubscribe(sub)
	}
}
