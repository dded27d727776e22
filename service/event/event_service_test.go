package event

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamesh-service/service/generator"
	"datamesh-service/service/mockapi"
	"datamesh-service/service/models"
)

// fakeSource 手动触发回调的更新源
type fakeSource struct {
	mu       sync.Mutex
	next     int
	cbs      map[int]mockapi.UpdateCallback
	canceled atomic.Int64
}

func newFakeSource() *fakeSource {
	return &fakeSource{cbs: make(map[int]mockapi.UpdateCallback)}
}

func (f *fakeSource) SubscribeToUpdates(cb mockapi.UpdateCallback) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := f.next
	f.cbs[id] = cb
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.cbs, id)
			f.mu.Unlock()
			f.canceled.Add(1)
		})
	}
}

func (f *fakeSource) fire(u models.Update) {
	f.mu.Lock()
	cbs := make([]mockapi.UpdateCallback, 0, len(f.cbs))
	for _, cb := range f.cbs {
		cbs = append(cbs, cb)
	}
	f.mu.Unlock()
	for _, cb := range cbs {
		cb(u)
	}
}

func (f *fakeSource) active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cbs)
}

type countingObserver struct {
	connected, disconnected, dropped atomic.Int64
}

func (o *countingObserver) SSEConnected()    { o.connected.Add(1) }
func (o *countingObserver) SSEDisconnected() { o.disconnected.Add(1) }
func (o *countingObserver) SSEDropped()      { o.dropped.Add(1) }

func receive(t *testing.T, c *SSEClient) *models.SSEEvent {
	t.Helper()
	select {
	case ev := <-c.Channel:
		return ev
	case <-time.After(time.Second):
		t.Fatal("没有收到事件")
		return nil
	}
}

func TestAddSSEConnection_SubscribesAndRelays(t *testing.T) {
	src := newFakeSource()
	svc := NewEventService(src, nil, nil)

	client, err := svc.AddSSEConnection("dashboard", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, 1, src.active())
	assert.Equal(t, 1, svc.ConnectionCount())

	src.fire(models.Update{
		Metrics: models.UpdateMetrics{TotalDataAssets: 170},
		Alerts:  []models.Alert{{ID: 4, Source: "System"}},
	})

	ev := receive(t, client)
	assert.Equal(t, models.EventTypeUpdate, ev.EventType)
	assert.Equal(t, "dashboard", ev.ClientName)
	update, ok := ev.Data.(models.Update)
	require.True(t, ok)
	assert.Equal(t, 170, update.Metrics.TotalDataAssets)

	ev = receive(t, client)
	assert.Equal(t, models.EventTypeAlert, ev.EventType)
}

func TestRemoveSSEConnection_CancelsSubscription(t *testing.T) {
	src := newFakeSource()
	obs := &countingObserver{}
	svc := NewEventService(src, nil, obs)

	client, err := svc.AddSSEConnection("dashboard", "127.0.0.1")
	require.NoError(t, err)

	svc.RemoveSSEConnection("dashboard", client.ID)
	svc.RemoveSSEConnection("dashboard", client.ID)

	assert.Equal(t, 0, src.active())
	assert.Equal(t, int64(1), src.canceled.Load())
	assert.Equal(t, 0, svc.ConnectionCount())
	assert.Equal(t, int64(1), obs.connected.Load())
	assert.Equal(t, int64(1), obs.disconnected.Load())

	select {
	case <-client.Done:
	default:
		t.Fatal("Done 应已关闭")
	}
}

func TestEnqueue_DropsWhenFull(t *testing.T) {
	src := newFakeSource()
	obs := &countingObserver{}
	svc := NewEventService(src, nil, obs)

	_, err := svc.AddSSEConnection("slow", "127.0.0.1")
	require.NoError(t, err)

	for i := 0; i < clientBufferSize+5; i++ {
		src.fire(models.Update{Alerts: []models.Alert{}})
	}
	assert.Equal(t, int64(5), obs.dropped.Load())
}

func TestSendAndBroadcast(t *testing.T) {
	svc := NewEventService(newFakeSource(), nil, nil)

	a, err := svc.AddSSEConnection("a", "10.0.0.1")
	require.NoError(t, err)
	b, err := svc.AddSSEConnection("b", "10.0.0.2")
	require.NoError(t, err)

	require.NoError(t, svc.SendEventToClient("a", &models.SSEEvent{EventType: "ping"}))
	assert.Equal(t, "ping", receive(t, a).EventType)
	assert.Len(t, b.Channel, 0)

	assert.Error(t, svc.SendEventToClient("nobody", &models.SSEEvent{}))

	svc.BroadcastEvent(&models.SSEEvent{EventType: "notice"})
	assert.Equal(t, "a", receive(t, a).ClientName)
	assert.Equal(t, "b", receive(t, b).ClientName)
}

func TestClose(t *testing.T) {
	src := newFakeSource()
	svc := NewEventService(src, nil, nil)

	_, err := svc.AddSSEConnection("a", "")
	require.NoError(t, err)
	_, err = svc.AddSSEConnection("a", "")
	require.NoError(t, err)

	svc.Close()
	assert.Equal(t, 0, svc.ConnectionCount())
	assert.Equal(t, 0, src.active())

	_, err = svc.AddSSEConnection("late", "")
	assert.Error(t, err)
	assert.Equal(t, 0, src.active())
}

func TestWithRealFacade(t *testing.T) {
	api, err := mockapi.New(generator.New(generator.WithSeed(1)),
		mockapi.WithNoLatency(), mockapi.WithUpdateInterval(5*time.Millisecond))
	require.NoError(t, err)
	defer api.Close()

	svc := NewEventService(api, nil, nil)
	client, err := svc.AddSSEConnection("dashboard", "")
	require.NoError(t, err)
	assert.Equal(t, 1, api.ActiveSubscriptions())

	ev := receive(t, client)
	assert.Equal(t, models.EventTypeUpdate, ev.EventType)

	svc.RemoveSSEConnection("dashboard", client.ID)
	assert.Equal(t, 0, api.ActiveSubscriptions())
}
