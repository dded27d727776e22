package mockapi

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamesh-service/service/generator"
	"datamesh-service/service/models"
)

const testInterval = 5 * time.Millisecond

func TestSubscribe_DeliversUpdates(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	updates := make(chan models.Update, 16)
	unsubscribe := api.SubscribeToUpdates(func(u models.Update) {
		select {
		case updates <- u:
		default:
		}
	})
	defer unsubscribe()

	select {
	case u := <-updates:
		assert.True(t, generator.UpdateAssetsRange.Contains(u.Metrics.TotalDataAssets))
		assert.True(t, generator.ActiveConnectionsRange.Contains(u.Metrics.ActiveConnections))
		assert.NotNil(t, u.Alerts)
	case <-time.After(time.Second):
		t.Fatal("没有收到推送")
	}
}

func TestSubscribe_NoCallbackAfterUnsubscribe(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	var count atomic.Int64
	unsubscribe := api.SubscribeToUpdates(func(models.Update) { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 2 }, time.Second, time.Millisecond)
	unsubscribe()
	after := count.Load()

	time.Sleep(10 * testInterval)
	assert.Equal(t, after, count.Load())
	assert.Equal(t, 0, api.ActiveSubscriptions())
}

func TestSubscribe_UnsubscribeWaitsForInFlightCallback(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	var inFlight atomic.Int64
	started := make(chan struct{}, 1)
	unsubscribe := api.SubscribeToUpdates(func(models.Update) {
		inFlight.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		time.Sleep(30 * time.Millisecond)
		inFlight.Add(-1)
	})

	<-started
	unsubscribe()
	assert.Equal(t, int64(0), inFlight.Load())
}

func TestSubscribe_UnsubscribeIsIdempotent(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	unsubscribe := api.SubscribeToUpdates(func(models.Update) {})
	assert.Equal(t, 1, api.ActiveSubscriptions())
	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, api.ActiveSubscriptions())
}

func TestSubscribe_Independent(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	var a, b atomic.Int64
	stopA := api.SubscribeToUpdates(func(models.Update) { a.Add(1) })
	stopB := api.SubscribeToUpdates(func(models.Update) { b.Add(1) })
	defer stopB()

	assert.Equal(t, 2, api.ActiveSubscriptions())
	stopA()

	before := b.Load()
	require.Eventually(t, func() bool { return b.Load() > before }, time.Second, time.Millisecond)
	assert.Equal(t, 1, api.ActiveSubscriptions())
}

func TestSubscribe_PanicInCallbackKeepsTicking(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	var count atomic.Int64
	unsubscribe := api.SubscribeToUpdates(func(models.Update) {
		if count.Add(1) == 1 {
			panic("boom")
		}
	})
	defer unsubscribe()

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestSubscribe_NilCallbackAndClose(t *testing.T) {
	api := newTestAPI(t, WithUpdateInterval(testInterval))

	api.SubscribeToUpdates(nil)()
	assert.Equal(t, 0, api.ActiveSubscriptions())

	api.SubscribeToUpdates(func(models.Update) {})
	api.SubscribeToUpdates(func(models.Update) {})
	assert.Equal(t, 2, api.ActiveSubscriptions())

	api.Close()
	assert.Equal(t, 0, api.ActiveSubscriptions())

	api.SubscribeToUpdates(func(models.Update) {})
	assert.Equal(t, 0, api.ActiveSubscriptions(), "关闭后不再接受订阅")
}

func TestNextUpdate_AlertIDsIncrease(t *testing.T) {
	api := newTestAPI(t)

	var last int64 = 3
	seen := 0
	for i := 0; i < 500 && seen < 5; i++ {
		u := api.NextUpdate()
		for _, a := range u.Alerts {
			assert.Greater(t, a.ID, last)
			last = a.ID
			seen++
		}
	}
	assert.Greater(t, seen, 0)
}
