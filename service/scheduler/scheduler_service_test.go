package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"datamesh-service/service/models"
)

type staticSource struct{ n atomic.Int64 }

func (s *staticSource) NextUpdate() models.Update {
	s.n.Add(1)
	return models.Update{
		Metrics: models.UpdateMetrics{TotalDataAssets: 175, ActiveConnections: 90, DataQualityScore: 85},
		Alerts:  []models.Alert{},
	}
}

type recordingPublisher struct {
	name     string
	mu       sync.Mutex
	payloads [][]byte
	fails    int // 前 fails 次返回错误
	calls    int
	closed   bool
}

func (p *recordingPublisher) Name() string { return p.name }

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.fails {
		return errors.New("sink unavailable")
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

type mockObserver struct{ mock.Mock }

func (m *mockObserver) ObservePublish(sink string, err error) {
	m.Called(sink, err != nil)
}

func TestPublishOnce_AllSinks(t *testing.T) {
	a := &recordingPublisher{name: "a"}
	b := &recordingPublisher{name: "b"}
	svc := NewRelayService(&staticSource{}, []Publisher{a, b}, "", nil)

	require.NoError(t, svc.PublishOnce(context.Background()))
	require.Equal(t, 1, a.count())
	require.Equal(t, 1, b.count())

	var update models.Update
	require.NoError(t, json.Unmarshal(a.payloads[0], &update))
	assert.Equal(t, 175, update.Metrics.TotalDataAssets)
}

func TestPublishOnce_FailureIsolated(t *testing.T) {
	bad := &recordingPublisher{name: "bad", fails: 100}
	good := &recordingPublisher{name: "good"}
	obs := &mockObserver{}
	obs.On("ObservePublish", "bad", true).Once()
	obs.On("ObservePublish", "good", false).Once()

	svc := NewRelayService(&staticSource{}, []Publisher{bad, good}, "", nil)
	svc.SetObserver(obs)
	svc.SetRetryPolicy(RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond})

	err := svc.PublishOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
	assert.Equal(t, 2, bad.calls)
	assert.Equal(t, 1, good.count())
	obs.AssertExpectations(t)
}

func TestPublishOnce_RetrySucceeds(t *testing.T) {
	flaky := &recordingPublisher{name: "flaky", fails: 1}
	svc := NewRelayService(&staticSource{}, []Publisher{flaky}, "", nil)
	svc.SetRetryPolicy(RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond})

	require.NoError(t, svc.PublishOnce(context.Background()))
	assert.Equal(t, 1, flaky.count())
}

func TestStartStop(t *testing.T) {
	src := &staticSource{}
	p := &recordingPublisher{name: "p"}
	svc := NewRelayService(src, []Publisher{p}, "@every 1s", nil)

	require.NoError(t, svc.Start())
	require.NoError(t, svc.Start())
	require.Eventually(t, func() bool { return p.count() >= 1 }, 3*time.Second, 10*time.Millisecond)

	svc.Stop()
	assert.True(t, p.closed)
	after := src.n.Load()
	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, after, src.n.Load())
}

func TestStart_InvalidSpec(t *testing.T) {
	svc := NewRelayService(&staticSource{}, []Publisher{&recordingPublisher{name: "p"}}, "not a cron", nil)
	assert.Error(t, svc.Start())
}

func TestStart_NoPublishers(t *testing.T) {
	svc := NewRelayService(&staticSource{}, nil, "", nil)
	require.NoError(t, svc.Start())
	svc.Stop()
}

func TestRetryPolicy_StopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := RetryPolicy{MaxAttempts: 5, Backoff: time.Hour}.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

type mockLocker struct{ mock.Mock }

func (m *mockLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockLocker) Unlock(ctx context.Context, key string) error {
	return m.Called(key).Error(0)
}

func TestTick_SkipsWithoutLock(t *testing.T) {
	src := &staticSource{}
	p := &recordingPublisher{name: "p"}
	svc := NewRelayService(src, []Publisher{p}, "", nil)

	locker := &mockLocker{}
	locker.On("TryLock", relayLockKey, 4*time.Second).Return(false, nil).Once()
	locker.On("TryLock", relayLockKey, 4*time.Second).Return(false, errors.New("redis down")).Once()
	locker.On("TryLock", relayLockKey, 4*time.Second).Return(true, nil).Once()
	svc.SetLock(locker, 4*time.Second)

	svc.tick()
	svc.tick()
	assert.Equal(t, 0, p.count(), "未持有锁时不发布")

	svc.tick()
	assert.Equal(t, 1, p.count())
	locker.AssertExpectations(t)
}

func TestStop_ReleasesLock(t *testing.T) {
	svc := NewRelayService(&staticSource{}, []Publisher{&recordingPublisher{name: "p"}}, "", nil)

	locker := &mockLocker{}
	locker.On("Unlock", relayLockKey).Return(nil).Once()
	svc.SetLock(locker, time.Second)

	svc.Stop()
	locker.AssertExpectations(t)
}
