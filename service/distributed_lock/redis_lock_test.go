package distributed_lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore 多个锁实例共享的内存键空间，忽略过期时间
type fakeStore struct {
	mu   sync.Mutex
	keys map[string]string
	err  error
}

type fakeClient struct {
	store  *fakeStore
	closed bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{keys: map[string]string{}}
}

func (c *fakeClient) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (c *fakeClient) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if c.store.err != nil {
		return redis.NewBoolResult(false, c.store.err)
	}
	if _, ok := c.store.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	c.store.keys[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (c *fakeClient) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if c.store.keys[keys[0]] == args[0].(string) {
		delete(c.store.keys, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func (c *fakeClient) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := c.store.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (c *fakeClient) Close() error {
	c.closed = true
	return nil
}

func TestRedisLock_OnlyOneHolder(t *testing.T) {
	store := newFakeStore()
	a := newRedisLock(&fakeClient{store: store}, "", "replica-a", nil)
	b := newRedisLock(&fakeClient{store: store}, "", "replica-b", nil)
	ctx := context.Background()

	ok, err := a.TryLock(ctx, "relay", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.TryLock(ctx, "relay", time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "锁已被 a 持有")

	// b 不能释放 a 的锁
	require.NoError(t, b.Unlock(ctx, "relay"))
	locked, err := a.IsLocked(ctx, "relay")
	require.NoError(t, err)
	assert.True(t, locked)

	require.NoError(t, a.Unlock(ctx, "relay"))
	ok, err = b.TryLock(ctx, "relay", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "replica-b", store.keys[DefaultPrefix+"relay"])
}

func TestRedisLock_Error(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection refused")
	l := newRedisLock(&fakeClient{store: store}, "custom:", "x", nil)

	ok, err := l.TryLock(context.Background(), "relay", time.Second)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}

func TestRedisLock_Close(t *testing.T) {
	client := &fakeClient{store: newFakeStore()}
	l := newRedisLock(client, "", "x", nil)
	require.NoError(t, l.Close())
	assert.True(t, client.closed)
	assert.Equal(t, "x", l.InstanceID())
}
