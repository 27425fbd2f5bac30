package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

type memClient struct {
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func (m *memClient) GetWithRetry(_ context.Context, _ retry.Strategy, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}

	v, ok := m.data[key]
	if !ok {
		return "", redis.Nil
	}

	return v, nil
}

func (m *memClient) SetWithRetry(_ context.Context, _ retry.Strategy, key string, value interface{}) error {
	m.data[key] = value.(string)
	return nil
}

func (m *memClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(m.data, k)
	}

	return redis.NewIntResult(int64(len(keys)), nil)
}

func (m *memClient) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	_, ok := m.data[key]
	if ok {
		m.ttls[key] = expiration
	}

	return redis.NewBoolResult(ok, nil)
}

func TestUnreadCounts(t *testing.T) {
	rdb := &memClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
	c := NewUnreadCounts(rdb, retry.Strategy{Attempts: 1}, 5*time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	_, err := c.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, userID, 3))
	assert.Equal(t, "3", rdb.data["unread:"+userID.String()])
	assert.Equal(t, 5*time.Minute, rdb.ttls["unread:"+userID.String()])

	n, err := c.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, c.Invalidate(ctx, userID))
	_, err = c.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestUnreadCounts_BackendError(t *testing.T) {
	rdb := &memClient{data: map[string]string{}, err: errors.New("i/o timeout")}
	c := NewUnreadCounts(rdb, retry.Strategy{Attempts: 1}, 0)

	_, err := c.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
