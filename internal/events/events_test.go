package events

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		require.True(t, ok, "channel closed")
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
		return Change{}
	}
}

func TestNewChange(t *testing.T) {
	c := NewChange(ActionCreated, model.Course{ID: 4, Number: "IS507", Name: "Data Stat Info"})

	assert.Equal(t, model.KindCourse, c.Entity)
	assert.Equal(t, ActionCreated, c.Action)
	assert.Equal(t, 4, c.ID)
	assert.Equal(t, "IS507 - Data Stat Info", c.Label)
	assert.WithinDuration(t, time.Now(), c.At, time.Second)
}

func TestLocalBrokerFansOut(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()
	ctx := context.Background()

	first, cancelFirst := b.Subscribe(ctx)
	defer cancelFirst()
	second, cancelSecond := b.Subscribe(ctx)
	defer cancelSecond()

	change := Change{Entity: model.KindStudent, Action: ActionDeleted, ID: 9, Label: "Sun, Joy"}
	require.NoError(t, b.Publish(ctx, change))

	assert.Equal(t, change, receive(t, first))
	assert.Equal(t, change, receive(t, second))
}

func TestLocalBrokerCancelClosesChannel(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()

	ch, cancel := b.Subscribe(context.Background())
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.NoError(t, b.Publish(context.Background(), Change{}))
}

func TestLocalBrokerContextEndsSubscription(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := b.Subscribe(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed")
	}
}

func TestLocalBrokerDropsWhenFull(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()
	ctx := context.Background()

	ch, cancel := b.Subscribe(ctx)
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		require.NoError(t, b.Publish(ctx, Change{ID: i}))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestLocalBrokerClose(t *testing.T) {
	b := NewLocalBroker()
	ch, _ := b.Subscribe(context.Background())
	require.NoError(t, b.Close())

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := b.Subscribe(context.Background())
	_, ok = <-late
	assert.False(t, ok)
}

func TestRedisBroker(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	defer rdb.Close()

	b := NewRedisBroker(rdb, zerolog.Nop())
	ctx := context.Background()

	ch, cancel := b.Subscribe(ctx)
	defer cancel()

	change := Change{Entity: model.KindSection, Action: ActionUpdated, ID: 1, Label: "IS507 - 01 (2023 - Winter)", At: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, b.Publish(ctx, change))

	got := receive(t, ch)
	assert.Equal(t, change.Entity, got.Entity)
	assert.Equal(t, change.Label, got.Label)
	assert.True(t, change.At.Equal(got.At))

	require.NoError(t, b.Close())
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription still open after Close")
	}
}
