package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/counter"
)

// 兩個 namespace 模擬兩個節點共用同一個 Redis
func TestCounterAcrossReplicas(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	newReplica := func() *counter.Namespace {
		ns := counter.NewNamespace("counter",
			NewStore(client, WithStorePrefix("folio:")),
			counter.WithNamespaceLockerFactory(NewCounterLockerFactory(client, "folio:")),
		)
		t.Cleanup(ns.Close)
		return ns
	}

	first, err := newReplica().Get(ctx, counter.DefaultName)
	require.NoError(t, err)
	second, err := newReplica().Get(ctx, counter.DefaultName)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	steps := []struct {
		instance counter.ICounter
		inc      bool
		want     int64
	}{
		{first, true, 1},
		{second, true, 2},
		{first, true, 3},
		{second, false, 2},
		{first, false, 1},
	}
	for _, step := range steps {
		var resp counter.Response
		if step.inc {
			resp, err = step.instance.Increment(ctx)
		} else {
			resp, err = step.instance.Decrement(ctx)
		}
		require.NoError(t, err)
		assert.Equal(t, step.want, resp.Count)
	}

	value, err := mr.Get("folio:counter:" + first.ID().String() + ":count")
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	resp, err := second.Value(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)
}
