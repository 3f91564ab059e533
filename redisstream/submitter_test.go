package redisstream

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivetrace/hivetrace/core"
)

func newTestSubmitter(t *testing.T) (*Submitter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	sub, err := New(core.RedisConfig{URL: "redis://" + mr.Addr(), Stream: "test:records", MaxLen: 100})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })
	return sub, mr
}

func TestSubmitAppendsToStream(t *testing.T) {
	sub, mr := newTestSubmitter(t)

	record := map[string]interface{}{
		core.TraceIDMetaField: "some-trace",
		core.SpanIDMetaField:  "1-2",
		"name":                "query",
		"rows":                int64(3),
		"cache_hit":           false,
		"tags":                []string{"a", "b"},
	}
	require.NoError(t, sub.Submit(record))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	entries, err := client.XRange(context.Background(), "test:records", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := entries[0].Values
	assert.Equal(t, "some-trace", values[core.TraceIDMetaField])
	assert.Equal(t, "1-2", values[core.SpanIDMetaField])
	assert.Equal(t, "query", values["name"])
	assert.Equal(t, "3", values["rows"])
	assert.Equal(t, "false", values["cache_hit"])
	assert.Equal(t, `["a","b"]`, values["tags"], "non-primitive values are JSON-encoded")
}

func TestNewNormalizesBareAddress(t *testing.T) {
	mr := miniredis.RunT(t)
	sub, err := New(core.RedisConfig{URL: mr.Addr()})
	require.NoError(t, err)
	defer sub.Close()

	assert.Equal(t, "hivetrace:records", sub.stream)
	assert.NoError(t, sub.Submit(map[string]interface{}{"k": "v"}))
}

func TestNewRejectsMissingURL(t *testing.T) {
	_, err := New(core.RedisConfig{})
	assert.Error(t, err)
}

func TestNewRejectsUnreachableserver(t *testing.T) {
	_, err := New(core.RedisConfig{URL: "redis://127.0.0.1:1"})
	assert.Error(t, err)
}
