// Package redisstream provides a core.Submitter that appends flattened
// telemetry records to a Redis Stream, for deployments that consume
// telemetry off Redis instead of a Honeycomb-style HTTP backend.
//
// Unlike the libhoney submitter, Submit performs one bounded
// synchronous XADD; the Redis client's connection pool is the buffer.
package redisstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hivetrace/hivetrace/core"
)

const (
	connectTimeout = 5 * time.Second
	submitTimeout  = 2 * time.Second
)

// Submitter appends records to one Redis Stream with an approximate
// maximum length, so an unconsumed stream cannot grow without bound.
type Submitter struct {
	client *redis.Client
	stream string
	maxLen int64
}

var _ core.Submitter = (*Submitter)(nil)

// New connects to Redis and returns a stream submitter. The URL is
// parsed with redis.ParseURL ("redis://host:port/db"); a bare
// host:port is accepted and normalized. The connection is verified
// with a ping before the submitter is returned.
func New(cfg core.RedisConfig) (*Submitter, error) {
	if cfg.URL == "" {
		return nil, core.NewTelemetryError("redisstream.New", "config", fmt.Errorf("redis URL is required"))
	}
	url := cfg.URL
	if !strings.Contains(url, "://") {
		url = "redis://" + url
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, core.NewTelemetryError("redisstream.New", "config", fmt.Errorf("invalid redis URL: %w", err))
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, core.NewTelemetryError("redisstream.New", "connect", err)
	}

	stream := cfg.Stream
	if stream == "" {
		stream = "hivetrace:records"
	}
	maxLen := cfg.MaxLen
	if maxLen <= 0 {
		maxLen = 100000
	}
	return &Submitter{client: client, stream: stream, maxLen: maxLen}, nil
}

// Submit appends one record as a stream entry. Strings and numbers
// are stored as Redis-native field values, booleans as "true"/"false",
// and anything else JSON-encoded.
func (s *Submitter) Submit(record map[string]interface{}) error {
	values := make(map[string]interface{}, len(record))
	for k, v := range record {
		values[k] = encodeValue(v)
	}

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrSubmitFailed, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *Submitter) Close() error {
	return s.client.Close()
}

func encodeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
