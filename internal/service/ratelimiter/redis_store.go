package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var errUnexpectedScriptResult = errors.New("unexpected rate limit script result")

// Counter increment and TTL read must be atomic, otherwise two racing
// requests could both see count==1 and neither would set the expiry.
const luaFixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return { current, ttl }
`

// RedisStore backs fixed-window counters with Redis so quotas hold across
// multiple API instances.
type RedisStore struct {
	redis  *redis.Client
	script *redis.Script
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	if rdb == nil {
		return nil
	}
	return &RedisStore{
		redis:  rdb,
		script: redis.NewScript(luaFixedWindowScript),
	}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	res, err := s.script.Run(ctx, s.redis, []string{"rate:" + key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) < 2 {
		return 0, time.Time{}, errUnexpectedScriptResult
	}

	count := toInt64(vals[0])
	ttlMS := toInt64(vals[1])
	return count, time.Now().Add(time.Duration(ttlMS) * time.Millisecond), nil
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
