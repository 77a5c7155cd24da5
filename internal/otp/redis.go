package otp

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// verifyScript deletes the entry only when the supplied code matches,
// so check-and-delete stays atomic under concurrent verifies.
var verifyScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

// RedisStore keeps pending codes in Redis. Entries are written without
// a TTL: a code is invalidated only by a successful verify or a reissue.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a ledger backed by rdb.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Issue(ctx context.Context, key string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+key, code, 0).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *RedisStore) Verify(ctx context.Context, key, code string) (bool, error) {
	n, err := verifyScript.Run(ctx, s.rdb, []string{keyPrefix + key}, code).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keyPrefix+key).Err()
}
