package otp

import (
	"context"
	"crypto/subtle"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps pending codes in Redis so verification works across
// instances and survives restarts. Expiry rides on the key TTL.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func codeKey(key string) string     { return "otp:code:" + key }
func attemptsKey(key string) string { return "otp:attempts:" + key }

func (s *RedisStore) Put(ctx context.Context, key, code string) error {
	pipe := s.Client.TxPipeline()
	pipe.Set(ctx, codeKey(key), code, CodeTTL)
	pipe.Del(ctx, attemptsKey(key))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Verify(ctx context.Context, key, code string) (VerifyResult, error) {
	stored, err := s.Client.Get(ctx, codeKey(key)).Result()
	if err == redis.Nil {
		return VerifyResult{Expired: true}, nil
	}
	if err != nil {
		return VerifyResult{}, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1 {
		pipe := s.Client.TxPipeline()
		pipe.Del(ctx, codeKey(key))
		pipe.Del(ctx, attemptsKey(key))
		if _, err := pipe.Exec(ctx); err != nil {
			return VerifyResult{}, err
		}
		return VerifyResult{Ok: true}, nil
	}

	attempts, err := s.Client.Incr(ctx, attemptsKey(key)).Result()
	if err != nil {
		return VerifyResult{}, err
	}
	s.Client.Expire(ctx, attemptsKey(key), CodeTTL)

	if attempts >= MaxAttempts {
		pipe := s.Client.TxPipeline()
		pipe.Del(ctx, codeKey(key))
		pipe.Del(ctx, attemptsKey(key))
		if _, err := pipe.Exec(ctx); err != nil {
			return VerifyResult{}, err
		}
		return VerifyResult{AttemptsExhausted: true}, nil
	}

	return VerifyResult{AttemptsLeft: MaxAttempts - int(attempts)}, nil
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.Client.Exists(ctx, codeKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	pipe := s.Client.TxPipeline()
	pipe.Del(ctx, codeKey(key))
	pipe.Del(ctx, attemptsKey(key))
	_, err := pipe.Exec(ctx)
	return err
}
