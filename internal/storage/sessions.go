package storage

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Login sessions live in Redis keyed by the token's jti claim, so a logout
// invalidates the token immediately even though the JWT itself is stateless.

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}

func (s *Service) SaveSession(tokenID string, userID uint, ttl time.Duration) error {
	return s.Redis.Set(s.Ctx, sessionKey(tokenID), userID, ttl).Err()
}

func (s *Service) SessionAlive(tokenID string) (bool, error) {
	_, err := s.Redis.Get(s.Ctx, sessionKey(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) DeleteSession(tokenID string) error {
	return s.Redis.Del(s.Ctx, sessionKey(tokenID)).Err()
}
