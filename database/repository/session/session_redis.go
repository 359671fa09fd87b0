package sessionRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"multisport/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore implements SessionStore on Redis with TTL eviction.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Create(ctx context.Context) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := s.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	key := sessionKeyPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// Unknown or expired: start a fresh session under the same ID.
		session := &models.Session{ID: sessionID, CreatedAt: time.Now()}
		if err := s.Update(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", sessionID, err)
	}
	// Refresh the TTL on read.
	s.client.Expire(ctx, key, s.ttl)
	return &session, nil
}

func (s *RedisSessionStore) Update(ctx context.Context, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.ID, err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.ID, err)
	}
	return nil
}
