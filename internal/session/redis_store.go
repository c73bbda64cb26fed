// Package session keeps passwordless login tokens and issued sessions in Redis.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("token not found or expired")

// Record is the payload stored for an issued session.
type Record struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	SaveLoginToken(ctx context.Context, token, email string, ttl time.Duration) error
	ConsumeLoginToken(ctx context.Context, token string) (string, error)
	SaveSession(ctx context.Context, id string, record Record) error
	LookupSession(ctx context.Context, id string) (Record, error)
	RevokeSession(ctx context.Context, id string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// HashToken is what gets stored; a leaked keyspace never reveals usable links.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return fmt.Sprintf("%x", sum)
}

func loginKey(token string) string {
	return "login:" + HashToken(token)
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisStore) SaveLoginToken(ctx context.Context, token, email string, ttl time.Duration) error {
	if err := s.client.Set(ctx, loginKey(token), email, ttl).Err(); err != nil {
		return fmt.Errorf("save login token: %w", err)
	}
	return nil
}

// ConsumeLoginToken returns the email a token was issued for and invalidates it.
func (s *RedisStore) ConsumeLoginToken(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, loginKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("consume login token: %w", err)
	}
	return email, nil
}

func (s *RedisStore) SaveSession(ctx context.Context, id string, record Record) error {
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("save session: already expired at %s", record.ExpiresAt)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) LookupSession(ctx context.Context, id string) (Record, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("lookup session: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return record, nil
}

func (s *RedisStore) RevokeSession(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
