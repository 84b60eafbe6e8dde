package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/linkbox/internal/shortener"
)

// RedisStore is a Redis implementation of shortener.Repository.
// Each link is one JSON document under prefix+code.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type redisLink struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	TargetURL string    `json:"targetUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRedisStore creates a new Redis-backed short link store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "link:",
	}
}

func (r *RedisStore) Insert(ctx context.Context, link *shortener.ShortLink) error {
	id := link.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	payload, err := json.Marshal(redisLink{
		ID:        id,
		Code:      string(link.Code),
		TargetURL: link.TargetURL,
		CreatedAt: link.CreatedAt,
	})
	if err != nil {
		return err
	}

	// SETNX keeps the first writer of a code.
	ok, err := r.client.SetNX(ctx, r.prefix+string(link.Code), payload, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return shortener.ErrDuplicateCode
	}

	link.ID = id

	return nil
}

func (r *RedisStore) FindByCode(ctx context.Context, code shortener.Code) (*shortener.ShortLink, error) {
	payload, err := r.client.Get(ctx, r.prefix+string(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	var doc redisLink
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}

	return &shortener.ShortLink{
		ID:        doc.ID,
		Code:      shortener.Code(doc.Code),
		TargetURL: doc.TargetURL,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Shutdown closes the Redis client.
func (r *RedisStore) Shutdown() error {
	return r.client.Close()
}

var _ shortener.Repository = (*RedisStore)(nil)
