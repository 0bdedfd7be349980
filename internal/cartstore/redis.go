package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wanerdev/creaparty2020/internal/domain"
)

// Two slots per session, mirroring the storefront's local-storage layout: a
// JSON array of cart lines and a plain date string.
const (
	keyItems = "cart:%s:items"
	keyDate  = "cart:%s:date"
)

// TTL keeps abandoned carts from accumulating; every save renews it.
var TTL = 7 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func New(addr string) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func NewWithClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Load returns the persisted cart, or an empty one when no slots exist.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart := &domain.Cart{}

	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyItems, sessionID)).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return nil, fmt.Errorf("get cart items: %w", err)
	default:
		if err = json.Unmarshal([]byte(raw), &cart.Lines); err != nil {
			return nil, fmt.Errorf("decode cart items: %w", err)
		}
	}

	date, err := s.rdb.Get(ctx, fmt.Sprintf(keyDate, sessionID)).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return nil, fmt.Errorf("get cart date: %w", err)
	default:
		cart.EventDate = date
	}

	return cart, nil
}

// Save writes both slots. An empty cart with no date removes its entry
// instead of storing an empty structure.
func (s *Store) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if cart.Empty() && cart.EventDate == "" {
		return s.Clear(ctx, sessionID)
	}

	pipe := s.rdb.TxPipeline()

	if cart.Empty() {
		pipe.Del(ctx, fmt.Sprintf(keyItems, sessionID))
	} else {
		raw, err := json.Marshal(cart.Lines)
		if err != nil {
			return fmt.Errorf("encode cart items: %w", err)
		}
		pipe.Set(ctx, fmt.Sprintf(keyItems, sessionID), raw, TTL)
	}

	if cart.EventDate == "" {
		pipe.Del(ctx, fmt.Sprintf(keyDate, sessionID))
	} else {
		pipe.Set(ctx, fmt.Sprintf(keyDate, sessionID), cart.EventDate, TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx,
		fmt.Sprintf(keyItems, sessionID),
		fmt.Sprintf(keyDate, sessionID),
	).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
