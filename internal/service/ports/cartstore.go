package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

// CartStore persists carts across reloads, keyed by browser session. An empty
// cart removes its entry instead of storing an empty structure.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
