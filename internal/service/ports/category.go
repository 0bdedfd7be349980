package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
