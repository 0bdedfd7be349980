package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

type GalleryRepo interface {
	Create(ctx context.Context, img *domain.GalleryImage) error
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}
