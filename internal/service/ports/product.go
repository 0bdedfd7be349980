package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error

	// AvailableUnits computes stock minus units committed by non-cancelled
	// reservations on the given calendar day, clamped at zero.
	AvailableUnits(ctx context.Context, productID, date string) (int, error)
}
