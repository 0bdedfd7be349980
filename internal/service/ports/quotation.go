package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

type QuotationRepo interface {
	Create(ctx context.Context, q *domain.Quotation) error
	CreateLines(ctx context.Context, lines []domain.QuotationLine) error
	GetByID(ctx context.Context, id string) (*domain.Quotation, error)
	List(ctx context.Context, status string) ([]*domain.Quotation, error)
	ListLines(ctx context.Context, quotationID string) ([]domain.QuotationLine, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus, reason *string) error
}
