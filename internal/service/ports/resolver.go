package ports

import (
	"context"

	"github.com/wanerdev/creaparty2020/internal/domain"
)

// StockResolver answers how many units of a product are free on a calendar
// day. Read-only snapshot, no hold is taken.
type StockResolver interface {
	Resolve(ctx context.Context, productID, date string) (domain.Availability, error)
}
