package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	productRepo     ports.ProductRepo
	reservationRepo ports.ReservationRepo
	logger          logger.Logger
}

func NewAvailabilityService(
	productRepo ports.ProductRepo,
	reservationRepo ports.ReservationRepo,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Resolve returns the units of the product free on the given day. If the
// committed-units query fails the result degrades to the product's total
// stock with Degraded set; availability is advisory and a partial backend
// failure must not take the storefront down.
func (s *AvailabilityService) Resolve(ctx context.Context, productID, date string) (domain.Availability, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Availability{}, fmt.Errorf("%w: invalid date, expected %s", domain.ErrValidation, domain.DateLayout)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("get product: %w", err)
	}

	units, err := s.productRepo.AvailableUnits(ctx, productID, date)
	if err != nil {
		s.logger.Error("availability query failed, degrading to total stock",
			logger.String("product_id", productID),
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
		return domain.Availability{
			ProductID: productID,
			Date:      date,
			Units:     product.Stock,
			Degraded:  true,
		}, nil
	}

	if units < 0 {
		units = 0
	}

	return domain.Availability{
		ProductID: productID,
		Date:      date,
		Units:     units,
	}, nil
}

// CalendarBlocks lists the days in [from, to] occupied by decoration-tier
// reservations. Rental-tier reservations never appear here.
func (s *AvailabilityService) CalendarBlocks(ctx context.Context, from, to string) ([]string, error) {
	for _, d := range []string{from, to} {
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: invalid date, expected %s", domain.ErrValidation, domain.DateLayout)
		}
	}

	dates, err := s.reservationRepo.BlockedDates(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("blocked dates: %w", err)
	}

	return dates, nil
}
