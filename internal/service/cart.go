package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CartService applies cart rules (which live on domain.Cart) and keeps the
// persisted copy in sync after every mutation.
type CartService struct {
	store       ports.CartStore
	productRepo ports.ProductRepo
	resolver    ports.StockResolver
	logger      logger.Logger
}

func NewCartService(
	store ports.CartStore,
	productRepo ports.ProductRepo,
	resolver ports.StockResolver,
	logger logger.Logger,
) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

// SetEventDate rebinds the cart and re-resolves every line's availability
// snapshot for the new date.
func (s *CartService) SetEventDate(ctx context.Context, sessionID, date string) (*domain.Cart, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date, expected %s", domain.ErrValidation, domain.DateLayout)
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart.SetEventDate(date)
	for _, l := range cart.Lines {
		av, err := s.resolver.Resolve(ctx, l.ProductID, date)
		if err != nil {
			return nil, fmt.Errorf("resolve availability: %w", err)
		}
		cart.RefreshAvailability(l.ProductID, av.Units)
	}

	if err = s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if cart.EventDate == "" {
		return nil, fmt.Errorf("%w: select an event date before adding items", domain.ErrValidation)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	av, err := s.resolver.Resolve(ctx, productID, cart.EventDate)
	if err != nil {
		return nil, fmt.Errorf("resolve availability: %w", err)
	}

	if err = cart.AddItem(product, quantity, av.Units); err != nil {
		return nil, err
	}

	if err = s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.Info("cart item added",
		logger.String("session_id", sessionID),
		logger.String("product_id", productID),
		logger.Int("quantity", cart.QuantityOf(productID)),
	)

	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if err = cart.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if err = s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart.RemoveItem(productID)

	if err = s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
