package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports/mocks"
)

func TestCartService_AddItem(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	product := &domain.Product{ID: "p1", Name: "Folding chair", PricePerDay: 2.5, Stock: 50}

	store.EXPECT().Load(mock.Anything, "sess").Return(&domain.Cart{EventDate: "2026-10-17"}, nil)
	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	resolver.EXPECT().Resolve(mock.Anything, "p1", "2026-10-17").
		Return(domain.Availability{ProductID: "p1", Date: "2026-10-17", Units: 40}, nil)
	store.EXPECT().Save(mock.Anything, "sess", mock.Anything).Return(nil)

	cart, err := svc.AddItem(context.Background(), "sess", "p1", 10)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 10, cart.Lines[0].Quantity)
	assert.Equal(t, 40, cart.Lines[0].AvailableStock)
	assert.Equal(t, 25.0, cart.Total())
}

func TestCartService_AddItem_RequiresEventDate(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	store.EXPECT().Load(mock.Anything, "sess").Return(&domain.Cart{}, nil)

	_, err := svc.AddItem(context.Background(), "sess", "p1", 10)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartService_AddItem_OverCapacityNotSaved(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	product := &domain.Product{ID: "p1", Name: "Folding chair", PricePerDay: 2.5, Stock: 50}

	store.EXPECT().Load(mock.Anything, "sess").Return(&domain.Cart{EventDate: "2026-10-17"}, nil)
	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	resolver.EXPECT().Resolve(mock.Anything, "p1", "2026-10-17").
		Return(domain.Availability{ProductID: "p1", Date: "2026-10-17", Units: 4}, nil)

	_, err := svc.AddItem(context.Background(), "sess", "p1", 10)

	assert.ErrorIs(t, err, domain.ErrCapacity)
}

func TestCartService_AddItem_MergeChecksFreshAvailability(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	product := &domain.Product{ID: "p1", Name: "Folding chair", PricePerDay: 2.5, Stock: 50}
	loaded := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Folding chair", UnitPrice: 2.5, Quantity: 3, AvailableStock: 10},
		},
	}

	store.EXPECT().Load(mock.Anything, "sess").Return(loaded, nil)
	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(product, nil)
	resolver.EXPECT().Resolve(mock.Anything, "p1", "2026-10-17").
		Return(domain.Availability{ProductID: "p1", Date: "2026-10-17", Units: 2}, nil)

	_, err := svc.AddItem(context.Background(), "sess", "p1", 2)

	require.Error(t, err)
	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 2, capErr.Available)
	assert.Equal(t, 3, loaded.QuantityOf("p1"))
}

func TestCartService_SetEventDate_RefreshesLines(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	loaded := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Folding chair", UnitPrice: 2.5, Quantity: 10, AvailableStock: 40},
		},
	}

	store.EXPECT().Load(mock.Anything, "sess").Return(loaded, nil)
	resolver.EXPECT().Resolve(mock.Anything, "p1", "2026-11-01").
		Return(domain.Availability{ProductID: "p1", Date: "2026-11-01", Units: 6}, nil)
	store.EXPECT().Save(mock.Anything, "sess", mock.Anything).Return(nil)

	cart, err := svc.SetEventDate(context.Background(), "sess", "2026-11-01")

	require.NoError(t, err)
	assert.Equal(t, "2026-11-01", cart.EventDate)
	assert.Equal(t, 6, cart.Lines[0].AvailableStock)
	assert.Equal(t, 10, cart.Lines[0].Quantity)
}

func TestCartService_SetEventDate_InvalidDate(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	_, err := svc.SetEventDate(context.Background(), "sess", "soon")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	loaded := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Folding chair", UnitPrice: 2.5, Quantity: 10, AvailableStock: 40},
		},
	}

	store.EXPECT().Load(mock.Anything, "sess").Return(loaded, nil)
	store.EXPECT().Save(mock.Anything, "sess", mock.Anything).Return(nil)

	cart, err := svc.UpdateQuantity(context.Background(), "sess", "p1", 3)

	require.NoError(t, err)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCartService_UpdateQuantity_OverSnapshot(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	loaded := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Quantity: 10, AvailableStock: 40},
		},
	}

	store.EXPECT().Load(mock.Anything, "sess").Return(loaded, nil)

	_, err := svc.UpdateQuantity(context.Background(), "sess", "p1", 41)

	assert.ErrorIs(t, err, domain.ErrCapacity)
}

func TestCartService_RemoveItem(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	loaded := &domain.Cart{
		EventDate: "2026-10-17",
		Lines: []domain.CartLine{
			{ProductID: "p1", Quantity: 10, AvailableStock: 40},
		},
	}

	store.EXPECT().Load(mock.Anything, "sess").Return(loaded, nil)
	store.EXPECT().Save(mock.Anything, "sess", mock.Anything).Return(nil)

	cart, err := svc.RemoveItem(context.Background(), "sess", "p1")

	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_Clear(t *testing.T) {
	store := mocks.NewMockCartStore(t)
	productRepo := mocks.NewMockProductRepo(t)
	resolver := mocks.NewMockStockResolver(t)

	svc := NewCartService(store, productRepo, resolver, newTestLogger(t))

	store.EXPECT().Clear(mock.Anything, "sess").Return(nil)

	err := svc.Clear(context.Background(), "sess")

	require.NoError(t, err)
}
