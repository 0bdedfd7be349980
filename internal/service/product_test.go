package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports/mocks"
)

func TestProductService_Create(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:        "Folding chair",
		Description: "White resin",
		PricePerDay: 2.5,
		Stock:       50,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.Available)
	assert.Equal(t, 50, product.Stock)
}

func TestProductService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateProductInput
	}{
		{"missing name", domain.CreateProductInput{PricePerDay: 2.5, Stock: 10}},
		{"negative price", domain.CreateProductInput{Name: "Chair", PricePerDay: -1, Stock: 10}},
		{"negative stock", domain.CreateProductInput{Name: "Chair", PricePerDay: 2.5, Stock: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			svc := NewProductService(repo)

			_, err := svc.Create(context.Background(), tc.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestProductService_Create_HonorsAvailableFlag(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	off := false
	product, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:      "Retired arch",
		Stock:     1,
		Available: &off,
	})

	require.NoError(t, err)
	assert.False(t, product.Available)
}

func TestProductService_Update(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	stored := &domain.Product{ID: "p1", Name: "Folding chair", PricePerDay: 2.5, Stock: 50, Available: true}

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Update(context.Background(), "p1", domain.CreateProductInput{
		Name:        "Folding chair",
		PricePerDay: 3,
		Stock:       60,
	})

	require.NoError(t, err)
	assert.Equal(t, 3.0, product.PricePerDay)
	assert.Equal(t, 60, product.Stock)
	assert.True(t, product.Available)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrProductNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.CreateProductInput{Name: "Chair"})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductService_Delete(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	repo.EXPECT().Delete(mock.Anything, "p1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "p1"))
}
