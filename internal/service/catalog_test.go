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

func TestCatalogService_CreateCategory(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	galleryRepo := mocks.NewMockGalleryRepo(t)

	svc := NewCatalogService(categoryRepo, galleryRepo)

	categoryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	category, err := svc.CreateCategory(context.Background(), "Tables")

	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Tables", category.Name)
}

func TestCatalogService_CreateCategory_EmptyName(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	galleryRepo := mocks.NewMockGalleryRepo(t)

	svc := NewCatalogService(categoryRepo, galleryRepo)

	_, err := svc.CreateCategory(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_AddGalleryImage(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	galleryRepo := mocks.NewMockGalleryRepo(t)

	svc := NewCatalogService(categoryRepo, galleryRepo)

	galleryRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	img, err := svc.AddGalleryImage(context.Background(), "Wedding setup", "https://cdn.example.com/w1.jpg")

	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.Equal(t, "https://cdn.example.com/w1.jpg", img.URL)
}

func TestCatalogService_AddGalleryImage_RequiresURL(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	galleryRepo := mocks.NewMockGalleryRepo(t)

	svc := NewCatalogService(categoryRepo, galleryRepo)

	_, err := svc.AddGalleryImage(context.Background(), "untitled", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_DeleteGalleryImage(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepo(t)
	galleryRepo := mocks.NewMockGalleryRepo(t)

	svc := NewCatalogService(categoryRepo, galleryRepo)

	galleryRepo.EXPECT().Delete(mock.Anything, "g1").Return(domain.ErrImageNotFound)

	err := svc.DeleteGalleryImage(context.Background(), "g1")

	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}
