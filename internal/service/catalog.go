package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wanerdev/creaparty2020/internal/service/ports"
)

// CatalogService covers the small admin surfaces with no state machine:
// categories and the gallery.
type CatalogService struct {
	categoryRepo ports.CategoryRepo
	galleryRepo  ports.GalleryRepo
}

func NewCatalogService(categoryRepo ports.CategoryRepo, galleryRepo ports.GalleryRepo) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		galleryRepo:  galleryRepo,
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	category := &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CatalogService) AddGalleryImage(ctx context.Context, title, url string) (*domain.GalleryImage, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}

	img := &domain.GalleryImage{
		ID:        uuid.New().String(),
		Title:     title,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.galleryRepo.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}

	return img, nil
}

func (s *CatalogService) ListGallery(ctx context.Context) ([]*domain.GalleryImage, error) {
	return s.galleryRepo.List(ctx)
}

func (s *CatalogService) DeleteGalleryImage(ctx context.Context, id string) error {
	return s.galleryRepo.Delete(ctx, id)
}
