package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type GalleryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGalleryRepo(db *dbpg.DB) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GalleryRepository) Create(ctx context.Context, img *domain.GalleryImage) error {
	query := `INSERT INTO gallery_images (id, title, url, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, img.ID, img.Title, img.URL, img.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gallery image: %w", err)
	}

	return nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	query := `SELECT id, title, url, created_at
			  FROM gallery_images
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()

	var res []*domain.GalleryImage
	for rows.Next() {
		var img domain.GalleryImage
		if err = rows.Scan(&img.ID, &img.Title, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		res = append(res, &img)
	}

	return res, rows.Err()
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM gallery_images WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gallery rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrImageNotFound
	}

	return nil
}
