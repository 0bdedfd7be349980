package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, description, price_per_day, stock, available, category_id, image_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Description, p.PricePerDay, p.Stock,
		p.Available, p.CategoryID, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, description, price_per_day, stock, available, category_id, image_url, created_at, updated_at
			  FROM products
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	var p domain.Product
	if err = row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PricePerDay, &p.Stock,
		&p.Available, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	query := `SELECT id, name, description, price_per_day, stock, available, category_id, image_url, created_at, updated_at
			  FROM products
			  WHERE ($1 = '' OR category_id::text = $1)
			    AND (NOT $2 OR available)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.CategoryID, filter.OnlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var res []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err = rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.PricePerDay, &p.Stock,
			&p.Available, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products
			  SET name=$2, description=$3, price_per_day=$4, stock=$5, available=$6, category_id=$7, image_url=$8, updated_at=$9
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Description, p.PricePerDay, p.Stock,
		p.Available, p.CategoryID, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("product rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("product rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// AvailableUnits is the stock-availability query: total stock minus the units
// committed by non-cancelled reservations whose event falls on the given day.
// Clamped at zero in SQL so callers never see a negative count.
func (r *ProductRepository) AvailableUnits(ctx context.Context, productID, date string) (int, error) {
	query := `SELECT GREATEST(p.stock - COALESCE((
				  SELECT SUM(rl.quantity)
				  FROM reservation_line_items rl
				  JOIN reservations res ON res.id = rl.reservation_id
				  WHERE rl.product_id = p.id
				    AND res.event_date = $2::date
				    AND res.status <> 'cancelled'
			  ), 0), 0)
			  FROM products p
			  WHERE p.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, productID, date)
	if err != nil {
		return 0, fmt.Errorf("available units: %w", err)
	}

	var units int
	if err = row.Scan(&units); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("scan available units: %w", err)
	}

	return units, nil
}
