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

type QuotationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewQuotationRepo(db *dbpg.DB) *QuotationRepository {
	return &QuotationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *QuotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	query := `INSERT INTO quotations (id, name, email, phone, event_type, event_date, headcount, message, service_tier, status, total, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		q.ID, q.Name, q.Email, q.Phone, q.EventType, q.EventDate,
		q.Headcount, q.Message, q.ServiceTier, q.Status, q.Total,
		q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}

	return nil
}

// CreateLines writes the submission-time snapshot rows. One transaction: the
// parent quotation either gets all its lines or none of them.
func (r *QuotationRepository) CreateLines(ctx context.Context, lines []domain.QuotationLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO quotation_line_items (id, quotation_id, product_id, product_name, quantity, unit_price, subtotal)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, l := range lines {
		if _, err = tx.ExecContext(
			ctx, query,
			l.ID, l.QuotationID, l.ProductID, l.ProductName,
			l.Quantity, l.UnitPrice, l.Subtotal,
		); err != nil {
			return fmt.Errorf("insert quotation line: %w", err)
		}
	}

	return tx.Commit()
}

const quotationColumns = `id, name, email, phone, event_type, to_char(event_date, 'YYYY-MM-DD'), headcount, message, service_tier, status, total, reject_reason, created_at, updated_at`

func scanQuotation(scan func(...any) error) (*domain.Quotation, error) {
	var q domain.Quotation
	err := scan(
		&q.ID, &q.Name, &q.Email, &q.Phone, &q.EventType, &q.EventDate,
		&q.Headcount, &q.Message, &q.ServiceTier, &q.Status, &q.Total,
		&q.RejectReason, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuotationRepository) GetByID(ctx context.Context, id string) (*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + `
			  FROM quotations
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}

	q, err := scanQuotation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("scan quotation: %w", err)
	}

	return q, nil
}

func (r *QuotationRepository) List(ctx context.Context, status string) ([]*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + `
			  FROM quotations
			  WHERE ($1 = '' OR status = $1)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		res = append(res, q)
	}

	return res, rows.Err()
}

func (r *QuotationRepository) ListLines(ctx context.Context, quotationID string) ([]domain.QuotationLine, error) {
	query := `SELECT id, quotation_id, product_id, product_name, quantity, unit_price, subtotal
			  FROM quotation_line_items
			  WHERE quotation_id=$1
			  ORDER BY product_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation lines: %w", err)
	}
	defer rows.Close()

	var res []domain.QuotationLine
	for rows.Next() {
		var l domain.QuotationLine
		if err = rows.Scan(
			&l.ID, &l.QuotationID, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan quotation line: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *QuotationRepository) UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus, reason *string) error {
	query := `UPDATE quotations
			  SET status=$2, reject_reason=COALESCE($3, reject_reason), updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, reason)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("quotation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrQuotationNotFound
	}

	return nil
}
