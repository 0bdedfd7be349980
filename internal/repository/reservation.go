package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the reservation. The unique constraint on quotation_id is
// the authoritative duplicate-conversion guard; a violation surfaces as
// ErrDuplicateReservation.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, quotation_id, name, email, phone, event_type, event_date, headcount, service_tier, status, total, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.QuotationID, res.Name, res.Email, res.Phone,
		res.EventType, res.EventDate, res.Headcount, res.ServiceTier,
		res.Status, res.Total, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateReservation
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) CreateLines(ctx context.Context, lines []domain.ReservationLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO reservation_line_items (id, reservation_id, product_id, product_name, quantity, unit_price, subtotal)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, l := range lines {
		if _, err = tx.ExecContext(
			ctx, query,
			l.ID, l.ReservationID, l.ProductID, l.ProductName,
			l.Quantity, l.UnitPrice, l.Subtotal,
		); err != nil {
			return fmt.Errorf("insert reservation line: %w", err)
		}
	}

	return tx.Commit()
}

const reservationColumns = `id, quotation_id, name, email, phone, event_type, to_char(event_date, 'YYYY-MM-DD'), headcount, service_tier, status, total, created_at, updated_at`

func scanReservation(scan func(...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	err := scan(
		&res.ID, &res.QuotationID, &res.Name, &res.Email, &res.Phone,
		&res.EventType, &res.EventDate, &res.Headcount, &res.ServiceTier,
		&res.Status, &res.Total, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, status string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE ($1 = '' OR status = $1)
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListLines(ctx context.Context, reservationID string) ([]domain.ReservationLine, error) {
	query := `SELECT id, reservation_id, product_id, product_name, quantity, unit_price, subtotal
			  FROM reservation_line_items
			  WHERE reservation_id=$1
			  ORDER BY product_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list reservation lines: %w", err)
	}
	defer rows.Close()

	var res []domain.ReservationLine
	for rows.Next() {
		var l domain.ReservationLine
		if err = rows.Scan(
			&l.ID, &l.ReservationID, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan reservation line: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	query := `UPDATE reservations
			  SET status=$2, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ExistsForQuotation(ctx context.Context, quotationID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reservations WHERE quotation_id = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, quotationID)
	if err != nil {
		return false, fmt.Errorf("check reservation for quotation: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

// BlockedDates returns the days occupied by decoration-tier reservations in a
// calendar-blocking status. Rental-tier reservations are never part of the
// result, whatever their status.
func (r *ReservationRepository) BlockedDates(ctx context.Context, from, to string) ([]string, error) {
	query := `SELECT DISTINCT to_char(event_date, 'YYYY-MM-DD')
			  FROM reservations
			  WHERE service_tier = $1
			    AND status = ANY($2)
			    AND event_date BETWEEN $3::date AND $4::date
			  ORDER BY 1`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ServiceTierDecoration, pq.Array(domain.CalendarBlockingStatuses), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("blocked dates: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var d string
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan blocked date: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) DueReminders(ctx context.Context, date string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE event_date = $1::date
			    AND status = $2
			    AND NOT reminder_sent`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.ReservationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("due reminders: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id string) error {
	query := `UPDATE reservations SET reminder_sent = TRUE WHERE id=$1 AND NOT reminder_sent`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reminder rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ListOverdue(ctx context.Context, today string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE event_date < $1::date
			    AND status <> ALL($2)
			  ORDER BY event_date`

	finals := []domain.ReservationStatus{
		domain.ReservationStatusCompleted,
		domain.ReservationStatusCancelled,
	}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, today, pq.Array(finals))
	if err != nil {
		return nil, fmt.Errorf("list overdue: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, r)
	}

	return res, rows.Err()
}
