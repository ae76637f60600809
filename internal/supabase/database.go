package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"print-kiosk-backend/internal/models"
)

const orderColumns = "id, code, bucket, file_path, file_name, color_mode, copies, pages, amount_cents, status, payment_ref, paid_at, created_at"

// DatabaseClient stores orders through a direct Postgres connection.
type DatabaseClient struct {
	db    *sql.DB
	table string
}

func NewDatabaseClient(connectionString, table string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db, table: pq.QuoteIdentifier(table)}, nil
}

func (d *DatabaseClient) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE code = $1)`, d.table),
		code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return exists, nil
}

func (d *DatabaseClient) CreateOrder(ctx context.Context, order *models.Order) error {
	err := d.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, code, bucket, file_path, file_name, color_mode, copies, pages, amount_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, d.table),
		order.ID, order.Code, order.Bucket, order.FilePath, order.FileName,
		order.ColorMode, order.Copies, order.Pages, order.AmountCents, order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (d *DatabaseClient) SetPaymentRef(ctx context.Context, orderID uuid.UUID, paymentRef string) error {
	res, err := d.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE %s
		SET payment_ref = $1
		WHERE id = $2
	`, d.table), paymentRef, orderID)
	if err != nil {
		return fmt.Errorf("failed to set payment ref: %w", err)
	}
	return requireRow(res)
}

// MarkPaid moves the order to paid. Rows already paid are left untouched so
// the first paid_at wins, and the call reports false.
func (d *DatabaseClient) MarkPaid(ctx context.Context, orderID uuid.UUID, paidAt time.Time) (bool, error) {
	res, err := d.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE %s
		SET status = $1, paid_at = $2
		WHERE id = $3 AND status <> $1
	`, d.table), models.StatusPaid, paidAt, orderID)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	return n > 0, nil
}

// GetOrderByCode returns the newest order carrying code.
func (d *DatabaseClient) GetOrderByCode(ctx context.Context, code string) (*models.Order, error) {
	row := d.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE code = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, orderColumns, d.table), code)
	return scanOrder(row)
}

func (d *DatabaseClient) GetOrderByPaymentRef(ctx context.Context, paymentRef string) (*models.Order, error) {
	row := d.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE payment_ref = $1
		LIMIT 1
	`, orderColumns, d.table), paymentRef)
	return scanOrder(row)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

func scanOrder(row *sql.Row) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.Code, &order.Bucket, &order.FilePath, &order.FileName,
		&order.ColorMode, &order.Copies, &order.Pages, &order.AmountCents,
		&order.Status, &order.PaymentRef, &order.PaidAt, &order.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}
