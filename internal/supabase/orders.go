package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"print-kiosk-backend/internal/models"
)

// TableClient stores orders through the Supabase REST API. It is used when no
// direct DATABASE_URL is configured. The postgrest client takes no context,
// so ctx is accepted only to satisfy the store interface.
type TableClient struct {
	client *Client
	table  string
}

func NewTableClient(client *Client, table string) *TableClient {
	return &TableClient{client: client, table: table}
}

type orderInsert struct {
	ID          uuid.UUID          `json:"id"`
	Code        string             `json:"code"`
	Bucket      string             `json:"bucket"`
	FilePath    string             `json:"file_path"`
	FileName    string             `json:"file_name"`
	ColorMode   models.ColorMode   `json:"color_mode"`
	Copies      int                `json:"copies"`
	Pages       int                `json:"pages"`
	AmountCents int64              `json:"amount_cents"`
	Status      models.OrderStatus `json:"status"`
}

func (t *TableClient) from() *postgrest.QueryBuilder {
	return t.client.Supabase.From(t.table)
}

func (t *TableClient) CodeExists(_ context.Context, code string) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	_, err := t.from().Select("id", "", false).Eq("code", code).Limit(1, "").ExecuteTo(&rows)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return len(rows) > 0, nil
}

func (t *TableClient) CreateOrder(_ context.Context, order *models.Order) error {
	row := orderInsert{
		ID:          order.ID,
		Code:        order.Code,
		Bucket:      order.Bucket,
		FilePath:    order.FilePath,
		FileName:    order.FileName,
		ColorMode:   order.ColorMode,
		Copies:      order.Copies,
		Pages:       order.Pages,
		AmountCents: order.AmountCents,
		Status:      order.Status,
	}

	var inserted []models.Order
	_, err := t.from().Insert(row, false, "", "representation", "").ExecuteTo(&inserted)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	if len(inserted) > 0 {
		order.CreatedAt = inserted[0].CreatedAt
	}
	return nil
}

func (t *TableClient) SetPaymentRef(_ context.Context, orderID uuid.UUID, paymentRef string) error {
	var updated []models.Order
	_, err := t.from().
		Update(map[string]any{"payment_ref": paymentRef}, "representation", "").
		Eq("id", orderID.String()).
		ExecuteTo(&updated)
	if err != nil {
		return fmt.Errorf("failed to set payment ref: %w", err)
	}
	if len(updated) == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

// MarkPaid only matches rows not yet paid, so the returned representation is
// empty when another writer got there first.
func (t *TableClient) MarkPaid(_ context.Context, orderID uuid.UUID, paidAt time.Time) (bool, error) {
	var updated []models.Order
	_, err := t.from().
		Update(map[string]any{"status": models.StatusPaid, "paid_at": paidAt.UTC()}, "representation", "").
		Eq("id", orderID.String()).
		Neq("status", string(models.StatusPaid)).
		ExecuteTo(&updated)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	return len(updated) > 0, nil
}

func (t *TableClient) GetOrderByCode(_ context.Context, code string) (*models.Order, error) {
	var rows []models.Order
	_, err := t.from().
		Select(orderColumns, "", false).
		Eq("code", code).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(1, "").
		ExecuteTo(&rows)
	return firstOrder(rows, err)
}

func (t *TableClient) GetOrderByPaymentRef(_ context.Context, paymentRef string) (*models.Order, error) {
	var rows []models.Order
	_, err := t.from().
		Select(orderColumns, "", false).
		Eq("payment_ref", paymentRef).
		Limit(1, "").
		ExecuteTo(&rows)
	return firstOrder(rows, err)
}

func firstOrder(rows []models.Order, err error) (*models.Order, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if len(rows) == 0 {
		return nil, models.ErrOrderNotFound
	}
	return &rows[0], nil
}
