package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"print-kiosk-backend/internal/models"
	"print-kiosk-backend/internal/yoco"
)

type MockOrderStore struct {
	mock.Mock
}

type MockFileStore struct {
	mock.Mock
}

type MockCheckoutClient struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockOrderStore) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStore) SetPaymentRef(ctx context.Context, orderID uuid.UUID, paymentRef string) error {
	args := m.Called(ctx, orderID, paymentRef)
	return args.Error(0)
}

func (m *MockOrderStore) MarkPaid(ctx context.Context, orderID uuid.UUID, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, orderID, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) GetOrderByCode(ctx context.Context, code string) (*models.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrderByPaymentRef(ctx context.Context, paymentRef string) (*models.Order, error) {
	args := m.Called(ctx, paymentRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockFileStore) Bucket() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileStore) UploadFile(storagePath string, data []byte, contentType string) error {
	args := m.Called(storagePath, data, contentType)
	return args.Error(0)
}

func (m *MockFileStore) SignedURL(storagePath string, expiresInSeconds int) (string, error) {
	args := m.Called(storagePath, expiresInSeconds)
	return args.String(0), args.Error(1)
}

func (m *MockCheckoutClient) CreateCheckout(ctx context.Context, req yoco.CheckoutRequest) (*yoco.Checkout, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*yoco.Checkout), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}
