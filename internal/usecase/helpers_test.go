package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	memrepo "thriftbay/internal/adapter/repository"
	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/internal/infrastructure/auth"
)

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*entity.Asset, error) {
	args := m.Called(ctx, file, contentType, folder)
	if a, ok := args.Get(0).(*entity.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func (m *mockStorage) Close() error { return nil }

var _ service.ObjectStorage = (*mockStorage)(nil)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	return m.Called(ctx, subject, payload).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

var _ service.EventPublisher = (*mockPublisher)(nil)

type mockRevoker struct{ mock.Mock }

func (m *mockRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *mockRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRevoker) Close() error { return nil }

var _ service.TokenRevoker = (*mockRevoker)(nil)

type fixture struct {
	users     repository.UserRepository
	items     repository.ItemRepository
	orders    repository.OrderRepository
	contacts  *memrepo.MemoryContactRepository
	storage   *mockStorage
	publisher *mockPublisher
	revoker   *mockRevoker
	tokens    *auth.TokenManager

	auth    *AuthUseCase
	user    *UserUseCase
	item    *ItemUseCase
	order   *OrderUseCase
	contact *ContactUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:     memrepo.NewMemoryUserRepository(),
		items:     memrepo.NewMemoryItemRepository(),
		orders:    memrepo.NewMemoryOrderRepository(),
		contacts:  memrepo.NewMemoryContactRepository(),
		storage:   &mockStorage{},
		publisher: &mockPublisher{},
		revoker:   &mockRevoker{},
		tokens:    auth.NewTokenManager("test-secret", 7*24*time.Hour),
	}
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	f.auth = NewAuthUseCase(f.users, hasher, f.tokens, f.revoker)
	f.user = NewUserUseCase(f.users, f.items, f.storage, hasher, f.revoker)
	f.item = NewItemUseCase(f.items, f.users, f.storage, f.publisher)
	f.order = NewOrderUseCase(f.orders, f.items, f.users, f.publisher)
	f.contact = NewContactUseCase(f.contacts, f.publisher)
	return f
}

func (f *fixture) register(t *testing.T, name, email, userType string) *entity.User {
	t.Helper()
	u, err := f.auth.Register(context.Background(), RegisterInput{
		Name:     name,
		Email:    email,
		Phone:    "9998887776",
		Password: "secret1",
		Type:     userType,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) createItem(t *testing.T, seller *entity.User, name string, price float64) *entity.Item {
	t.Helper()
	item, err := f.item.CreateItem(context.Background(), seller.ID, seller.Type, ItemInput{
		Name:    name,
		Address: "12 Market St",
		Price:   &price,
		Phone:   "5551234",
		Type:    "furniture",
		Details: "Gently used",
	}, nil)
	require.NoError(t, err)
	return item
}

func price(v float64) *float64 {
	return &v
}
