package repository

import (
	"context"

	"prelovin/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

// NewMockCartRepository creates a mock bound to the test's lifecycle.
func NewMockCartRepository(t mockConstructorTestingT) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CartItemWithProduct), args.Error(1)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id int64) (*entity.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindByUserAndProduct(ctx context.Context, userID string, productID int64) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartItem), args.Error(1)
}

func (m *MockCartRepository) Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*entity.CartItem, error) {
	args := m.Called(ctx, id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartItem), args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}
