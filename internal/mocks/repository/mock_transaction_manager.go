package repository

import (
	"context"

	"prelovin/internal/domain/repository"
)

// StubRepositoryFactory hands out fixed repository instances, so a test can
// route the transactional path through its mocks.
type StubRepositoryFactory struct {
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
}

func (f *StubRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *StubRepositoryFactory) NewCartRepository() repository.CartRepository {
	return f.CartRepo
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

// StubTransactionManager runs the transactional function against the stub
// factory without any real transaction. When BeginErr is set, Execute fails
// without invoking the function.
type StubTransactionManager struct {
	Factory  *StubRepositoryFactory
	BeginErr error
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}
