package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. This allows the use case layer to handle transactions
// without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the
	// function returns an error, the transaction is rolled back; otherwise
	// it is committed. All repository operations obtained from the factory
	// share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute uses the same connection.
type RepositoryFactory interface {
	// NewProductRepository returns a ProductRepository bound to the
	// current transaction.
	NewProductRepository() ProductRepository

	// NewCartRepository returns a CartRepository bound to the current
	// transaction.
	NewCartRepository() CartRepository

	// NewOrderRepository returns an OrderRepository bound to the current
	// transaction.
	NewOrderRepository() OrderRepository
}
