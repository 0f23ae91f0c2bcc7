package repository

import (
	"context"
	"errors"

	"prelovin/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for the static
// category reference data.
type CategoryRepository interface {
	// FindAll returns every category, ordered by id for stable UI listing.
	FindAll(ctx context.Context) ([]entity.Category, error)

	// FindBySlug retrieves a single category by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// Create persists a new category; used by the seeder only.
	Create(ctx context.Context, category *entity.Category) error
}
