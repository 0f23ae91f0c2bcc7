package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"prelovin/internal/domain/entity"
	"prelovin/internal/domain/repository"
	mockRepo "prelovin/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeeder_SeedCategories_InsertsOnlyMissing(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	seeder := &Seeder{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		categoryRepo: categoryRepo,
	}
	ctx := context.Background()

	// "elektronik" already exists; everything else is missing.
	categoryRepo.On("FindBySlug", ctx, "elektronik").
		Return(&entity.Category{ID: 1, Slug: "elektronik"}, nil)
	for _, category := range categorySeed[1:] {
		categoryRepo.On("FindBySlug", ctx, category.Slug).
			Return(nil, repository.ErrCategoryNotFound)
	}
	categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil).Times(len(categorySeed) - 1)

	err := seeder.SeedCategories(ctx)
	require.NoError(t, err)
}

func TestSeeder_SeedCategories_NoopWhenAllPresent(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	seeder := &Seeder{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		categoryRepo: categoryRepo,
	}
	ctx := context.Background()

	for _, category := range categorySeed {
		category := category
		categoryRepo.On("FindBySlug", ctx, category.Slug).
			Return(&entity.Category{ID: 1, Slug: category.Slug}, nil)
	}

	err := seeder.SeedCategories(ctx)
	require.NoError(t, err)
}
