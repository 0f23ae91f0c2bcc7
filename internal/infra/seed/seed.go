// Package seed inserts the category reference data on startup. Categories
// have no management surface; the marketplace relies on this fixed set.
package seed

import (
	"context"
	"log/slog"

	"prelovin/config"
	"prelovin/internal/domain/entity"
	"prelovin/internal/domain/lifecycle"
	"prelovin/internal/domain/repository"
	"prelovin/internal/errors"

	"go.uber.org/fx"
)

var categorySeed = []entity.Category{
	{Name: "Elektronik", Slug: "elektronik", Icon: "Smartphone", Description: "Gadget, laptop, dan perangkat elektronik lainnya"},
	{Name: "Fashion", Slug: "fashion", Icon: "Shirt", Description: "Pakaian, sepatu, dan aksesoris"},
	{Name: "Furniture", Slug: "furniture", Icon: "Sofa", Description: "Perabotan rumah tangga"},
	{Name: "Hobi & Koleksi", Slug: "hobi-koleksi", Icon: "Gamepad2", Description: "Barang koleksi dan hobi"},
	{Name: "Buku", Slug: "buku", Icon: "BookOpen", Description: "Buku, majalah, dan komik"},
	{Name: "Otomotif", Slug: "otomotif", Icon: "Car", Description: "Aksesoris dan suku cadang kendaraan"},
	{Name: "Perlengkapan Bayi", Slug: "perlengkapan-bayi", Icon: "Baby", Description: "Perlengkapan dan mainan bayi"},
	{Name: "Olahraga", Slug: "olahraga", Icon: "Dumbbell", Description: "Peralatan dan pakaian olahraga"},
	{Name: "Kecantikan", Slug: "kecantikan", Icon: "Sparkles", Description: "Skincare, makeup, dan parfum"},
}

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	CategoryRepo repository.CategoryRepository
}

// Seeder runs the idempotent startup seeding.
type Seeder struct {
	logger       *slog.Logger
	categoryRepo repository.CategoryRepository
}

// Register hooks the seeder into the application lifecycle when enabled.
func Register(params Params) *Seeder {
	seeder := &Seeder{
		logger:       params.Logger,
		categoryRepo: params.CategoryRepo,
	}

	if params.Config.Seed == nil || !params.Config.Seed.Categories {
		return seeder
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return seeder.SeedCategories(ctx)
		},
	})

	return seeder
}

// SeedCategories inserts every missing category, keyed on slug. Existing
// rows are left untouched, so repeated startups are safe.
func (s *Seeder) SeedCategories(ctx context.Context) error {
	inserted := 0
	for _, category := range categorySeed {
		_, err := s.categoryRepo.FindBySlug(ctx, category.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check category existence")
		}

		category := category
		if err := s.categoryRepo.Create(ctx, &category); err != nil {
			return errors.Wrapf(err, "failed to seed category %s", category.Slug)
		}
		inserted++
	}

	if inserted > 0 {
		s.logger.InfoContext(ctx, "seeded categories", slog.Int("inserted", inserted))
	}

	return nil
}
