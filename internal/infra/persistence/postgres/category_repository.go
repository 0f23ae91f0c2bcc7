package postgres

import (
	"context"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll returns every category ordered by id.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	var categoryModels []model.CategoryModel

	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, *toCategoryDomain(&categoryModels[i]))
	}

	return categories, nil
}

// FindBySlug retrieves a single category by its unique slug.
func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).First(&categoryM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return toCategoryDomain(&categoryM), nil
}

// Create persists a new category and fills the generated id back in.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("category slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// --- Mapper functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Icon:        data.Icon,
		Description: data.Description,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Icon:        data.Icon,
		Description: data.Description,
	}
}
