package postgres

import (
	"context"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their identity-provider id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Upsert inserts or overwrites the user row keyed on id as one atomic
// INSERT ... ON CONFLICT DO UPDATE, so concurrent identity-refresh events
// for the same subject cannot interleave. Last write wins. Only the
// identity-provider fields are overwritten; phone, address, and city are
// user-entered and survive the refresh.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("email already in use")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	// Re-read so the caller sees the row's true created_at when the upsert
	// hit the update arm.
	var saved model.UserModel
	if err := repo.db.WithContext(ctx).First(&saved, "id = ?", user.ID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load upserted user")
	}

	return toUserDomain(&saved), nil
}

// --- Mapper functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		Phone:           data.Phone,
		Address:         data.Address,
		City:            data.City,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		ProfileImageURL: data.ProfileImageURL,
		Phone:           data.Phone,
		Address:         data.Address,
		City:            data.City,
	}
}
