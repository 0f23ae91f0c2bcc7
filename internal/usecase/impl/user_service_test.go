package impl

import (
	"context"
	"testing"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	mockRepo "prelovin/internal/mocks/repository"
	"prelovin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_SyncCurrentUser_UpsertsFromClaims(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newTestLogger())
	ctx := context.Background()

	userRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "ext-123", user.ID)
			assert.Equal(t, "ana@example.com", user.Email)
		}).
		Return(&entity.User{ID: "ext-123", Email: "ana@example.com", FirstName: "Ana"}, nil)

	user, err := service.SyncCurrentUser(ctx, &usecase.IdentityClaims{
		Subject:   "ext-123",
		Email:     "ana@example.com",
		FirstName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-123", user.ID)
}

func TestUserService_SyncCurrentUser_MissingSubjectRejected(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newTestLogger())

	_, err := service.SyncCurrentUser(context.Background(), &usecase.IdentityClaims{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserService_GetPublicProfile_StripsPrivateFields(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newTestLogger())
	ctx := context.Background()

	userRepo.On("FindByID", ctx, "ext-123").Return(&entity.User{
		ID:        "ext-123",
		Email:     "ana@example.com",
		FirstName: "Ana",
		Phone:     "0812",
		Address:   "Jl. Sudirman 1",
		City:      "Jakarta",
	}, nil)

	user, err := service.GetPublicProfile(ctx, "ext-123")
	require.NoError(t, err)
	assert.Empty(t, user.Email)
	assert.Empty(t, user.Phone)
	assert.Empty(t, user.Address)
	assert.Equal(t, "Jakarta", user.City)
	assert.Equal(t, "Ana", user.FirstName)
}

func TestUserService_GetPublicProfile_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newTestLogger())
	ctx := context.Background()

	userRepo.On("FindByID", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.GetPublicProfile(ctx, "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
