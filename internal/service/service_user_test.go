package service

import (
	"context"
	"testing"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/service/mocks"
	"github.com/pvaldera/go-game-catalog/internal/store"
	storemocks "github.com/pvaldera/go-game-catalog/internal/store/mocks"
	"github.com/pvaldera/go-game-catalog/internal/utils"
	"github.com/pvaldera/go-game-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(
	t *testing.T,
	ctrl *gomock.Controller,
) (*userService, *storemocks.MockUserRepository, *mocks.MockIDGenerator) {
	t.Helper()

	mockUsers := storemocks.NewMockUserRepository(ctrl)
	mockIDs := mocks.NewMockIDGenerator(ctrl)

	svc := NewUserService(mockUsers, mockIDs, logger.Nop()).(*userService)
	return svc, mockUsers, mockIDs
}

func TestUserService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockIDs := newTestUserService(t, ctrl)
	ctx := context.Background()

	req := models.CreateUserRequest{
		Name:     "Marta",
		Email:    "marta@example.com",
		Role:     models.RoleAdmin,
		Password: "chosen-pw",
	}

	mockUsers.EXPECT().ExistsUserByEmail(ctx, req.Email).Return(false, nil)
	mockIDs.EXPECT().Generate().Return("u-9")
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "u-9", u.ID)
			assert.Equal(t, models.RoleAdmin, u.Role, "the caller-chosen role must be kept")
			assert.NotEqual(t, req.Password, u.PasswordHash, "password must be stored hashed")

			ok, verr := utils.VerifyPassword(u.PasswordHash, req.Password)
			require.NoError(t, verr)
			assert.True(t, ok, "stored hash must verify against the chosen password")
			return u, nil
		},
	)

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, created.Role)
}

func TestUserService_Create_DefaultPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockIDs := newTestUserService(t, ctrl)
	ctx := context.Background()

	req := models.CreateUserRequest{Name: "Marta", Email: "marta@example.com", Role: models.RoleUser}

	mockUsers.EXPECT().ExistsUserByEmail(ctx, req.Email).Return(false, nil)
	mockIDs.EXPECT().Generate().Return("u-9")
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			ok, verr := utils.VerifyPassword(u.PasswordHash, defaultUserPassword)
			require.NoError(t, verr)
			assert.True(t, ok, "an empty password must fall back to the default")
			return u, nil
		},
	)

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestUserService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().ExistsUserByEmail(ctx, "dup@example.com").Return(true, nil)

	_, err := svc.Create(ctx, models.CreateUserRequest{
		Name:  "Marta",
		Email: "dup@example.com",
		Role:  models.RoleUser,
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Create_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestUserService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateUserRequest
	}{
		{"empty name", models.CreateUserRequest{Email: "a@b.c", Role: models.RoleUser}},
		{"empty email", models.CreateUserRequest{Name: "A", Role: models.RoleUser}},
		{"unknown role", models.CreateUserRequest{Name: "A", Email: "a@b.c", Role: models.Role("SUPERVISOR")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}
