package service

import (
	"context"
	"testing"
	"time"

	"github.com/pvaldera/go-game-catalog/internal/config"
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

func newTestAuthService(
	t *testing.T,
	ctrl *gomock.Controller,
	tokenDuration time.Duration,
) (*authService, *storemocks.MockUserRepository, *mocks.MockIDGenerator) {
	t.Helper()

	mockUsers := storemocks.NewMockUserRepository(ctrl)
	mockIDs := mocks.NewMockIDGenerator(ctrl)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: tokenDuration,
	}

	svc := NewAuthService(mockUsers, mockIDs, cfg, logger.Nop()).(*authService)
	return svc, mockUsers, mockIDs
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockIDs := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret"}

	mockUsers.EXPECT().ExistsUserByEmail(ctx, req.Email).Return(false, nil)
	mockIDs.EXPECT().Generate().Return("u-1")
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "u-1", u.ID)
			assert.Equal(t, models.RoleUser, u.Role, "registration must never grant another role")
			assert.NotEqual(t, req.Password, u.PasswordHash, "password must be stored hashed")

			ok, verr := utils.VerifyPassword(u.PasswordHash, req.Password)
			require.NoError(t, verr)
			assert.True(t, ok, "stored hash must verify against the original password")
			return u, nil
		},
	)

	registered, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, registered.Role)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty name", models.RegisterRequest{Email: "a@b.c", Password: "pw"}},
		{"empty email", models.RegisterRequest{Name: "A", Password: "pw"}},
		{"empty password", models.RegisterRequest{Name: "A", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	mockUsers.EXPECT().ExistsUserByEmail(ctx, "dup@example.com").Return(true, nil)

	_, err := svc.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "dup@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_DuplicateEmailLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockIDs := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	// the advisory check passes but the unique constraint catches the
	// concurrent registration
	mockUsers.EXPECT().ExistsUserByEmail(ctx, "dup@example.com").Return(false, nil)
	mockIDs.EXPECT().Generate().Return("u-1")
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Name: "Ana", Email: "dup@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)

	stored := models.User{ID: "u-1", Email: "ana@example.com", PasswordHash: hash, Role: models.RoleUser}
	mockUsers.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(stored, nil)

	found, err := svc.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.ID)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	hash, err := utils.HashPassword("right")
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)
	_, errUnknown := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "pw"})

	mockUsers.EXPECT().FindUserByEmail(ctx, "ana@example.com").
		Return(models.User{ID: "u-1", PasswordHash: hash}, nil)
	_, errWrong := svc.Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrong,
		"both failure kinds must collapse into the same sentinel")
}

func TestAuthService_CreateTokenAndAuthenticate_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	user := models.User{ID: "u-1", Email: "ana@example.com", Role: models.RoleAdmin}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(user, nil)

	authenticated, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", authenticated.ID)
	assert.Equal(t, models.RoleAdmin, authenticated.Role)
}

func TestAuthService_Authenticate_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl, time.Hour)

	_, err := svc.Authenticate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthService_Authenticate_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// negative duration issues an already-expired token
	svc, _, _ := newTestAuthService(t, ctrl, -time.Minute)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u-1", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthService_Authenticate_DeletedSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl, time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u-gone", Role: models.RoleUser})
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByID(ctx, "u-gone").Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.Authenticate(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenInvalid,
		"a deleted account must invalidate its outstanding tokens")
}
