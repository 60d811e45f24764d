package http

import (
	"net/http"
	"testing"

	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateUser_AdminSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").
		Return(models.User{ID: "a-1", Role: models.RoleAdmin}, nil)

	req := models.CreateUserRequest{Name: "Marta", Email: "marta@example.com", Role: models.RoleAdmin}
	svcs.users.EXPECT().Create(gomock.Any(), req).
		Return(models.User{ID: "u-9", Name: "Marta", Email: "marta@example.com", Role: models.RoleAdmin}, nil)

	rr := doJSON(t, h, http.MethodPost, "/usuarios", "admin-token", req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role":"ADMIN"`)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestCreateUser_UserRoleForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "user-token").
		Return(models.User{ID: "u-1", Role: models.RoleUser}, nil)

	rr := doJSON(t, h, http.MethodPost, "/usuarios", "user-token",
		models.CreateUserRequest{Name: "Marta", Email: "marta@example.com", Role: models.RoleAdmin})

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, msgForbidden, errorBody(t, rr).Error)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").
		Return(models.User{ID: "a-1", Role: models.RoleAdmin}, nil)
	svcs.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	rr := doJSON(t, h, http.MethodPost, "/usuarios", "admin-token",
		models.CreateUserRequest{Name: "Marta", Email: "dup@example.com", Role: models.RoleUser})

	assert.Equal(t, http.StatusConflict, rr.Code)
}
