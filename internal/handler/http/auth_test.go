package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pvaldera/go-game-catalog/internal/service"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	req := models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "pw"}
	registered := models.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", Role: models.RoleUser}

	svcs.auth.EXPECT().Register(gomock.Any(), req).Return(registered, nil)
	svcs.auth.EXPECT().CreateToken(gomock.Any(), registered).
		Return(models.Token{SignedString: "signed.jwt.token", UserID: "u-1", Role: models.RoleUser}, nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/register", "", req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "u-1", resp.ID)
	assert.Equal(t, models.RoleUser, resp.Role)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.NotContains(t, rr.Body.String(), "password", "the response must not leak credential material")
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	rr := doJSON(t, h, http.MethodPost, "/auth/register",
		"", models.RegisterRequest{Name: "Ana", Email: "dup@example.com", Password: "pw"})

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegisterHandler_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))

	rr := doRaw(h, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	req := models.LoginRequest{Email: "ana@example.com", Password: "pw"}
	found := models.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", Role: models.RoleAdmin}

	svcs.auth.EXPECT().Login(gomock.Any(), req).Return(found, nil)
	svcs.auth.EXPECT().CreateToken(gomock.Any(), found).
		Return(models.Token{SignedString: "signed.jwt.token", UserID: "u-1", Role: models.RoleAdmin}, nil)

	rr := doJSON(t, h, http.MethodPost, "/auth/login", "", req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidCredentials)

	rr := doJSON(t, h, http.MethodPost, "/auth/login",
		"", models.LoginRequest{Email: "ana@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid email/password", errorBody(t, rr).Error)
}
