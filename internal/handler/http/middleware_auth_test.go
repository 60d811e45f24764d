package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/service"
	"github.com/pvaldera/go-game-catalog/internal/service/mocks"
	"github.com/pvaldera/go-game-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type testServices struct {
	auth       *mocks.MockAuthService
	ratings    *mocks.MockRatingService
	games      *mocks.MockGameService
	genres     *mocks.MockGenreService
	developers *mocks.MockDeveloperService
	users      *mocks.MockUserService
}

func newTestHandler(ctrl *gomock.Controller) (*Handler, testServices) {
	svcs := testServices{
		auth:       mocks.NewMockAuthService(ctrl),
		ratings:    mocks.NewMockRatingService(ctrl),
		games:      mocks.NewMockGameService(ctrl),
		genres:     mocks.NewMockGenreService(ctrl),
		developers: mocks.NewMockDeveloperService(ctrl),
		users:      mocks.NewMockUserService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:      svcs.auth,
		RatingService:    svcs.ratings,
		GameService:      svcs.games,
		GenreService:     svcs.genres,
		DeveloperService: svcs.developers,
		UserService:      svcs.users,
	}, logger.Nop())

	return h, svcs
}

func doJSON(t *testing.T, h *Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func doRaw(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// ---- authorization filter ----

func TestAuthorize_ProtectedRouteWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(ctrl)

	rr := doJSON(t, h, http.MethodPost, "/generos", "", models.Genre{Name: "RPG"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, msgUnauthenticated, errorBody(t, rr).Error)
}

func TestAuthorize_MissingAndInvalidTokenAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "expired-token").
		Return(models.User{}, service.ErrTokenInvalid)

	withoutToken := doJSON(t, h, http.MethodPost, "/valoraciones", "", models.RatingRequest{GameID: "g-1", Score: 5})
	withBadToken := doJSON(t, h, http.MethodPost, "/valoraciones", "expired-token", models.RatingRequest{GameID: "g-1", Score: 5})

	assert.Equal(t, http.StatusUnauthorized, withoutToken.Code)
	assert.Equal(t, http.StatusUnauthorized, withBadToken.Code)
	assert.Equal(t, withoutToken.Body.String(), withBadToken.Body.String(),
		"the response must not reveal whether a token was presented")
}

func TestAuthorize_UserRoleCannotWriteCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "user-token").
		Return(models.User{ID: "u-1", Role: models.RoleUser}, nil)

	rr := doJSON(t, h, http.MethodPost, "/generos", "user-token", models.Genre{Name: "RPG"})

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, msgForbidden, errorBody(t, rr).Error)
}

func TestAuthorize_AdminCanWriteCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").
		Return(models.User{ID: "a-1", Role: models.RoleAdmin}, nil)
	svcs.genres.EXPECT().Create(gomock.Any(), models.Genre{Name: "RPG"}).
		Return(models.Genre{ID: "gen-1", Name: "RPG"}, nil)

	rr := doJSON(t, h, http.MethodPost, "/generos", "admin-token", models.Genre{Name: "RPG"})

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Genre
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "gen-1", created.ID)
}

func TestAuthorize_PublicRouteIgnoresRejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	// the token is rejected, but a public route must still answer: the
	// filter never terminates a request on its own
	svcs.auth.EXPECT().Authenticate(gomock.Any(), "stale-token").
		Return(models.User{}, service.ErrTokenInvalid)
	svcs.games.EXPECT().GetAll(gomock.Any(), models.GameFilter{}).
		Return([]models.Game{}, nil)

	rr := doJSON(t, h, http.MethodGet, "/videojuegos", "stale-token", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthorize_AdminOnlyUserListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, svcs := newTestHandler(ctrl)

	svcs.auth.EXPECT().Authenticate(gomock.Any(), "user-token").
		Return(models.User{ID: "u-1", Role: models.RoleUser}, nil).Times(2)
	svcs.auth.EXPECT().Authenticate(gomock.Any(), "admin-token").
		Return(models.User{ID: "a-1", Role: models.RoleAdmin}, nil)
	svcs.users.EXPECT().GetAll(gomock.Any()).Return([]models.User{}, nil)

	asUser := doJSON(t, h, http.MethodGet, "/usuarios", "user-token", nil)
	asUserByID := doJSON(t, h, http.MethodGet, "/usuarios/u-1", "user-token", nil)
	asAdmin := doJSON(t, h, http.MethodGet, "/usuarios", "admin-token", nil)

	assert.Equal(t, http.StatusForbidden, asUser.Code)
	assert.Equal(t, http.StatusForbidden, asUserByID.Code)
	assert.Equal(t, http.StatusOK, asAdmin.Code)
}
