package service

import (
	"context"
	"testing"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/service/mocks"
	"github.com/pvaldera/go-game-catalog/internal/store"
	storemocks "github.com/pvaldera/go-game-catalog/internal/store/mocks"
	"github.com/pvaldera/go-game-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRatingService(
	t *testing.T,
	ctrl *gomock.Controller,
) (*ratingService, *storemocks.MockRatingRepository, *storemocks.MockUserRepository, *storemocks.MockGameRepository, *mocks.MockIDGenerator) {
	t.Helper()

	mockRatings := storemocks.NewMockRatingRepository(ctrl)
	mockUsers := storemocks.NewMockUserRepository(ctrl)
	mockGames := storemocks.NewMockGameRepository(ctrl)
	mockIDs := mocks.NewMockIDGenerator(ctrl)

	svc := NewRatingService(mockRatings, mockUsers, mockGames, mockIDs, logger.Nop()).(*ratingService)
	return svc, mockRatings, mockUsers, mockGames, mockIDs
}

func TestRatingService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRatings, mockUsers, mockGames, mockIDs := newTestRatingService(t, ctrl)
	ctx := context.Background()

	req := models.RatingRequest{GameID: "g-1", Score: 9, Comment: "brilliant"}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil),
		mockGames.EXPECT().FindGameByID(ctx, "g-1").Return(models.Game{ID: "g-1"}, nil),
		mockRatings.EXPECT().ExistsRatingByUserAndGame(ctx, "u-1", "g-1").Return(false, nil),
		mockIDs.EXPECT().Generate().Return("r-1"),
		mockRatings.EXPECT().CreateRating(ctx, models.Rating{
			ID: "r-1", UserID: "u-1", GameID: "g-1", Score: 9, Comment: "brilliant",
		}).DoAndReturn(
			func(_ context.Context, r models.Rating) (models.Rating, error) {
				return r, nil
			},
		),
	)

	created, err := svc.Submit(ctx, "u-1", req)
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID, "rated user comes from the caller identity, never from the body")
	assert.Equal(t, 9, created.Score)
}

func TestRatingService_Submit_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRatings, mockUsers, mockGames, _ := newTestRatingService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil)
	mockGames.EXPECT().FindGameByID(ctx, "g-1").Return(models.Game{ID: "g-1"}, nil)
	mockRatings.EXPECT().ExistsRatingByUserAndGame(ctx, "u-1", "g-1").Return(true, nil)
	// CreateRating must not be reached

	_, err := svc.Submit(ctx, "u-1", models.RatingRequest{GameID: "g-1", Score: 5})
	assert.ErrorIs(t, err, ErrDuplicateRating)
}

func TestRatingService_Submit_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRatings, mockUsers, mockGames, mockIDs := newTestRatingService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil)
	mockGames.EXPECT().FindGameByID(ctx, "g-1").Return(models.Game{ID: "g-1"}, nil)
	mockRatings.EXPECT().ExistsRatingByUserAndGame(ctx, "u-1", "g-1").Return(false, nil)
	mockIDs.EXPECT().Generate().Return("r-1")
	// a concurrent submission won between the check and the insert; the
	// unique constraint reports it
	mockRatings.EXPECT().CreateRating(ctx, gomock.Any()).Return(models.Rating{}, store.ErrRatingExists)

	_, err := svc.Submit(ctx, "u-1", models.RatingRequest{GameID: "g-1", Score: 5})
	assert.ErrorIs(t, err, ErrDuplicateRating)
}

func TestRatingService_Submit_ScoreOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRatings, mockUsers, mockGames, mockIDs := newTestRatingService(t, ctrl)
	ctx := context.Background()

	for _, score := range []int{0, 11, -3} {
		mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil)
		mockGames.EXPECT().FindGameByID(ctx, "g-1").Return(models.Game{ID: "g-1"}, nil)
		mockRatings.EXPECT().ExistsRatingByUserAndGame(ctx, "u-1", "g-1").Return(false, nil)
		mockIDs.EXPECT().Generate().Return("r-1")

		_, err := svc.Submit(ctx, "u-1", models.RatingRequest{GameID: "g-1", Score: score})
		assert.ErrorIs(t, err, ErrInvalidScore, "score %d must be rejected", score)
	}
}

func TestRatingService_Submit_UnknownGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockUsers, mockGames, _ := newTestRatingService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1"}, nil)
	mockGames.EXPECT().FindGameByID(ctx, "ghost").Return(models.Game{}, store.ErrGameNotFound)

	_, err := svc.Submit(ctx, "u-1", models.RatingRequest{GameID: "ghost", Score: 5})
	assert.ErrorIs(t, err, store.ErrGameNotFound)
}

func TestRatingService_GetByGame_UnknownGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockGames, _ := newTestRatingService(t, ctrl)
	ctx := context.Background()

	mockGames.EXPECT().FindGameByID(ctx, "ghost").Return(models.Game{}, store.ErrGameNotFound)

	_, err := svc.GetByGame(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrGameNotFound)
}

func TestRatingService_GetByGame_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRatings, _, mockGames, _ := newTestRatingService(t, ctrl)
	ctx := context.Background()

	mockGames.EXPECT().FindGameByID(ctx, "g-1").Return(models.Game{ID: "g-1"}, nil)
	mockRatings.EXPECT().FindRatingsByGame(ctx, "g-1").Return([]models.Rating{
		{ID: "r-1", UserID: "u-1", GameID: "g-1", Score: 9},
	}, nil)

	ratings, err := svc.GetByGame(ctx, "g-1")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 9, ratings[0].Score)
}
