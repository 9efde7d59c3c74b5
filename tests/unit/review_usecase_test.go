package unit

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewUsecase() (*usecase.ReviewUsecase, *ReviewRepoMock, *ProductRepoMock, *UserRepoMock) {
	reviewRepo := new(ReviewRepoMock)
	productRepo := new(ProductRepoMock)
	userRepo := new(UserRepoMock)
	return usecase.NewReviewUsecase(reviewRepo, productRepo, userRepo), reviewRepo, productRepo, userRepo
}

// Test: ratingの境界。1と5は通る
func TestReview_Create_AcceptsBoundaryRatings(t *testing.T) {
	ctx := context.Background()

	for _, rating := range []int{1, 5} {
		uc, reviewRepo, productRepo, userRepo := newReviewUsecase()

		productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10}, nil)
		userRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
		reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r model.Review) bool {
			return r.Rating == rating
		})).Return(model.Review{ID: 1, Rating: rating}, nil)

		out, err := uc.CreateReview(ctx, usecase.CreateReviewInput{
			ProductID: 10,
			UserID:    1,
			Rating:    ptrInt(rating),
		})
		assert.NoError(t, err)
		assert.Equal(t, rating, out.Rating)
	}
}

// Test: 0と6は弾く
func TestReview_Create_RejectsOutOfRangeRatings(t *testing.T) {
	ctx := context.Background()

	for _, rating := range []int{0, 6} {
		uc, reviewRepo, _, _ := newReviewUsecase()

		_, err := uc.CreateReview(ctx, usecase.CreateReviewInput{
			ProductID: 10,
			UserID:    1,
			Rating:    ptrInt(rating),
		})
		assertErrContains(t, err, "rating must be between 1 and 5")

		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

// Test: 存在しない商品へのレビューは404
func TestReview_Create_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	uc, reviewRepo, productRepo, _ := newReviewUsecase()

	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.CreateReview(ctx, usecase.CreateReviewInput{
		ProductID: 999,
		UserID:    1,
		Rating:    ptrInt(4),
	})
	assertErrContains(t, err, "product not found")

	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 更新でもratingは検証される
func TestReview_Update_RejectsOutOfRangeRating(t *testing.T) {
	ctx := context.Background()
	uc, reviewRepo, _, _ := newReviewUsecase()

	reviewRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Review{ID: 1, Rating: 3}, nil)

	_, err := uc.UpdateReview(ctx, 1, usecase.UpdateReviewInput{Rating: ptrInt(6)})
	assertErrContains(t, err, "rating must be between 1 and 5")

	reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// Test: 本文だけの更新。ratingは元の値のまま
func TestReview_Update_KeepsRatingWhenOnlyTextChanges(t *testing.T) {
	ctx := context.Background()
	uc, reviewRepo, _, _ := newReviewUsecase()

	reviewRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Review{ID: 1, Rating: 4, ReviewText: "good"}, nil)
	reviewRepo.On("Update", mock.Anything, mock.MatchedBy(func(r model.Review) bool {
		return r.Rating == 4 && r.ReviewText == "great"
	})).Return(nil)

	out, err := uc.UpdateReview(ctx, 1, usecase.UpdateReviewInput{ReviewText: ptrString("great")})
	assert.NoError(t, err)
	assert.Equal(t, 4, out.Rating)

	reviewRepo.AssertExpectations(t)
}
